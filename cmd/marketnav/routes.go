package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/navigation"
)

func routesCmd(rf *routesFile) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rf.table()
			if err != nil {
				return err
			}

			defs := table.Routes()
			if cmd.Flags().Changed("role") {
				r, err := navigation.ParseRole(role)
				if err != nil {
					return err
				}
				defs = table.ByRole(r)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tNAME\tVIEW\tROLE")
			for _, def := range defs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Path, def.Name, def.View, def.Role)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Only list routes tagged with this role (none, farmer, traveler)")

	return cmd
}
