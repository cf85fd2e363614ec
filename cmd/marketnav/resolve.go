package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/navigation"
)

func resolveCmd(rf *routesFile) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path|name>...",
		Short: "Resolve paths or route names to views",
		Long: `Resolve each argument against the route table. Arguments starting
with "/" are paths, anything else is a route name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rf.table()
			if err != nil {
				return err
			}
			router := navigation.NewRouter(table)

			for _, target := range args {
				def, err := router.Resolve(target)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", target, def.View, def.Path)
			}
			return nil
		},
	}
}
