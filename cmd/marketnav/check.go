package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/navigation"
)

func checkCmd(rf *routesFile) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [manifest]",
		Short: "Validate a route manifest",
		Long: `Build the route table from a manifest and report style warnings.
Duplicate paths or names and invalid routes fail the check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rf.path = args[0]
			}
			table, err := rf.table()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := navigation.Lint(table)
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintf(out, "%d routes, %d warnings\n", table.Len(), len(warnings))

			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d lint warnings", len(warnings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat lint warnings as errors")

	return cmd
}
