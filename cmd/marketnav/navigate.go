package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/navigation"
)

// backTarget pops the navigation history instead of resolving a route.
const backTarget = "back"

func navigateCmd(rf *routesFile) *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <target>...",
		Short: "Replay a navigation session",
		Long: `Navigate through each target in order, printing the mounted view.
Targets are paths or route names; "back" returns to the previous route.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rf.table()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			nav := navigation.NewNavigator(navigation.NewRouter(table),
				navigation.MounterFunc(func(_ context.Context, def navigation.RouteDefinition) error {
					_, err := fmt.Fprintf(out, "mount %s (%s) at %s\n", def.View, def.Name, def.Path)
					return err
				}))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			for _, target := range args {
				if target == backTarget {
					_, err = nav.Back(ctx)
				} else {
					_, err = nav.Navigate(ctx, target)
				}
				if err != nil {
					return fmt.Errorf("%s: %w", target, err)
				}
			}
			fmt.Fprintf(out, "history depth %d\n", nav.Depth())
			return nil
		},
	}
}
