package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/cmd/runner"
	"github.com/sagarsuperuser/marketnav/navigation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// routesFile is the manifest flag shared by every subcommand.
type routesFile struct {
	path string
}

func (f *routesFile) table() (*navigation.Table, error) {
	return runner.LoadTable(f.path)
}

func newRootCmd() *cobra.Command {
	rf := &routesFile{}

	rootCmd := &cobra.Command{
		Use:   "marketnav",
		Short: "Role-aware navigation routing for the Farmer/Traveler marketplace",
		Long: `marketnav resolves marketplace paths and route names to views.

It serves the navigation API and frontend shell, and offers offline
commands to inspect, validate and exercise a route manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&rf.path, "routes", "f", os.Getenv("ROUTES_FILE"),
		"TOML route manifest (embedded marketplace routes when empty)")

	rootCmd.AddCommand(
		serveCmd(rf),
		routesCmd(rf),
		resolveCmd(rf),
		checkCmd(rf),
		navigateCmd(rf),
	)
	return rootCmd
}
