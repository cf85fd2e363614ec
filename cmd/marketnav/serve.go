package main

import (
	"github.com/spf13/cobra"

	"github.com/sagarsuperuser/marketnav/cmd/runner"
	"github.com/sagarsuperuser/marketnav/server/settings"
)

func serveCmd(rf *routesFile) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the navigation HTTP service",
		Long:  `Run the navigation API and frontend. Configuration is read from the environment.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load()
			if err != nil {
				return err
			}
			if rf.path != "" {
				s.RoutesFile = rf.path
			}
			runner.NewRunner(s).Run()
			return nil
		},
	}
}
