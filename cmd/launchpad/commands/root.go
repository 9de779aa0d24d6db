// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/launchpad/cmd/launchpad/handlers"
)

// Root returns the root command for the launchpad CLI.
//
// Persistent flags load settings and set up logging before any subcommand
// runs. Metrics are written after it finishes.
func Root() *cobra.Command {
	var configPath, logLevel, metricsOut string

	cmd := &cobra.Command{
		Use:           "launchpad",
		Short:         "Deploy GitHub repositories to AWS with a guided wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := handlers.Setup(cmd.Context(), configPath, logLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return handlers.WriteMetrics(metricsOut)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings file (default: $HOME/.launchpad.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides settings)")
	cmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(New())
	cmd.AddCommand(Dashboard())
	cmd.AddCommand(Cost())
	cmd.AddCommand(Regions())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
