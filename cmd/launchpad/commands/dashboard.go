package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/launchpad/cmd/launchpad/handlers"
)

// Dashboard returns the command that shows deployments and stats.
func Dashboard() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show deployments, stats and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Dashboard(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", handlers.OutputText, "Output format: text, json, yaml")

	return cmd
}
