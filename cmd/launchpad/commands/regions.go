package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/launchpad/cmd/launchpad/handlers"
)

// Regions returns the command that lists supported AWS regions.
func Regions() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List supported AWS regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Regions(cmd.Context())
		},
	}
}
