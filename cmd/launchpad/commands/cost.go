package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/launchpad/cmd/launchpad/handlers"
)

// Cost returns the command for deploy cost estimation.
func Cost() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate the monthly cost of a deploy configuration",
		Long: `Estimate monthly AWS cost for a saved deploy configuration.

Line items are included for the services the configuration enables:
  - ECS Fargate (always)
  - RDS database
  - S3 + CloudFront storage
  - CloudWatch monitoring
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cost(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "file", "f", "", "Path to deploy configuration (default: launchpad.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
