package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/launchpad/cmd/launchpad/handlers"
	"github.com/imamik/launchpad/internal/config"
)

// New returns the command that runs the deployment wizard.
func New() *cobra.Command {
	var outputPath string
	var plain bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Run the deployment wizard",
		Long: `Walk through deploying a GitHub repository to AWS.

The wizard has four steps:
  1. AWS Credentials       validate an access key pair and pick a region
  2. GitHub Repository     connect with a token and select a repository
  3. Deploy Configuration  review services and cost, then deploy
  4. Success               endpoints and resources of the deployment

Completed steps can be revisited at any time. Cloud work is simulated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.New(cmd.Context(), outputPath, plain)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultDeployFilename, "Write the deploy configuration to this file (empty to skip)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Use plain prompts and progress output")

	return cmd
}
