package handlers

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/deploy"
	"github.com/imamik/launchpad/internal/flow"
	"github.com/imamik/launchpad/internal/pricing"
	"github.com/imamik/launchpad/internal/ui/prompt"
	"github.com/imamik/launchpad/internal/ui/tui"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	newPrompter = func(accessible bool) flow.Prompter {
		return prompt.New(accessible)
	}

	launchTUI = func(ctx context.Context, cfg *config.DeployConfig, run tui.DeployFunc) (*deploy.Details, error) {
		return tui.RunDeployTUI(ctx, run, cfg, tea.WithAltScreen())
	}

	isInteractive = isInteractiveTTY
)

// New runs the deployment wizard. The deploy configuration is written to
// outputPath before deploying unless it is empty. Without a terminal, or
// with plain set, prompts are line based and the deploy prints one line
// per phase.
func New(ctx context.Context, outputPath string, plain bool) error {
	interactive := isInteractive() && !plain

	opts := flow.Options{
		Settings: settingsFrom(ctx),
		Prompter: newPrompter(!interactive),
		Out:      os.Stdout,
		SavePath: outputPath,
	}
	if interactive {
		opts.Launch = launchTUI
	}

	f, err := flow.New(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to start wizard: %w", err)
	}

	res, err := f.Run(ctx)
	if err != nil {
		return err
	}

	printNewSummary(res, outputPath)
	return nil
}

func printNewSummary(res *flow.Result, outputPath string) {
	if !res.Deployed {
		fmt.Println("\nWizard closed before deploying.")
		return
	}

	fmt.Printf("\n%s is live at %s\n", res.Config.AppName, res.Details.AppURL)
	fmt.Println(pricing.NewFormatter().FormatCompact(pricing.NewCalculator().Calculate(res.Config)))
	if outputPath != "" {
		fmt.Printf("Configuration saved to %s\n", outputPath)
		fmt.Printf("Estimate costs with: launchpad cost -f %s\n", outputPath)
	}
}
