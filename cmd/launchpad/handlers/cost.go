package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/logging"
	"github.com/imamik/launchpad/internal/pricing"
)

// Cost prints the monthly estimate for the deploy configuration at
// configPath.
func Cost(ctx context.Context, configPath string, jsonOutput bool) error {
	if configPath == "" {
		configPath = config.DefaultDeployFilename
	}

	cfg, err := config.LoadDeployConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	estimate := pricing.NewCalculator().Calculate(cfg)
	logging.FromContext(ctx).V(1).Info("estimated cost", "app", cfg.AppName, "total", estimate.Total)

	formatter := pricing.NewFormatter()
	if jsonOutput {
		fmt.Println(formatter.FormatJSON(estimate))
		return nil
	}

	fmt.Print(formatter.Format(estimate))
	return nil
}
