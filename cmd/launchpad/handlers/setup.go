package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/logging"
	"github.com/imamik/launchpad/internal/metrics"
)

type settingsKey struct{}

var loadSettings = config.LoadSettings

// Setup loads settings from configPath and installs a logger at logLevel,
// or at the configured level when logLevel is empty.
func Setup(ctx context.Context, configPath, logLevel string) (context.Context, error) {
	settings, err := loadSettings(configPath)
	if err != nil {
		return ctx, err
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}

	logger, err := logging.New(os.Stderr, settings.LogLevel)
	if err != nil {
		return ctx, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger.V(1).Info("loaded settings",
		"defaultRegion", settings.DefaultRegion,
		"validateDelay", settings.ValidateDelay,
		"deployStepDelay", settings.DeployStepDelay,
	)

	ctx = logging.IntoContext(ctx, logger)
	return WithSettings(ctx, settings), nil
}

// WithSettings returns a copy of ctx carrying settings.
func WithSettings(ctx context.Context, settings *config.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, settings)
}

// settingsFrom returns the settings in ctx, or the defaults.
func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok && s != nil {
		return s
	}
	s := config.DefaultSettings()
	return &s
}

// WriteMetrics writes the metrics exposition to path. An empty path is a
// no-op.
func WriteMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := metrics.WriteFile(path); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
