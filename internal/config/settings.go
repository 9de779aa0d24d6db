package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SettingsFilename is the settings file looked up in the home directory.
const SettingsFilename = ".launchpad.yaml"

// EnvPrefix prefixes environment overrides, e.g. LAUNCHPAD_DEFAULT_REGION.
const EnvPrefix = "LAUNCHPAD"

// Settings holds user preferences for the CLI.
type Settings struct {
	// DefaultRegion preselects the AWS region in the credentials step.
	DefaultRegion string `mapstructure:"default_region"`

	// ValidateDelay is the simulated latency of credential validation.
	ValidateDelay time.Duration `mapstructure:"validate_delay"`

	// DeployStepDelay is the simulated duration of each deploy phase.
	DeployStepDelay time.Duration `mapstructure:"deploy_step_delay"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// AccountOwner is the GitHub login the mock repositories belong to.
	AccountOwner string `mapstructure:"account_owner"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		DefaultRegion:   "us-east-1",
		ValidateDelay:   2 * time.Second,
		DeployStepDelay: 500 * time.Millisecond,
		LogLevel:        "info",
		AccountOwner:    "johndoe",
	}
}

// LoadSettings reads settings from path, or from $HOME/.launchpad.yaml when
// path is empty. A missing home settings file is not an error. Environment
// variables prefixed with LAUNCHPAD_ override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("default_region", defaults.DefaultRegion)
	v.SetDefault("validate_delay", defaults.ValidateDelay)
	v.SetDefault("deploy_step_delay", defaults.DeployStepDelay)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("account_owner", defaults.AccountOwner)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(SettingsFilename, filepath.Ext(SettingsFilename)))
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &s, nil
}

// Validate checks the settings for values the CLI cannot work with.
func (s *Settings) Validate() error {
	if s.ValidateDelay < 0 {
		return fmt.Errorf("validate_delay must not be negative, got %s", s.ValidateDelay)
	}
	if s.DeployStepDelay < 0 {
		return fmt.Errorf("deploy_step_delay must not be negative, got %s", s.DeployStepDelay)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	if s.DefaultRegion == "" {
		return ErrRegionRequired
	}
	return nil
}
