package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
)

// DefaultDeployFilename is the file the wizard writes its configuration to.
const DefaultDeployFilename = "launchpad.yaml"

// DBEngine is a managed database engine.
type DBEngine string

// Supported database engines.
const (
	DBEnginePostgreSQL DBEngine = "postgresql"
	DBEngineMySQL      DBEngine = "mysql"
)

// DatabaseSpec configures the managed database.
type DatabaseSpec struct {
	Enabled bool     `yaml:"enabled"`
	Engine  DBEngine `yaml:"engine,omitempty"`
}

// DeployConfig is the application deployment the wizard produces.
type DeployConfig struct {
	AppName    string `yaml:"app_name"`
	Repository string `yaml:"repository,omitempty"`
	Framework  string `yaml:"framework,omitempty"`
	Region     string `yaml:"region"`
	Domain     string `yaml:"domain,omitempty"`

	HTTPS       bool         `yaml:"https"`
	AutoScaling bool         `yaml:"auto_scaling"`
	Database    DatabaseSpec `yaml:"database"`
	Storage     bool         `yaml:"storage"`
	Monitoring  bool         `yaml:"monitoring"`

	// Env holds KEY=value lines passed to the container.
	Env []string `yaml:"env,omitempty"`
}

// EnvVar is a parsed environment variable.
type EnvVar struct {
	Name  string
	Value string
}

// DefaultDeployConfig returns the configuration preselected in the deploy step.
func DefaultDeployConfig() *DeployConfig {
	return &DeployConfig{
		AppName:     "my-react-app",
		Region:      "us-east-1",
		HTTPS:       true,
		AutoScaling: true,
		Database:    DatabaseSpec{Enabled: true, Engine: DBEnginePostgreSQL},
		Storage:     true,
		Monitoring:  true,
		Env:         []string{"NODE_ENV=production", "PORT=3000"},
	}
}

// Validate checks presence and format of the configuration fields.
func (c *DeployConfig) Validate() error {
	if err := ValidateAppName(c.AppName); err != nil {
		return err
	}
	if c.Region == "" {
		return ErrRegionRequired
	}
	if !awsInternal.IsSupportedRegion(c.Region) {
		return fmt.Errorf("%w: %s", ErrRegionInvalid, c.Region)
	}
	if err := ValidateDomain(c.Domain); err != nil {
		return err
	}
	if c.Database.Enabled {
		switch c.Database.Engine {
		case DBEnginePostgreSQL, DBEngineMySQL:
		default:
			return fmt.Errorf("%w: %q", ErrDBEngineInvalid, c.Database.Engine)
		}
	}
	if _, err := c.ParseEnv(); err != nil {
		return err
	}
	return nil
}

// ParseEnv splits the Env lines into name/value pairs. Blank lines are skipped.
func (c *DeployConfig) ParseEnv() ([]EnvVar, error) {
	vars := make([]EnvVar, 0, len(c.Env))
	for _, line := range c.Env {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("%w: %q", ErrEnvVarInvalid, line)
		}
		vars = append(vars, EnvVar{Name: name, Value: value})
	}
	return vars, nil
}

// SetEnvText replaces Env with the non-blank lines of text.
func (c *DeployConfig) SetEnvText(text string) {
	c.Env = c.Env[:0]
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			c.Env = append(c.Env, strings.TrimSpace(line))
		}
	}
}

// EnvText joins Env into newline separated text for editing.
func (c *DeployConfig) EnvText() string {
	return strings.Join(c.Env, "\n")
}

// ValidateAppName checks that name is DNS-safe. Uppercase is accepted and
// treated as lowercase.
func ValidateAppName(name string) error {
	if name == "" {
		return ErrAppNameRequired
	}
	name = strings.ToLower(name)
	if len(name) > 63 {
		return ErrAppNameInvalid
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return ErrAppNameInvalid
		}
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return ErrAppNameInvalid
	}
	return nil
}

// ValidateDomain checks the optional custom domain.
func ValidateDomain(domain string) error {
	if domain == "" {
		return nil
	}
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ErrDomainInvalid
	}
	for _, p := range parts {
		if p == "" {
			return ErrDomainInvalid
		}
	}
	return nil
}

// LoadDeployConfig reads and validates a deploy configuration file.
func LoadDeployConfig(path string) (*DeployConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg DeployConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveDeployConfig writes cfg as YAML to path.
func SaveDeployConfig(cfg *DeployConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
