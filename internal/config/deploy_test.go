package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeployConfig(t *testing.T) {
	cfg := DefaultDeployConfig()

	assert.Equal(t, "my-react-app", cfg.AppName)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Empty(t, cfg.Domain)
	assert.True(t, cfg.HTTPS)
	assert.True(t, cfg.AutoScaling)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, DBEnginePostgreSQL, cfg.Database.Engine)
	assert.True(t, cfg.Storage)
	assert.True(t, cfg.Monitoring)
	assert.Equal(t, []string{"NODE_ENV=production", "PORT=3000"}, cfg.Env)
	assert.NoError(t, cfg.Validate())
}

func TestDeployConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*DeployConfig)
		wantErr error
	}{
		{"valid", func(*DeployConfig) {}, nil},
		{"missing app name", func(c *DeployConfig) { c.AppName = "" }, ErrAppNameRequired},
		{"app name with space", func(c *DeployConfig) { c.AppName = "my app" }, ErrAppNameInvalid},
		{"missing region", func(c *DeployConfig) { c.Region = "" }, ErrRegionRequired},
		{"unknown region", func(c *DeployConfig) { c.Region = "mars-1" }, ErrRegionInvalid},
		{"bad domain", func(c *DeployConfig) { c.Domain = "localhost" }, ErrDomainInvalid},
		{"good domain", func(c *DeployConfig) { c.Domain = "app.example.com" }, nil},
		{"bad engine", func(c *DeployConfig) { c.Database.Engine = "oracle" }, ErrDBEngineInvalid},
		{"engine ignored when disabled", func(c *DeployConfig) {
			c.Database = DatabaseSpec{Enabled: false, Engine: "oracle"}
		}, nil},
		{"bad env", func(c *DeployConfig) { c.Env = []string{"JUSTKEY"} }, ErrEnvVarInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDeployConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"my-app", false},
		{"App1", false},
		{"a", false},
		{"-app", true},
		{"app-", true},
		{"app_name", true},
		{strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	assert.NoError(t, ValidateDomain(""))
	assert.NoError(t, ValidateDomain("example.com"))
	assert.NoError(t, ValidateDomain("app.example.co.uk"))
	assert.ErrorIs(t, ValidateDomain("example"), ErrDomainInvalid)
	assert.ErrorIs(t, ValidateDomain("example..com"), ErrDomainInvalid)
	assert.ErrorIs(t, ValidateDomain(".com"), ErrDomainInvalid)
}

func TestParseEnv(t *testing.T) {
	cfg := &DeployConfig{Env: []string{"NODE_ENV=production", "", "  ", "DSN=postgres://u:p@h/db?x=1", "EMPTY="}}

	vars, err := cfg.ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, []EnvVar{
		{Name: "NODE_ENV", Value: "production"},
		{Name: "DSN", Value: "postgres://u:p@h/db?x=1"},
		{Name: "EMPTY", Value: ""},
	}, vars)

	cfg.Env = []string{"=value"}
	_, err = cfg.ParseEnv()
	assert.ErrorIs(t, err, ErrEnvVarInvalid)

	cfg.Env = []string{"MY KEY=value"}
	_, err = cfg.ParseEnv()
	assert.ErrorIs(t, err, ErrEnvVarInvalid)
}

func TestEnvText(t *testing.T) {
	cfg := DefaultDeployConfig()
	assert.Equal(t, "NODE_ENV=production\nPORT=3000", cfg.EnvText())

	cfg.SetEnvText("A=1\n\n  B=2  \n")
	assert.Equal(t, []string{"A=1", "B=2"}, cfg.Env)
}

func TestSaveAndLoadDeployConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDeployFilename)

	cfg := DefaultDeployConfig()
	cfg.AppName = "node-api-server"
	cfg.Repository = "johndoe/node-api-server"
	cfg.Database.Engine = DBEngineMySQL
	cfg.Storage = false

	require.NoError(t, SaveDeployConfig(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadDeployConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDeployConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDeployConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("app_name: [unclosed"), 0600))
	_, err = LoadDeployConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("app_name: ok\nregion: nowhere-1\n"), 0600))
	_, err = LoadDeployConfig(invalid)
	assert.ErrorIs(t, err, ErrRegionInvalid)
}
