package config

import "errors"

// Validation errors for deploy configurations and settings.
var (
	ErrAppNameRequired = errors.New("application name is required")
	ErrAppNameInvalid  = errors.New("application name must be 1-63 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	ErrRegionRequired  = errors.New("region is required")
	ErrRegionInvalid   = errors.New("unsupported region")
	ErrDomainInvalid   = errors.New("invalid domain format (expected example.com)")
	ErrEnvVarInvalid   = errors.New("environment variables must be KEY=value")
	ErrDBEngineInvalid = errors.New("unsupported database engine")
)
