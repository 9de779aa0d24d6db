package deploy

import "errors"

// ErrNoConfig is returned when Run is called without a configuration.
var ErrNoConfig = errors.New("deploy configuration is required")

// ErrNoAppURL is returned when copying details that carry no URL.
var ErrNoAppURL = errors.New("deployment has no application URL")
