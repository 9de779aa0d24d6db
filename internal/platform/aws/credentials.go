package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// Presence errors returned by Credentials.Check.
var (
	ErrMissingAccessKeyID     = errors.New("access key ID is required")
	ErrMissingSecretAccessKey = errors.New("secret access key is required")
	ErrMissingRegion          = errors.New("region is required")
	ErrUnsupportedRegion      = errors.New("unsupported region")
)

// Credentials are the values entered in the credentials step.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// Check reports the first missing field. Only presence is checked.
func (c Credentials) Check() error {
	switch {
	case strings.TrimSpace(c.AccessKeyID) == "":
		return ErrMissingAccessKeyID
	case strings.TrimSpace(c.SecretAccessKey) == "":
		return ErrMissingSecretAccessKey
	case c.Region == "":
		return ErrMissingRegion
	case !IsSupportedRegion(c.Region):
		return fmt.Errorf("%w: %s", ErrUnsupportedRegion, c.Region)
	}
	return nil
}

// Complete reports whether every field is filled in.
func (c Credentials) Complete() bool {
	return c.Check() == nil
}

// MaskedAccessKeyID shows the first four and last four characters of the key.
func (c Credentials) MaskedAccessKeyID() string {
	return Mask(c.AccessKeyID)
}

// Mask hides the middle of s, keeping four characters on each side.
func Mask(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}

// Validator simulates a credential check against AWS.
type Validator struct {
	// Delay is the simulated round trip.
	Delay time.Duration
}

// NewValidator creates a validator with the given simulated latency.
func NewValidator(delay time.Duration) *Validator {
	return &Validator{Delay: delay}
}

// Validate checks that all fields are present, waits for the simulated
// latency and succeeds. A canceled context aborts the wait.
func (v *Validator) Validate(ctx context.Context, creds Credentials) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("region", creds.Region, "accessKeyID", creds.MaskedAccessKeyID())

	if err := creds.Check(); err != nil {
		return err
	}

	log.V(1).Info("validating credentials", "delay", v.Delay)

	timer := time.NewTimer(v.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	log.Info("credentials validated")
	return nil
}
