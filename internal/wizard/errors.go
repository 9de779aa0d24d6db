package wizard

import "errors"

// Construction errors. Navigation itself never returns an error.
var (
	ErrNoSteps = errors.New("wizard requires at least one step")
	ErrStepID  = errors.New("step ids must be 1..N in order")
)
