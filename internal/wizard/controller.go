package wizard

import (
	"fmt"
	"sort"
)

// State is a value snapshot of the wizard's progression.
type State struct {
	// Current is the 1-based id of the step being shown.
	Current int

	// Completed lists the ids advanced past at least once, ascending.
	Completed []int
}

// Observer is notified after a navigation operation moved the current step.
type Observer func(t Transition, from, to int)

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to be called after every transition that changed
// the current step.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// Controller owns the step sequence, the current step and the completed set.
type Controller struct {
	steps     []Step
	current   int
	completed map[int]struct{}
	observer  Observer
}

// New creates a controller positioned on step 1 with nothing completed.
// Step ids must be 1..N in order.
func New(steps []Step, opts ...Option) (*Controller, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	for i, s := range steps {
		if s.ID != i+1 {
			return nil, fmt.Errorf("%w: position %d has id %d", ErrStepID, i+1, s.ID)
		}
	}

	c := &Controller{
		steps:     append([]Step(nil), steps...),
		current:   1,
		completed: make(map[int]struct{}, len(steps)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Advance marks the current step completed and moves to the next one.
// It reports false and does nothing on the last step.
func (c *Controller) Advance() bool {
	if c.current >= len(c.steps) {
		return false
	}
	from := c.current
	c.completed[from] = struct{}{}
	c.current++
	c.notify(TransitionAdvance, from, c.current)
	return true
}

// Retreat moves to the previous step. Completed steps stay completed.
// It reports false and does nothing on the first step.
func (c *Controller) Retreat() bool {
	if c.current <= 1 {
		return false
	}
	from := c.current
	c.current--
	c.notify(TransitionRetreat, from, c.current)
	return true
}

// GoTo jumps to id if it is accessible. Unvisited steps are rejected
// without changing state.
func (c *Controller) GoTo(id int) bool {
	if !c.IsAccessible(id) {
		return false
	}
	from := c.current
	c.current = id
	if from != id {
		c.notify(TransitionGoTo, from, id)
	}
	return true
}

// IsCompleted reports whether id has been advanced past.
func (c *Controller) IsCompleted(id int) bool {
	_, ok := c.completed[id]
	return ok
}

// IsCurrent reports whether id is the current step.
func (c *Controller) IsCurrent(id int) bool {
	return id == c.current
}

// IsAccessible reports whether the user may navigate directly to id.
func (c *Controller) IsAccessible(id int) bool {
	return c.IsCurrent(id) || c.IsCompleted(id)
}

// Indicator returns how the indicator for id should be drawn.
func (c *Controller) Indicator(id int) Indicator {
	switch {
	case c.IsCompleted(id):
		return IndicatorCompleted
	case c.IsCurrent(id):
		return IndicatorCurrent
	default:
		return IndicatorLocked
	}
}

// ProgressFraction returns completed steps over total steps. The step in
// progress is not counted, so the final step shows (N-1)/N.
func (c *Controller) ProgressFraction() float64 {
	return float64(len(c.completed)) / float64(len(c.steps))
}

// DisplayProgress is ProgressFraction except that reaching the final step
// counts as done.
func (c *Controller) DisplayProgress() float64 {
	if c.current == len(c.steps) {
		return 1
	}
	return c.ProgressFraction()
}

// Current returns the current step id.
func (c *Controller) Current() int {
	return c.current
}

// CurrentStep returns the current step.
func (c *Controller) CurrentStep() Step {
	return c.steps[c.current-1]
}

// Step returns the step with the given id.
func (c *Controller) Step(id int) (Step, bool) {
	if id < 1 || id > len(c.steps) {
		return Step{}, false
	}
	return c.steps[id-1], true
}

// Steps returns a copy of the step sequence.
func (c *Controller) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Len returns the number of steps.
func (c *Controller) Len() int {
	return len(c.steps)
}

// Completed returns the completed step ids in ascending order.
func (c *Controller) Completed() []int {
	ids := make([]int, 0, len(c.completed))
	for id := range c.completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// State returns a snapshot of the current progression.
func (c *Controller) State() State {
	return State{Current: c.current, Completed: c.Completed()}
}

func (c *Controller) notify(t Transition, from, to int) {
	if c.observer != nil {
		c.observer(t, from, to)
	}
}
