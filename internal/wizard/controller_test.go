package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepsOf(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{ID: i + 1, Title: "step"}
	}
	return steps
}

func newController(t *testing.T, n int, opts ...Option) *Controller {
	t.Helper()
	c, err := New(stepsOf(n), opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	for _, n := range []int{1, 2, 4, 10} {
		c := newController(t, n)
		assert.Equal(t, 1, c.Current(), "n=%d", n)
		assert.Empty(t, c.Completed(), "n=%d", n)
		assert.Equal(t, n, c.Len())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  error
	}{
		{"no steps", nil, ErrNoSteps},
		{"starts at zero", []Step{{ID: 0}, {ID: 1}}, ErrStepID},
		{"gap", []Step{{ID: 1}, {ID: 3}}, ErrStepID},
		{"out of order", []Step{{ID: 2}, {ID: 1}}, ErrStepID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.steps)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdvance(t *testing.T) {
	c := newController(t, 4)

	for i := 1; i < 4; i++ {
		require.True(t, c.Advance())
		assert.Equal(t, i+1, c.Current())
		assert.True(t, c.IsCompleted(i))
	}

	assert.False(t, c.Advance(), "advance on last step is a no-op")
	assert.Equal(t, State{Current: 4, Completed: []int{1, 2, 3}}, c.State())
}

func TestAdvance_SingleStep(t *testing.T) {
	c := newController(t, 1)

	assert.False(t, c.Advance())
	assert.Equal(t, 1, c.Current())
	assert.Empty(t, c.Completed())
}

func TestRetreat(t *testing.T) {
	c := newController(t, 4)

	assert.False(t, c.Retreat(), "retreat on first step is a no-op")
	assert.Equal(t, State{Current: 1, Completed: []int{}}, c.State())

	c.Advance()
	c.Advance()
	require.True(t, c.Retreat())

	assert.Equal(t, 2, c.Current())
	assert.Equal(t, []int{1, 2}, c.Completed(), "steps stay completed after retreating")
}

func TestGoTo(t *testing.T) {
	c := newController(t, 4)
	c.Advance()
	c.Advance()

	tests := []struct {
		name   string
		target int
		ok     bool
	}{
		{"completed step", 1, true},
		{"current step", 3, true},
		{"unvisited step", 4, false},
		{"below range", 0, false},
		{"above range", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := c.State()
			got := c.GoTo(tt.target)
			assert.Equal(t, tt.ok, got)
			if tt.ok {
				assert.Equal(t, tt.target, c.Current())
				// restore for the next case
				c.GoTo(before.Current)
			} else {
				assert.Equal(t, before, c.State())
			}
		})
	}
}

func TestGoTo_FromRevisitedStep(t *testing.T) {
	c := newController(t, 4)
	c.Advance()
	c.Advance()
	c.GoTo(1)

	// step 3 was current before, it is not completed, so it is locked now
	assert.False(t, c.GoTo(3))
	assert.True(t, c.GoTo(2))
	assert.Equal(t, 2, c.Current())
}

func TestScenario(t *testing.T) {
	c, err := New(DefaultSteps())
	require.NoError(t, err)

	c.Advance()
	assert.Equal(t, State{Current: 2, Completed: []int{1}}, c.State())

	c.Advance()
	assert.Equal(t, State{Current: 3, Completed: []int{1, 2}}, c.State())

	c.GoTo(1)
	assert.Equal(t, State{Current: 1, Completed: []int{1, 2}}, c.State())

	// 3 is neither completed nor current here, so the jump is rejected
	c.GoTo(3)
	assert.Equal(t, State{Current: 1, Completed: []int{1, 2}}, c.State())

	c.GoTo(2)
	c.Advance()
	assert.Equal(t, State{Current: 3, Completed: []int{1, 2}}, c.State())

	c.Advance()
	assert.Equal(t, State{Current: 4, Completed: []int{1, 2, 3}}, c.State())
	assert.InDelta(t, 0.75, c.ProgressFraction(), 1e-9)
}

func TestAccessibilityQueries(t *testing.T) {
	c := newController(t, 4)
	c.Advance()

	assert.True(t, c.IsCompleted(1))
	assert.False(t, c.IsCurrent(1))
	assert.True(t, c.IsAccessible(1))

	assert.False(t, c.IsCompleted(2))
	assert.True(t, c.IsCurrent(2))
	assert.True(t, c.IsAccessible(2))

	assert.False(t, c.IsAccessible(3))
	assert.False(t, c.IsAccessible(4))
}

func TestAccessibilityIsMonotonic(t *testing.T) {
	c := newController(t, 5)
	ops := []func() bool{
		c.Advance, c.Advance, c.Retreat, func() bool { return c.GoTo(1) },
		c.Advance, c.Advance, c.Advance, c.Retreat, c.Retreat,
		func() bool { return c.GoTo(5) }, c.Advance, c.Advance,
	}

	seen := map[int]bool{}
	for _, op := range ops {
		op()
		for id := 1; id <= c.Len(); id++ {
			if seen[id] {
				assert.True(t, c.IsAccessible(id), "step %d lost accessibility", id)
			}
			if c.IsAccessible(id) {
				seen[id] = true
			}
		}
	}
}

func TestIndicator(t *testing.T) {
	c := newController(t, 4)
	c.Advance()
	c.Advance()
	c.GoTo(1)

	assert.Equal(t, IndicatorCompleted, c.Indicator(1), "completed wins over current")
	assert.Equal(t, IndicatorCompleted, c.Indicator(2))
	assert.Equal(t, IndicatorLocked, c.Indicator(3))
	assert.Equal(t, IndicatorLocked, c.Indicator(4))

	c.GoTo(2)
	c.Advance()
	assert.Equal(t, IndicatorCurrent, c.Indicator(3))
}

func TestProgress(t *testing.T) {
	c := newController(t, 4)
	assert.Equal(t, 0.0, c.ProgressFraction())
	assert.Equal(t, 0.0, c.DisplayProgress())

	c.Advance()
	assert.Equal(t, 0.25, c.ProgressFraction())
	assert.Equal(t, 0.25, c.DisplayProgress())

	c.Advance()
	c.Advance()
	assert.Equal(t, 0.75, c.ProgressFraction())
	assert.Equal(t, 1.0, c.DisplayProgress(), "final step counts as done")

	c.Retreat()
	assert.Equal(t, 0.75, c.DisplayProgress())
}

func TestObserver(t *testing.T) {
	type event struct {
		t        Transition
		from, to int
	}
	var events []event
	c := newController(t, 3, WithObserver(func(tr Transition, from, to int) {
		events = append(events, event{tr, from, to})
	}))

	c.Retreat() // no-op, not reported
	c.Advance()
	c.GoTo(2) // same step, not reported
	c.GoTo(1)
	c.GoTo(3) // rejected
	c.Advance()
	c.Retreat()

	assert.Equal(t, []event{
		{TransitionAdvance, 1, 2},
		{TransitionGoTo, 2, 1},
		{TransitionAdvance, 1, 2},
		{TransitionRetreat, 2, 1},
	}, events)
}

func TestStepLookup(t *testing.T) {
	c, err := New(DefaultSteps())
	require.NoError(t, err)

	s, ok := c.Step(2)
	require.True(t, ok)
	assert.Equal(t, KindRepository, s.Kind)
	assert.Equal(t, "GitHub Repository", s.Title)

	_, ok = c.Step(0)
	assert.False(t, ok)
	_, ok = c.Step(5)
	assert.False(t, ok)

	assert.Equal(t, KindCredentials, c.CurrentStep().Kind)

	steps := c.Steps()
	steps[0].Title = "changed"
	first, _ := c.Step(1)
	assert.Equal(t, "AWS Credentials", first.Title, "Steps returns a copy")
}

func TestStepKindString(t *testing.T) {
	assert.Equal(t, "credentials", KindCredentials.String())
	assert.Equal(t, "repository", KindRepository.String())
	assert.Equal(t, "deploy", KindDeploy.String())
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "kind(9)", StepKind(9).String())
}
