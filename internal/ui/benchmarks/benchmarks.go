// Package benchmarks estimates the time left in a running deploy from the
// durations of the phases that already finished.
package benchmarks

import (
	"time"

	"github.com/imamik/launchpad/internal/deploy"
)

// PhaseRecord is the observed timing of one phase. EndedAt is zero while
// the phase runs.
type PhaseRecord struct {
	Key       deploy.PhaseKey
	StartedAt time.Time
	EndedAt   time.Time
}

// Finished reports whether the phase has ended.
func (r PhaseRecord) Finished() bool {
	return !r.EndedAt.IsZero()
}

// Duration returns how long a finished phase took.
func (r PhaseRecord) Duration() time.Duration {
	if !r.Finished() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// AverageDuration returns the mean duration of finished phases. ok is false
// until one phase has finished.
func AverageDuration(history []PhaseRecord) (avg time.Duration, ok bool) {
	var total time.Duration
	var n int
	for _, rec := range history {
		if !rec.Finished() {
			continue
		}
		total += rec.Duration()
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / time.Duration(n), true
}

// EstimateRemaining returns the expected time until the deploy finishes.
// Every phase still to run is assumed to take the average of the finished
// ones. The current phase counts max(0, avg - phaseElapsed). Skipped
// phases take no time. Without history the estimate is 0.
func EstimateRemaining(plan []deploy.Phase, current deploy.PhaseKey, phaseElapsed time.Duration, history []PhaseRecord) time.Duration {
	avg, ok := AverageDuration(history)
	if !ok {
		return 0
	}

	currentIdx := -1
	for i, p := range plan {
		if p.Key == current {
			currentIdx = i
			break
		}
	}
	if currentIdx < 0 {
		return 0
	}

	finished := make(map[deploy.PhaseKey]bool, len(history))
	for _, rec := range history {
		if rec.Finished() {
			finished[rec.Key] = true
		}
	}

	var remaining time.Duration
	if !finished[current] && avg > phaseElapsed {
		remaining += avg - phaseElapsed
	}

	for _, p := range plan[currentIdx+1:] {
		if p.Skipped || finished[p.Key] {
			continue
		}
		remaining += avg
	}

	return remaining
}

// PendingPhases counts phases of plan that will still run.
func PendingPhases(plan []deploy.Phase, history []PhaseRecord) int {
	finished := make(map[deploy.PhaseKey]bool, len(history))
	for _, rec := range history {
		if rec.Finished() {
			finished[rec.Key] = true
		}
	}
	n := 0
	for _, p := range plan {
		if !p.Skipped && !finished[p.Key] {
			n++
		}
	}
	return n
}
