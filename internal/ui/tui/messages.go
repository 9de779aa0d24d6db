// Package tui provides the Bubble Tea deploy screen and the lipgloss
// renderers for the wizard header, success details and dashboard.
package tui

import "github.com/imamik/launchpad/internal/deploy"

// PhaseMsg reports progress of a deploy phase.
type PhaseMsg deploy.Event

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the deploy finished.
type DoneMsg struct{ Details *deploy.Details }
