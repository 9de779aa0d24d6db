// Package wizard provides the step state machine behind the launchpad
// deployment wizard.
//
// A Controller tracks progression through a fixed, ordered sequence of steps:
// the current step and the set of steps the user has advanced past. It answers
// the accessibility and status queries a rendering layer needs to draw step
// indicators and a progress bar.
//
// Navigation never fails. Advancing past the last step, retreating before the
// first, or jumping to a step that has not been reached yet are ignored, so a
// linear onboarding flow can never get stuck. The controller is not safe for
// concurrent use; a single user drives it.
package wizard
