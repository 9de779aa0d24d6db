// Package flow drives the deployment wizard. It owns a wizard.Controller,
// shows the content of the current step through a Prompter and turns the
// chosen action into a controller transition.
//
// Step content is selected with an exhaustive switch on wizard.StepKind.
// Simulated network work (credential validation and the deploy) runs with
// the caller's context and stops when it is canceled.
package flow
