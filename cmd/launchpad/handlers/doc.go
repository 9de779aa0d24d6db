// Package handlers implements the CLI command logic.
//
// Handlers receive parsed flags from the commands package, read settings
// and the logger from the context prepared by Setup, and print to stdout.
// Package-level factory variables let tests replace prompts and terminal
// detection.
package handlers
