// Package prompt implements the interactive wizard steps with huh forms.
//
// Each step is one form: the step's fields first, then a select listing
// the actions offered by the flow. Aborting a form closes the wizard.
package prompt
