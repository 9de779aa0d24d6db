package flow

import "errors"

// Step gate errors shown to the user. They never end the flow.
var (
	ErrNotValidated         = errors.New("credentials must be validated before continuing")
	ErrNotConnected         = errors.New("connect to GitHub before continuing")
	ErrNoRepositorySelected = errors.New("select a repository before continuing")
)
