package flow

import (
	"context"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/deploy"
	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
	githubInternal "github.com/imamik/launchpad/internal/platform/github"
)

// ActionKind is what the user chose to do on a step.
type ActionKind int

// Actions.
const (
	ActionContinue ActionKind = iota + 1
	ActionBack
	ActionGoTo
	ActionCopy
	ActionClose
)

// Action is a user choice. Step is set for ActionGoTo. The zero Action
// keeps the current step.
type Action struct {
	Kind ActionKind
	Step int
}

// Choice is a selectable action with its label.
type Choice struct {
	Label  string
	Action Action
}

// SearchFunc filters the repository catalog.
type SearchFunc func(term string) ([]githubInternal.Repository, error)

// Prompter shows step content and collects the user's input. Each method
// edits its argument in place and returns the action picked from choices.
type Prompter interface {
	Credentials(ctx context.Context, creds *awsInternal.Credentials, choices []Choice) (Action, error)
	Token(ctx context.Context, token *string, choices []Choice) (Action, error)
	Repository(ctx context.Context, search SearchFunc, selected *int64, choices []Choice) (Action, error)
	Configure(ctx context.Context, cfg *config.DeployConfig, review func() string, choices []Choice) (Action, error)
	Success(ctx context.Context, details *deploy.Details, choices []Choice) (Action, error)

	// Wait shows title while fn runs.
	Wait(ctx context.Context, title string, fn func(context.Context) error) error
}
