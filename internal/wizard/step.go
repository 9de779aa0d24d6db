package wizard

import "fmt"

// StepKind tags a step with the content the rendering layer shows for it.
type StepKind int

// Step kinds of the deployment wizard, in flow order.
const (
	KindCredentials StepKind = iota + 1
	KindRepository
	KindDeploy
	KindSuccess
)

// String returns the lowercase name of the kind.
func (k StepKind) String() string {
	switch k {
	case KindCredentials:
		return "credentials"
	case KindRepository:
		return "repository"
	case KindDeploy:
		return "deploy"
	case KindSuccess:
		return "success"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Step is one ordinal stage of the wizard. ID is its 1-based position.
type Step struct {
	ID          int
	Kind        StepKind
	Title       string
	Description string
}

// DefaultSteps returns the four steps of the deployment wizard.
func DefaultSteps() []Step {
	return []Step{
		{ID: 1, Kind: KindCredentials, Title: "AWS Credentials", Description: "Configure your AWS access"},
		{ID: 2, Kind: KindRepository, Title: "GitHub Repository", Description: "Select your project"},
		{ID: 3, Kind: KindDeploy, Title: "Deploy Configuration", Description: "Review and deploy"},
		{ID: 4, Kind: KindSuccess, Title: "Success", Description: "Deployment complete"},
	}
}

// Indicator is the display status of a step indicator.
type Indicator string

// Indicator values. Completed takes precedence over current, matching how
// revisited steps keep their check mark.
const (
	IndicatorCompleted Indicator = "completed"
	IndicatorCurrent   Indicator = "current"
	IndicatorLocked    Indicator = "locked"
)

// Transition names a navigation operation.
type Transition string

// Transitions accepted by the controller.
const (
	TransitionAdvance Transition = "advance"
	TransitionRetreat Transition = "retreat"
	TransitionGoTo    Transition = "goto"
)
