package flow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/deploy"
	"github.com/imamik/launchpad/internal/metrics"
	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
	githubInternal "github.com/imamik/launchpad/internal/platform/github"
	s3Internal "github.com/imamik/launchpad/internal/platform/s3"
	"github.com/imamik/launchpad/internal/pricing"
	"github.com/imamik/launchpad/internal/ui/tui"
	"github.com/imamik/launchpad/internal/wizard"
)

// LaunchFunc shows a deploy while run executes.
type LaunchFunc func(ctx context.Context, cfg *config.DeployConfig, run tui.DeployFunc) (*deploy.Details, error)

// SignerFunc builds the asset signer for validated credentials.
type SignerFunc func(ctx context.Context, creds awsInternal.Credentials) (deploy.AssetSigner, error)

// Options configure a Flow.
type Options struct {
	Settings  *config.Settings
	Prompter  Prompter
	Validator *awsInternal.Validator
	GitHub    *githubInternal.Client
	Out       io.Writer

	// Launch defaults to printing phase events to Out.
	Launch LaunchFunc

	// Signer defaults to an S3 presigner for the validated session.
	Signer SignerFunc

	// SavePath, when set, receives the deploy configuration before deploying.
	SavePath string
}

// Result is the outcome of a wizard run.
type Result struct {
	Config  *config.DeployConfig
	Details *deploy.Details

	// Deployed is set once the deploy finished.
	Deployed bool
}

// Flow runs the deployment wizard.
type Flow struct {
	opts Options
	ctrl *wizard.Controller
	log  logr.Logger

	creds     awsInternal.Credentials
	validated awsInternal.Credentials
	signer    deploy.AssetSigner

	token  string
	repoID int64

	cfg     *config.DeployConfig
	details *deploy.Details
}

// New creates a flow positioned on the first step.
func New(ctx context.Context, opts Options) (*Flow, error) {
	if opts.Settings == nil {
		s := config.DefaultSettings()
		opts.Settings = &s
	}
	if opts.Validator == nil {
		opts.Validator = awsInternal.NewValidator(opts.Settings.ValidateDelay)
	}
	if opts.GitHub == nil {
		opts.GitHub = githubInternal.NewClient(opts.Settings.AccountOwner)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Launch == nil {
		opts.Launch = printLaunch(opts.Out)
	}
	if opts.Signer == nil {
		opts.Signer = sessionSigner
	}

	f := &Flow{
		opts:  opts,
		log:   logr.FromContextOrDiscard(ctx).WithName("wizard"),
		creds: awsInternal.Credentials{Region: opts.Settings.DefaultRegion},
		cfg:   config.DefaultDeployConfig(),
	}
	f.cfg.Region = opts.Settings.DefaultRegion

	ctrl, err := wizard.New(wizard.DefaultSteps(), wizard.WithObserver(f.observe))
	if err != nil {
		return nil, err
	}
	f.ctrl = ctrl
	metrics.SetCurrentStep(ctrl.Current())

	return f, nil
}

// Controller returns the wizard state machine.
func (f *Flow) Controller() *wizard.Controller {
	return f.ctrl
}

// Run shows steps until the user closes the wizard.
func (f *Flow) Run(ctx context.Context) (*Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return f.result(), err
		}

		fmt.Fprint(f.opts.Out, tui.RenderSteps(f.ctrl))

		step := f.ctrl.CurrentStep()
		action, err := f.runStep(ctx, step)
		if err != nil {
			return f.result(), fmt.Errorf("%s: %w", step.Title, err)
		}

		if !f.apply(action) {
			return f.result(), nil
		}
	}
}

func (f *Flow) runStep(ctx context.Context, step wizard.Step) (Action, error) {
	switch step.Kind {
	case wizard.KindCredentials:
		return f.credentialsStep(ctx)
	case wizard.KindRepository:
		return f.repositoryStep(ctx)
	case wizard.KindDeploy:
		return f.deployStep(ctx)
	case wizard.KindSuccess:
		return f.successStep(ctx)
	default:
		return Action{}, fmt.Errorf("unknown step kind %s", step.Kind)
	}
}

// apply performs the transition for action. It reports false when the
// wizard should close.
func (f *Flow) apply(action Action) bool {
	switch action.Kind {
	case ActionContinue:
		f.ctrl.Advance()
	case ActionBack:
		f.ctrl.Retreat()
	case ActionGoTo:
		if !f.ctrl.GoTo(action.Step) {
			f.log.V(1).Info("step not accessible", "step", action.Step)
		}
	case ActionClose:
		return false
	}
	return true
}

func (f *Flow) observe(t wizard.Transition, from, to int) {
	metrics.RecordTransition(string(t), to)
	f.log.V(1).Info("step changed", "transition", t, "from", from, "to", to)
}

func (f *Flow) result() *Result {
	return &Result{
		Config:   f.cfg,
		Details:  f.details,
		Deployed: f.details != nil,
	}
}

// choices builds the actions offered on the current step. Only accessible
// steps can be jumped to.
func (f *Flow) choices(continueLabel string, back bool, extra ...Choice) []Choice {
	var out []Choice
	if continueLabel != "" {
		out = append(out, Choice{Label: continueLabel, Action: Action{Kind: ActionContinue}})
	}
	out = append(out, extra...)
	if back && f.ctrl.Current() > 1 {
		out = append(out, Choice{Label: "Back", Action: Action{Kind: ActionBack}})
	}
	for _, s := range f.ctrl.Steps() {
		if s.ID == f.ctrl.Current() || !f.ctrl.IsAccessible(s.ID) {
			continue
		}
		out = append(out, Choice{
			Label:  fmt.Sprintf("Go to %d. %s", s.ID, s.Title),
			Action: Action{Kind: ActionGoTo, Step: s.ID},
		})
	}
	return append(out, Choice{Label: "Close", Action: Action{Kind: ActionClose}})
}

func (f *Flow) warn(err error) {
	fmt.Fprintf(f.opts.Out, "  %v\n", err)
}

func (f *Flow) credentialsStep(ctx context.Context) (Action, error) {
	action, err := f.opts.Prompter.Credentials(ctx, &f.creds, f.choices("Validate & Continue", false))
	if err != nil {
		return action, err
	}

	// Any edit invalidates an earlier validation, however the step is left
	if !f.credentialsValidated() {
		f.validated = awsInternal.Credentials{}
		f.signer = nil
	}

	if action.Kind != ActionContinue || f.credentialsValidated() {
		return action, nil
	}

	err = f.opts.Prompter.Wait(ctx, "Validating AWS credentials...", func(ctx context.Context) error {
		return f.opts.Validator.Validate(ctx, f.creds)
	})
	metrics.RecordCredentialValidation(metrics.ResultFor(err))
	if err != nil {
		if ctx.Err() != nil {
			return Action{}, err
		}
		f.warn(fmt.Errorf("validation failed: %w", err))
		return Action{}, nil
	}

	signer, err := f.opts.Signer(ctx, f.creds)
	if err != nil {
		return Action{}, err
	}

	f.validated = f.creds
	f.signer = signer
	f.cfg.Region = f.creds.Region
	f.log.Info("credentials validated", "region", f.creds.Region, "accessKeyID", f.creds.MaskedAccessKeyID())

	return action, nil
}

// credentialsValidated reports whether the credentials as currently
// entered passed validation.
func (f *Flow) credentialsValidated() bool {
	return f.validated != (awsInternal.Credentials{}) && f.creds == f.validated
}

func (f *Flow) repositoryStep(ctx context.Context) (Action, error) {
	if !f.opts.GitHub.Connected() {
		action, err := f.opts.Prompter.Token(ctx, &f.token, f.choices("Connect GitHub", true))
		if err != nil || action.Kind != ActionContinue {
			return action, err
		}
		if err := f.opts.GitHub.Connect(ctx, f.token); err != nil {
			f.warn(fmt.Errorf("%w: %v", ErrNotConnected, err))
		}
		// Stay on the step to pick a repository
		return Action{}, nil
	}

	action, err := f.opts.Prompter.Repository(ctx, f.opts.GitHub.Search, &f.repoID, f.choices("Continue", true))
	if err != nil || action.Kind != ActionContinue {
		return action, err
	}

	repo, err := f.opts.GitHub.Get(f.repoID)
	if err != nil {
		f.warn(fmt.Errorf("%w: %v", ErrNoRepositorySelected, err))
		return Action{}, nil
	}

	if f.cfg.Repository != repo.GetFullName() {
		f.cfg.AppName = repo.GetName()
		f.cfg.Repository = repo.GetFullName()
		f.cfg.Framework = repo.Framework
	}

	return action, nil
}

func (f *Flow) deployStep(ctx context.Context) (Action, error) {
	if !f.credentialsValidated() {
		f.warn(ErrNotValidated)
		return Action{Kind: ActionGoTo, Step: 1}, nil
	}

	review := func() string {
		return tui.RenderReview(deploy.Services(f.cfg), pricing.NewCalculator().Calculate(f.cfg))
	}

	action, err := f.opts.Prompter.Configure(ctx, f.cfg, review, f.choices("Deploy to AWS", true))
	if err != nil || action.Kind != ActionContinue {
		return action, err
	}

	if err := f.cfg.Validate(); err != nil {
		f.warn(err)
		return Action{}, nil
	}

	if f.opts.SavePath != "" {
		if err := config.SaveDeployConfig(f.cfg, f.opts.SavePath); err != nil {
			return Action{}, err
		}
		f.log.V(1).Info("saved deploy configuration", "path", f.opts.SavePath)
	}

	runner := deploy.NewRunner(f.opts.Settings.DeployStepDelay, f.signer)
	details, err := f.opts.Launch(ctx, f.cfg, func(ctx context.Context, ch chan<- deploy.Event) (*deploy.Details, error) {
		return runner.Run(ctx, f.cfg, ch)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			f.warn(errors.New("deploy canceled"))
			return Action{}, nil
		}
		if ctx.Err() != nil {
			return Action{}, err
		}
		f.warn(fmt.Errorf("deploy failed: %w", err))
		return Action{}, nil
	}

	f.details = details
	return action, nil
}

func (f *Flow) successStep(ctx context.Context) (Action, error) {
	if f.details == nil {
		return Action{Kind: ActionGoTo, Step: 3}, nil
	}

	copyURL := Choice{Label: "Copy app URL", Action: Action{Kind: ActionCopy}}
	action, err := f.opts.Prompter.Success(ctx, f.details, f.choices("", false, copyURL))
	if err != nil {
		return action, err
	}

	if action.Kind == ActionCopy {
		if err := f.details.CopyAppURL(); err != nil {
			f.warn(err)
		} else {
			fmt.Fprintf(f.opts.Out, "  Copied %s to clipboard\n", f.details.AppURL)
		}
		return Action{}, nil
	}

	return action, nil
}

func sessionSigner(ctx context.Context, creds awsInternal.Credentials) (deploy.AssetSigner, error) {
	sess, err := awsInternal.NewSession(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s3Internal.NewClient(sess.Config()), nil
}

// printLaunch reports phase events as plain lines.
func printLaunch(out io.Writer) LaunchFunc {
	return func(ctx context.Context, cfg *config.DeployConfig, run tui.DeployFunc) (*deploy.Details, error) {
		ch := make(chan deploy.Event, 10)

		var details *deploy.Details
		var err error
		go func() {
			defer close(ch)
			details, err = run(ctx, ch)
		}()

		fmt.Fprintf(out, "Deploying %s to %s...\n", cfg.AppName, cfg.Region)
		for ev := range ch {
			switch ev.Status {
			case deploy.StatusStarted:
				fmt.Fprintf(out, "  [..] %s\n", ev.Name)
			case deploy.StatusDone:
				fmt.Fprintf(out, "  [OK] %s\n", ev.Name)
			case deploy.StatusSkipped:
				fmt.Fprintf(out, "  [--] %s (skipped)\n", ev.Name)
			case deploy.StatusFailed:
				fmt.Fprintf(out, "  [!!] %s: %v\n", ev.Name, ev.Err)
			}
		}
		return details, err
	}
}
