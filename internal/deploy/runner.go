package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/metrics"
	"github.com/imamik/launchpad/internal/util/async"
	"github.com/imamik/launchpad/internal/util/labels"
	"github.com/imamik/launchpad/internal/util/retry"
)

// Status is the state reported for a phase.
type Status string

// Phase statuses.
const (
	StatusStarted Status = "started"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Event reports the progress of a phase.
type Event struct {
	Phase  PhaseKey
	Name   string
	Status Status
	Err    error
}

// AssetSigner presigns object URLs.
type AssetSigner interface {
	AssetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// AssetKey is the object linked from the success screen.
const AssetKey = "index.html"

// Runner performs simulated deploys.
type Runner struct {
	// StepDelay is how long each resource takes to provision.
	StepDelay time.Duration

	// Retries is how often a failed resource is provisioned again.
	Retries int

	signer    AssetSigner
	now       func() time.Time
	provision func(ctx context.Context, resource string) error
}

// NewRunner creates a runner. signer may be nil, in which case no asset
// link is produced.
func NewRunner(stepDelay time.Duration, signer AssetSigner) *Runner {
	r := &Runner{
		StepDelay: stepDelay,
		Retries:   2,
		signer:    signer,
		now:       time.Now,
	}
	r.provision = func(ctx context.Context, _ string) error {
		return sleep(ctx, r.StepDelay)
	}
	return r
}

// Run deploys cfg. Progress is sent on events, which may be nil; the
// caller must keep receiving until Run returns. A canceled context stops the
// deploy after the running phase's resources observe it.
func (r *Runner) Run(ctx context.Context, cfg *config.DeployConfig, events chan<- Event) (details *Details, err error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deploy configuration: %w", err)
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("app", cfg.AppName, "region", cfg.Region)
	start := r.now()
	defer func() {
		metrics.RecordDeploy(metrics.ResultFor(err), r.now().Sub(start).Seconds())
	}()

	emit := func(e Event) {
		if events == nil {
			return
		}
		select {
		case events <- e:
		case <-ctx.Done():
		}
	}

	log.Info("starting deploy")
	slug := NamesFor(cfg.AppName).Slug

	for _, phase := range Plan(cfg) {
		if phase.Skipped {
			log.V(1).Info("skipping phase", "phase", phase.Key)
			emit(Event{Phase: phase.Key, Name: phase.Name, Status: StatusSkipped})
			continue
		}

		emit(Event{Phase: phase.Key, Name: phase.Name, Status: StatusStarted})
		log.V(1).Info("provisioning phase", "phase", phase.Key, "resources", phase.Resources)

		tags := labels.NewTagBuilder(slug).
			WithRepository(cfg.Repository).
			WithPhase(string(phase.Key)).
			Build()

		tasks := make([]async.Task, 0, len(phase.Resources))
		for _, res := range phase.Resources {
			tasks = append(tasks, async.Task{
				Name: res,
				Func: func(ctx context.Context) error {
					log.V(1).Info("provisioning resource", "resource", res, "tags", tags)
					return r.provisionWithRetry(ctx, log, res)
				},
			})
		}

		if err := async.Run(ctx, tasks); err != nil {
			emit(Event{Phase: phase.Key, Name: phase.Name, Status: StatusFailed, Err: err})
			log.Error(err, "deploy phase failed", "phase", phase.Key)
			return nil, fmt.Errorf("phase %s failed: %w", phase.Key, err)
		}

		emit(Event{Phase: phase.Key, Name: phase.Name, Status: StatusDone})
	}

	details = NewDetails(cfg, r.now().Sub(start), r.now())

	if cfg.Storage && r.signer != nil {
		link, err := r.signer.AssetURL(ctx, details.Bucket, AssetKey, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to create asset link: %w", err)
		}
		details.AssetURL = link
	}

	log.Info("deploy complete", "url", details.AppURL, "duration", details.Duration)
	return details, nil
}

func (r *Runner) provisionWithRetry(ctx context.Context, log logr.Logger, resource string) error {
	return retry.Do(ctx,
		func(ctx context.Context) error { return r.provision(ctx, resource) },
		retry.WithMaxRetries(r.Retries),
		retry.WithInitialDelay(r.StepDelay/2),
		retry.WithMaxDelay(r.StepDelay*2),
		retry.WithOnRetry(func(attempt int, err error) {
			log.Info("retrying resource", "resource", resource, "attempt", attempt, "error", err.Error())
		}),
	)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
