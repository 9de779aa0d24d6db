// Package metrics records wizard and deploy metrics in a private Prometheus
// registry and writes them in the text exposition format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Result label values.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultCanceled = "canceled"
)

// Registry holds every launchpad metric.
var Registry = prometheus.NewRegistry()

var (
	// Wizard metrics
	wizardTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Total number of accepted wizard transitions by kind",
		},
		[]string{"transition"},
	)

	wizardStepCurrent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "launchpad",
			Subsystem: "wizard",
			Name:      "step_current",
			Help:      "Id of the wizard step currently shown",
		},
	)

	// Deploy metrics
	deployTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Subsystem: "deploy",
			Name:      "total",
			Help:      "Total number of deploys by result",
		},
		[]string{"result"},
	)

	deployDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "launchpad",
			Subsystem: "deploy",
			Name:      "duration_seconds",
			Help:      "Duration of deploys in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 8), // 100ms to ~13s
		},
	)

	// Credential metrics
	credentialValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "launchpad",
			Subsystem: "credential",
			Name:      "validations_total",
			Help:      "Total number of AWS credential validations by result",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		wizardTransitionsTotal,
		wizardStepCurrent,
		deployTotal,
		deployDuration,
		credentialValidationsTotal,
	)
}

// SetCurrentStep records the wizard step currently shown.
func SetCurrentStep(id int) {
	wizardStepCurrent.Set(float64(id))
}

// RecordTransition records an accepted wizard transition landing on step to.
func RecordTransition(transition string, to int) {
	wizardTransitionsTotal.WithLabelValues(transition).Inc()
	SetCurrentStep(to)
}

// RecordDeploy records a finished deploy.
func RecordDeploy(result string, seconds float64) {
	deployTotal.WithLabelValues(result).Inc()
	deployDuration.Observe(seconds)
}

// RecordCredentialValidation records a credential validation attempt.
func RecordCredentialValidation(result string) {
	credentialValidationsTotal.WithLabelValues(result).Inc()
}

// ResultFor maps an operation error to a result label.
func ResultFor(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	default:
		return ResultError
	}
}

// Write gathers the registry and writes it to w in text format.
func Write(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the metrics to path.
func WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
