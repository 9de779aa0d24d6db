package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/dashboard"
	"github.com/imamik/launchpad/internal/deploy"
	"github.com/imamik/launchpad/internal/pricing"
	"github.com/imamik/launchpad/internal/wizard"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{754 * time.Second, "12m34s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCurrentSpinner(t *testing.T) {
	if currentSpinner(0) != spinnerFrames[0] {
		t.Errorf("expected first frame, got %q", currentSpinner(0))
	}
	if currentSpinner(len(spinnerFrames)+1) != spinnerFrames[1] {
		t.Error("expected spinner to wrap around")
	}
	if currentSpinner(-1) != spinnerFrames[1] {
		t.Error("expected negative frames to be mirrored")
	}
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(0.5, 10)
	if strings.Count(bar, "█") != 5 || strings.Count(bar, "░") != 5 {
		t.Errorf("expected half filled bar, got %q", bar)
	}
	if !strings.Contains(bar, "50%") {
		t.Errorf("expected percentage, got %q", bar)
	}
	if strings.Count(progressBar(2, 10), "█") != 10 {
		t.Error("expected fraction above 1 to be clamped")
	}
	if strings.Count(progressBar(-1, 10), "░") != 10 {
		t.Error("expected negative fraction to be clamped")
	}
}

func TestCalculateProgress(t *testing.T) {
	m := NewDeployModel(config.DefaultDeployConfig(), nil)
	if p := calculateProgress(m); p != 0 {
		t.Errorf("expected 0, got %v", p)
	}

	m.Phases[0].Done = true
	m.Phases[1].Skipped = true
	m.Phases[2].Done = true
	expected := 3.0 / 6.0
	if p := calculateProgress(m); p < expected-0.01 || p > expected+0.01 {
		t.Errorf("expected ~%v, got %v", expected, p)
	}

	m.Done = true
	if p := calculateProgress(m); p != 1.0 {
		t.Errorf("expected 1.0, got %v", p)
	}
}

func TestNewDeployModel_SkippedPhases(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	cfg.Storage = false

	m := NewDeployModel(cfg, nil)
	if len(m.Phases) != 6 {
		t.Fatalf("expected 6 phases, got %d", len(m.Phases))
	}
	if !m.Phases[2].Skipped || m.Phases[2].Key != deploy.PhaseStorage {
		t.Error("expected storage phase to be skipped")
	}
}

func TestModelUpdatePhase(t *testing.T) {
	m := NewDeployModel(config.DefaultDeployConfig(), nil)

	m.updatePhase(deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusStarted})
	if !m.Phases[0].Active {
		t.Error("expected infrastructure phase to be active")
	}

	m.updatePhase(deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusDone})
	if !m.Phases[0].Done || m.Phases[0].Active {
		t.Error("expected infrastructure phase to be done and not active")
	}

	// Starting a later phase finishes the ones before it
	m.updatePhase(deploy.Event{Phase: deploy.PhaseContainer, Status: deploy.StatusStarted})
	if !m.Phases[1].Done || !m.Phases[2].Done {
		t.Error("expected earlier phases to be done")
	}
	if !m.Phases[3].Active {
		t.Error("expected container phase to be active")
	}

	boom := errors.New("boom")
	m.updatePhase(deploy.Event{Phase: deploy.PhaseContainer, Status: deploy.StatusFailed, Err: boom})
	if m.Phases[3].Err != boom || m.Phases[3].Active {
		t.Error("expected container phase to carry the error")
	}

	// Unknown phases are ignored
	m.updatePhase(deploy.Event{Phase: "unknown", Status: deploy.StatusStarted})
}

func TestModelETA(t *testing.T) {
	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	m := NewDeployModel(config.DefaultDeployConfig(), nil)
	m.now = func() time.Time { return clock }

	m.updatePhase(deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusStarted})
	if m.ETA() != 0 {
		t.Error("expected no ETA before a phase finishes")
	}

	clock = clock.Add(4 * time.Second)
	m.updatePhase(deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusDone})
	m.updatePhase(deploy.Event{Phase: deploy.PhaseDatabase, Status: deploy.StatusStarted})
	clock = clock.Add(time.Second)

	// 3s left of database, then four phases at 4s
	if got := m.ETA(); got != 19*time.Second {
		t.Errorf("expected 19s, got %v", got)
	}
	if got := m.PhasesLeft(); got != 5 {
		t.Errorf("expected 5 phases left, got %d", got)
	}
	if !strings.Contains(renderView(m), "ETA ~19s, 5 phases left") {
		t.Error("expected ETA in header")
	}
}

func TestModelUpdate_Messages(t *testing.T) {
	m := NewDeployModel(config.DefaultDeployConfig(), nil)

	next, cmd := m.Update(TickMsg{})
	if next.(Model).SpinnerFrame != 1 || cmd == nil {
		t.Error("expected tick to advance spinner and schedule next tick")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if next.(Model).Width != 60 {
		t.Error("expected window width to be stored")
	}

	details := &deploy.Details{AppURL: "https://example.com"}
	next, cmd = m.Update(DoneMsg{Details: details})
	fm := next.(Model)
	if !fm.Done || fm.Details != details || cmd == nil {
		t.Error("expected done message to finish the model")
	}
	for _, p := range fm.Phases {
		if !p.Done {
			t.Errorf("expected phase %s to be done", p.Key)
		}
	}

	next, _ = m.Update(ErrMsg{Err: errors.New("failed")})
	if next.(Model).Err == nil {
		t.Error("expected error to be stored")
	}
}

func TestModelUpdate_QuitCancels(t *testing.T) {
	canceled := false
	m := NewDeployModel(config.DefaultDeployConfig(), func() { canceled = true })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !canceled {
		t.Error("expected cancel to be called")
	}
	if !next.(Model).Canceled || cmd == nil {
		t.Error("expected model to quit as canceled")
	}
}

func TestRenderView(t *testing.T) {
	m := NewDeployModel(config.DefaultDeployConfig(), nil)
	m.updatePhase(deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusDone})

	output := renderView(m)

	for _, want := range []string{"my-react-app", "us-east-1", "VPC & Security Groups", "RDS Database", "Deploying...", "q: cancel"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRenderView_Done(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	m := NewDeployModel(cfg, nil)
	m.Done = true
	m.Details = deploy.NewDetails(cfg, 754*time.Second, time.Now())

	output := renderView(m)

	for _, want := range []string{"Deployed", "Deployment Successful!", "Completed in 12m34s", "my-react-app-service", "my-react-app-assets-prod"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRenderSteps(t *testing.T) {
	c, err := wizard.New(wizard.DefaultSteps())
	if err != nil {
		t.Fatal(err)
	}
	c.Advance()

	output := RenderSteps(c)

	if !strings.Contains(output, checkMark+" ") {
		t.Error("expected completed step to be checked")
	}
	if !strings.Contains(output, currentMark) {
		t.Error("expected current step marker")
	}
	if !strings.Contains(output, lockedMark) {
		t.Error("expected locked steps")
	}
	if !strings.Contains(output, "Step 2 of 4: GitHub Repository") {
		t.Error("expected current step title")
	}
	if !strings.Contains(output, "25%") {
		t.Error("expected progress percentage")
	}
}

func TestIndicatorIcon(t *testing.T) {
	tests := []struct {
		ind  wizard.Indicator
		icon string
	}{
		{wizard.IndicatorCompleted, checkMark},
		{wizard.IndicatorCurrent, currentMark},
		{wizard.IndicatorLocked, lockedMark},
	}
	for _, tt := range tests {
		icon, _ := indicatorIcon(tt.ind)
		if icon != tt.icon {
			t.Errorf("indicatorIcon(%v) = %q, want %q", tt.ind, icon, tt.icon)
		}
	}
}

func TestRenderReview(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	output := RenderReview(deploy.Services(cfg), pricing.NewCalculator().Calculate(cfg))

	for _, want := range []string{"ECS Fargate", "Security & Networking", "Total Monthly Estimate", "47.00"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRenderDashboard(t *testing.T) {
	output := RenderDashboard(dashboard.Load())

	for _, want := range []string{"Total Deployments", "96.8%", "api-service", "75%", "Deployment failed", "Recent Activity", "AWS credentials validated"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	icon, _ := statusIcon(true)
	if icon != checkMark {
		t.Errorf("expected checkMark, got %q", icon)
	}
	icon, _ = statusIcon(false)
	if icon != crossMark {
		t.Errorf("expected crossMark, got %q", icon)
	}
}

func TestRunDeployTUI(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	want := &deploy.Details{AppURL: "https://example.com"}

	deployFn := func(_ context.Context, ch chan<- deploy.Event) (*deploy.Details, error) {
		ch <- deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusStarted}
		ch <- deploy.Event{Phase: deploy.PhaseInfrastructure, Status: deploy.StatusDone}
		return want, nil
	}

	got, err := RunDeployTUI(context.Background(), deployFn, cfg,
		tea.WithInput(nil), tea.WithoutRenderer(), tea.WithoutSignalHandler())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected details to be returned")
	}
}

func TestRunDeployTUI_Error(t *testing.T) {
	boom := errors.New("boom")
	deployFn := func(context.Context, chan<- deploy.Event) (*deploy.Details, error) {
		return nil, boom
	}

	_, err := RunDeployTUI(context.Background(), deployFn, config.DefaultDeployConfig(),
		tea.WithInput(nil), tea.WithoutRenderer(), tea.WithoutSignalHandler())
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
