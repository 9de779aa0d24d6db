package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/deploy"
	"github.com/imamik/launchpad/internal/ui/benchmarks"
)

// PhaseRow is a deploy phase for display.
type PhaseRow struct {
	Key     deploy.PhaseKey
	Name    string
	Done    bool
	Active  bool
	Skipped bool
	Err     error
}

// Model is the Bubble Tea model for the deploy screen.
type Model struct {
	AppName string
	Region  string

	Phases  []PhaseRow
	Details *deploy.Details

	StartTime time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width    int
	Height   int
	Err      error
	Done     bool
	Canceled bool

	plan    []deploy.Phase
	history []benchmarks.PhaseRecord
	now     func() time.Time
	cancel  context.CancelFunc
}

// NewDeployModel creates a model listing the phases of cfg. cancel stops
// the running deploy when the user quits.
func NewDeployModel(cfg *config.DeployConfig, cancel context.CancelFunc) Model {
	plan := deploy.Plan(cfg)
	rows := make([]PhaseRow, 0, len(plan))
	for _, p := range plan {
		rows = append(rows, PhaseRow{Key: p.Key, Name: p.Name, Skipped: p.Skipped})
	}

	return Model{
		AppName:   cfg.AppName,
		Region:    cfg.Region,
		Phases:    rows,
		StartTime: time.Now(),
		plan:      plan,
		now:       time.Now,
		cancel:    cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			m.Canceled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(deploy.Event(msg))
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Details = msg.Details
		m.Done = true
		for i := range m.Phases {
			m.Phases[i].Active = false
			if !m.Phases[i].Skipped {
				m.Phases[i].Done = true
			}
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(ev deploy.Event) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == ev.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Phases run in order, so anything before idx has finished
	for i := 0; i < idx; i++ {
		if !m.Phases[i].Skipped && m.Phases[i].Err == nil {
			m.Phases[i].Done = true
		}
		m.Phases[i].Active = false
	}

	row := &m.Phases[idx]
	switch ev.Status {
	case deploy.StatusStarted:
		row.Active = true
		m.history = append(m.history, benchmarks.PhaseRecord{Key: ev.Phase, StartedAt: m.now()})
	case deploy.StatusDone:
		row.Active = false
		row.Done = true
		for i := range m.history {
			if m.history[i].Key == ev.Phase && !m.history[i].Finished() {
				m.history[i].EndedAt = m.now()
			}
		}
	case deploy.StatusSkipped:
		row.Active = false
		row.Skipped = true
	case deploy.StatusFailed:
		row.Active = false
		row.Err = ev.Err
	}
}

// ETA estimates the time left from the phases finished so far. It is 0
// until a phase has finished or when nothing is running.
func (m Model) ETA() time.Duration {
	for _, rec := range m.history {
		if rec.Finished() {
			continue
		}
		return benchmarks.EstimateRemaining(m.plan, rec.Key, m.now().Sub(rec.StartedAt), m.history)
	}
	return 0
}

// PhasesLeft counts phases that will still run.
func (m Model) PhasesLeft() int {
	return benchmarks.PendingPhases(m.plan, m.history)
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
