package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/deploy"
)

// DeployFunc runs a deploy, sending phase updates on ch.
type DeployFunc func(ctx context.Context, ch chan<- deploy.Event) (*deploy.Details, error)

// RunDeployTUI wraps a deploy with a Bubble Tea TUI. Quitting the TUI
// cancels the deploy and returns context.Canceled.
func RunDeployTUI(ctx context.Context, deployFn DeployFunc, cfg *config.DeployConfig, opts ...tea.ProgramOption) (*deploy.Details, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewDeployModel(cfg, cancel)
	p := tea.NewProgram(m, opts...)

	// Run the deploy in background goroutine
	go func() {
		ch := make(chan deploy.Event, 10)

		var details *deploy.Details
		var err error
		go func() {
			defer close(ch)
			details, err = deployFn(ctx, ch)
		}()

		for ev := range ch {
			p.Send(PhaseMsg(ev))
		}

		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{Details: details})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	switch {
	case fm.Canceled:
		return nil, context.Canceled
	case fm.Err != nil:
		return nil, fm.Err
	}
	return fm.Details, nil
}
