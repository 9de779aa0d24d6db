package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderPhases(&b, m)

	if m.Done && m.Details != nil {
		b.WriteString(RenderDetails(m.Details))
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("launchpad: %s", m.AppName)
	if m.Region != "" {
		title += fmt.Sprintf(" (%s)", m.Region)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Done:
		status += readyStyle.Render("Deployed")
	case m.Canceled:
		status += warningStyle.Render("Canceled")
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	default:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render("Deploying...")
		if eta := m.ETA(); eta >= time.Second {
			status += dimStyle.Render(fmt.Sprintf(" ETA ~%s, %d phases left", formatDuration(eta), m.PhasesLeft()))
		}
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	fmt.Fprintf(b, "  %s\n", progressBar(calculateProgress(m), barWidth))
}

func renderPhases(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Deploy"))
	b.WriteString("\n")

	for _, phase := range m.Phases {
		var icon, extra string
		var style styleFunc
		switch {
		case phase.Err != nil:
			icon = crossMark
			style = sf(failedStyle)
			extra = phase.Err.Error()
		case phase.Skipped:
			icon = skipMark
			style = sf(dimStyle)
			extra = "skipped"
		case phase.Done:
			icon = checkMark
			style = sf(readyStyle)
		case phase.Active:
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		default:
			icon = pending
			style = sf(dimStyle)
		}
		fmt.Fprintf(b, "    %s %-24s %s\n", style(icon), style(phase.Name), dimStyle.Render(extra))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime))
	hint := "q: cancel"
	if m.Done || m.Err != nil || m.Canceled {
		hint = "done"
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  elapsed: %s  |  %s", elapsed, hint)))
	b.WriteString("\n")
}

// Helper functions

func statusIcon(ready bool) (string, styleFunc) {
	if ready {
		return checkMark, sf(readyStyle)
	}
	return crossMark, sf(failedStyle)
}

func currentSpinner(frame int) string {
	if len(spinnerFrames) == 0 {
		return spinner
	}
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

// progressBar renders fraction as a bar of width cells followed by a percentage.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	return progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %d%%", int(fraction*100+0.5))
}

func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}
	if len(m.Phases) == 0 {
		return 0
	}

	finished := 0
	for _, p := range m.Phases {
		if p.Done || p.Skipped {
			finished++
		}
	}
	return float64(finished) / float64(len(m.Phases))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
