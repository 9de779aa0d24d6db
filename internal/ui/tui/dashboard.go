package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/launchpad/internal/dashboard"
)

// RenderDashboard renders the dashboard once using lipgloss.
func RenderDashboard(s dashboard.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enterprise SaaS Deployment Engine"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Deploy your applications to AWS with zero DevOps knowledge"))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(s.Stats))
	for _, stat := range s.Stats {
		change := readyStyle.Render(stat.Change)
		if stat.Trend == dashboard.TrendDown {
			change = failedStyle.Render(stat.Change)
		}
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n%s\n%s %s",
			subtitleStyle.Render(stat.Title),
			titleStyle.Render(stat.Value),
			change,
			dimStyle.Render(stat.Description))))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("  Deployments (%d)", s.Summary.Total)))
	b.WriteString("\n")
	for _, d := range s.Deployments {
		icon, style := deploymentIcon(d.Status)
		fmt.Fprintf(&b, "    %s %-16s %-10s %-10s %s\n",
			style(icon), style(d.Name), d.TechStack, d.Region, dimStyle.Render(d.LastDeploy))
		if d.Status == dashboard.StatusInProgress {
			fmt.Fprintf(&b, "         %s\n", progressBar(float64(d.Progress)/100, 20))
		} else {
			fmt.Fprintf(&b, "         %s\n", urlStyle.Render(d.URL))
		}
	}

	counts := make([]string, 0, len(dashboard.Statuses))
	for _, st := range dashboard.Statuses {
		counts = append(counts, fmt.Sprintf("%s: %d", st, s.Summary.Count(st)))
	}
	b.WriteString("    ")
	b.WriteString(dimStyle.Render(strings.Join(counts, "  |  ")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Recent Activity"))
	b.WriteString("\n")
	for _, a := range s.Activity {
		icon, style := deploymentIcon(a.Status)
		fmt.Fprintf(&b, "    %s %-30s %-16s %s\n", style(icon), a.Action, a.Project, dimStyle.Render(a.Time))
	}

	return b.String()
}

func deploymentIcon(status dashboard.Status) (string, styleFunc) {
	switch status {
	case dashboard.StatusSuccess:
		return checkMark, sf(readyStyle)
	case dashboard.StatusFailed:
		return crossMark, sf(failedStyle)
	case dashboard.StatusInProgress:
		return spinner, sf(activeStyle)
	default:
		return pending, sf(dimStyle)
	}
}
