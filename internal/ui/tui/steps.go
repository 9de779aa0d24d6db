package tui

import (
	"fmt"
	"strings"

	"github.com/imamik/launchpad/internal/wizard"
)

// RenderSteps renders the wizard's step indicators and progress bar.
func RenderSteps(c *wizard.Controller) string {
	var b strings.Builder

	for _, step := range c.Steps() {
		icon, style := indicatorIcon(c.Indicator(step.ID))
		fmt.Fprintf(&b, "  %s %s\n", style(icon), style(fmt.Sprintf("%d. %s", step.ID, step.Title)))
	}

	fmt.Fprintf(&b, "  %s\n", progressBar(c.DisplayProgress(), 30))

	current := c.CurrentStep()
	b.WriteString(sectionStyle.Render(fmt.Sprintf("  Step %d of %d: %s", current.ID, c.Len(), current.Title)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  " + current.Description))
	b.WriteString("\n")

	return b.String()
}

func indicatorIcon(ind wizard.Indicator) (string, styleFunc) {
	switch ind {
	case wizard.IndicatorCompleted:
		return checkMark, sf(readyStyle)
	case wizard.IndicatorCurrent:
		return currentMark, sf(activeStyle)
	default:
		return lockedMark, sf(dimStyle)
	}
}
