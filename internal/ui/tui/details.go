package tui

import (
	"fmt"
	"strings"

	"github.com/imamik/launchpad/internal/deploy"
	"github.com/imamik/launchpad/internal/pricing"
)

// RenderDetails renders the endpoints and resources of a finished deploy.
func RenderDetails(d *deploy.Details) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("  Deployment Successful!"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Completed in %s", formatDuration(d.Duration))))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Application URLs"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %-22s %s\n", "Frontend Application", urlStyle.Render(d.AppURL))
	fmt.Fprintf(&b, "    %-22s %s\n", "API Endpoint", urlStyle.Render(d.APIURL))

	b.WriteString(sectionStyle.Render("  Infrastructure"))
	b.WriteString("\n")

	rows := []struct {
		name, value, state string
	}{
		{"ECS Service", d.Service, "Running"},
		{"Database", d.DBEndpoint, "Available"},
		{"S3 Bucket", d.Bucket, "Active"},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		icon, style := statusIcon(true)
		fmt.Fprintf(&b, "    %s %-18s %s %s\n", style(icon), r.name, r.value, dimStyle.Render(r.state))
	}
	fmt.Fprintf(&b, "    %-23s %s (%s)\n", "Region", d.Region, d.RegionName)

	if d.AssetURL != "" {
		fmt.Fprintf(&b, "    %-23s %s\n", "Asset link", urlStyle.Render(d.AssetURL))
	}

	return b.String()
}

// RenderReview renders the deployment summary and cost estimate shown
// before deploying.
func RenderReview(services []deploy.Service, estimate *pricing.Estimate) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("  Deployment Summary"))
	b.WriteString("\n")
	for _, s := range services {
		fmt.Fprintf(&b, "    %-24s %-38s %s\n", activeStyle.Render(s.Name), subtitleStyle.Render(s.Description), readyStyle.Render(s.Badge))
	}

	b.WriteString(sectionStyle.Render("  Estimated Monthly Cost"))
	b.WriteString("\n")
	for _, item := range estimate.Items {
		fmt.Fprintf(&b, "    %-40s $%7.2f\n", fmt.Sprintf("%s (%s)", item.Description, item.Detail), item.Total)
	}
	fmt.Fprintf(&b, "    %-40s %s\n", "Total Monthly Estimate", readyStyle.Render(fmt.Sprintf("$%7.2f", estimate.Total)))

	return b.String()
}
