package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/imamik/launchpad/internal/dashboard"
	"github.com/imamik/launchpad/internal/logging"
	"github.com/imamik/launchpad/internal/ui/tui"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var loadDashboard = dashboard.Load

// Dashboard prints deployments, stats and recent activity in the given
// format.
func Dashboard(ctx context.Context, output string) error {
	snapshot := loadDashboard()
	logging.FromContext(ctx).V(1).Info("loaded dashboard",
		"deployments", snapshot.Summary.Total,
		"failed", snapshot.Summary.Count(dashboard.StatusFailed),
	)

	switch output {
	case OutputText, "":
		fmt.Print(tui.RenderDashboard(snapshot))
	case OutputJSON:
		b, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
	case OutputYAML:
		b, err := yaml.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		fmt.Print(string(b))
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", output, OutputText, OutputJSON, OutputYAML)
	}
	return nil
}
