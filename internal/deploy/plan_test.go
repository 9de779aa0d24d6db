package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/launchpad/internal/config"
)

func TestNamesFor(t *testing.T) {
	n := NamesFor("My React App")

	assert.Equal(t, "my-react-app", n.Slug)
	assert.Equal(t, "my-react-app-cluster", n.Cluster)
	assert.Equal(t, "my-react-app-service", n.Service)
	assert.Equal(t, "my-react-app-db", n.Database)
	assert.Equal(t, "my-react-app-assets-prod", n.Bucket)
	assert.Equal(t, "my-react-app-alb", n.LoadBalancer)
}

func TestPlan_Defaults(t *testing.T) {
	phases := Plan(config.DefaultDeployConfig())

	keys := make([]PhaseKey, 0, len(phases))
	for _, p := range phases {
		keys = append(keys, p.Key)
		assert.False(t, p.Skipped, "phase %s should run with defaults", p.Key)
		assert.NotEmpty(t, p.Resources)
	}
	assert.Equal(t, []PhaseKey{
		PhaseInfrastructure, PhaseDatabase, PhaseStorage,
		PhaseContainer, PhaseNetworking, PhaseMonitoring,
	}, keys)

	assert.Equal(t, []string{"my-react-app-alb", "my-react-app-certificate", "my-react-app-service-autoscaling"}, phases[4].Resources)
}

func TestPlan_SkipsDisabledServices(t *testing.T) {
	cfg := config.DefaultDeployConfig()
	cfg.Database.Enabled = false
	cfg.Storage = false
	cfg.Monitoring = false
	cfg.HTTPS = false
	cfg.AutoScaling = false

	skipped := map[PhaseKey]bool{}
	for _, p := range Plan(cfg) {
		skipped[p.Key] = p.Skipped
		if p.Key == PhaseNetworking {
			assert.Equal(t, []string{"my-react-app-alb"}, p.Resources)
		}
	}

	assert.False(t, skipped[PhaseInfrastructure])
	assert.True(t, skipped[PhaseDatabase])
	assert.True(t, skipped[PhaseStorage])
	assert.False(t, skipped[PhaseContainer])
	assert.False(t, skipped[PhaseNetworking])
	assert.True(t, skipped[PhaseMonitoring])
}

func TestServices(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.DeployConfig)
		want   []string
	}{
		{
			name:   "defaults",
			modify: func(*config.DeployConfig) {},
			want:   []string{"ECS Fargate", "RDS PostgreSQL", "S3 + CloudFront", "Security & Networking"},
		},
		{
			name:   "mysql",
			modify: func(c *config.DeployConfig) { c.Database.Engine = config.DBEngineMySQL },
			want:   []string{"ECS Fargate", "RDS MySQL", "S3 + CloudFront", "Security & Networking"},
		},
		{
			name: "minimal",
			modify: func(c *config.DeployConfig) {
				c.Database.Enabled = false
				c.Storage = false
			},
			want: []string{"ECS Fargate", "Security & Networking"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultDeployConfig()
			tt.modify(cfg)

			var names []string
			for _, s := range Services(cfg) {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
