package deploy

import (
	"github.com/gosimple/slug"

	"github.com/imamik/launchpad/internal/config"
)

// PhaseKey identifies a deploy phase.
type PhaseKey string

// Deploy phases in execution order.
const (
	PhaseInfrastructure PhaseKey = "infrastructure"
	PhaseDatabase       PhaseKey = "database"
	PhaseStorage        PhaseKey = "storage"
	PhaseContainer      PhaseKey = "container"
	PhaseNetworking     PhaseKey = "networking"
	PhaseMonitoring     PhaseKey = "monitoring"
)

// Phase is one stage of a deploy.
type Phase struct {
	Key  PhaseKey
	Name string

	// Resources are provisioned in parallel.
	Resources []string

	// Skipped is set for phases of disabled services.
	Skipped bool
}

// Names are the AWS resource names derived from an application name.
type Names struct {
	Slug         string
	Cluster      string
	Service      string
	Database     string
	Bucket       string
	LoadBalancer string
}

// NamesFor derives resource names from appName. The name is slugified so
// "My React App" and "my-react-app" map to the same resources.
func NamesFor(appName string) Names {
	s := slug.Make(appName)
	return Names{
		Slug:         s,
		Cluster:      s + "-cluster",
		Service:      s + "-service",
		Database:     s + "-db",
		Bucket:       s + "-assets-prod",
		LoadBalancer: s + "-alb",
	}
}

// Plan returns every phase for cfg in execution order.
func Plan(cfg *config.DeployConfig) []Phase {
	n := NamesFor(cfg.AppName)

	networking := []string{n.LoadBalancer}
	if cfg.HTTPS {
		networking = append(networking, n.Slug+"-certificate")
	}
	if cfg.AutoScaling {
		networking = append(networking, n.Service+"-autoscaling")
	}

	return []Phase{
		{
			Key:       PhaseInfrastructure,
			Name:      "VPC & Security Groups",
			Resources: []string{n.Slug + "-vpc", n.Slug + "-subnets", n.Slug + "-sg"},
		},
		{
			Key:       PhaseDatabase,
			Name:      "RDS Database",
			Resources: []string{n.Database},
			Skipped:   !cfg.Database.Enabled,
		},
		{
			Key:       PhaseStorage,
			Name:      "S3 Bucket & CloudFront",
			Resources: []string{n.Bucket, n.Slug + "-cdn"},
			Skipped:   !cfg.Storage,
		},
		{
			Key:       PhaseContainer,
			Name:      "ECS Fargate Service",
			Resources: []string{n.Cluster, n.Service},
		},
		{
			Key:       PhaseNetworking,
			Name:      "Load Balancer",
			Resources: networking,
		},
		{
			Key:       PhaseMonitoring,
			Name:      "CloudWatch Monitoring",
			Resources: []string{n.Slug + "-logs", n.Slug + "-alarms"},
			Skipped:   !cfg.Monitoring,
		},
	}
}

// Service is a row of the deployment summary.
type Service struct {
	Name        string
	Description string
	Badge       string
}

// Services lists the AWS services cfg will create.
func Services(cfg *config.DeployConfig) []Service {
	services := []Service{
		{Name: "ECS Fargate", Description: "Containerized application hosting", Badge: "Required"},
	}
	if cfg.Database.Enabled {
		name := "RDS PostgreSQL"
		if cfg.Database.Engine == config.DBEngineMySQL {
			name = "RDS MySQL"
		}
		services = append(services, Service{Name: name, Description: "Managed database instance", Badge: "db.t3.micro"})
	}
	if cfg.Storage {
		services = append(services, Service{Name: "S3 + CloudFront", Description: "File storage and CDN", Badge: "Global"})
	}
	return append(services, Service{Name: "Security & Networking", Description: "VPC, Security Groups, Load Balancer", Badge: "Included"})
}
