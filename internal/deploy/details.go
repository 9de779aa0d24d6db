package deploy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/imamik/launchpad/internal/config"
	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
	"github.com/imamik/launchpad/internal/util/labels"
)

// Details describes a finished deploy.
type Details struct {
	ID         string        `json:"id" yaml:"id"`
	AppName    string        `json:"app_name" yaml:"app_name"`
	AppURL     string        `json:"app_url" yaml:"app_url"`
	APIURL     string        `json:"api_url" yaml:"api_url"`
	DBEndpoint string        `json:"db_endpoint,omitempty" yaml:"db_endpoint,omitempty"`
	Bucket     string        `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	AssetURL   string        `json:"asset_url,omitempty" yaml:"asset_url,omitempty"`
	Cluster    string        `json:"cluster" yaml:"cluster"`
	Service    string        `json:"service" yaml:"service"`
	Region     string        `json:"region" yaml:"region"`
	RegionName string        `json:"region_name" yaml:"region_name"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	DeployedAt time.Time     `json:"deployed_at" yaml:"deployed_at"`

	// Tags are applied to every resource of the deploy.
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var newDeploymentID = uuid.NewString

// NewDetails derives endpoints and resource names for cfg.
func NewDetails(cfg *config.DeployConfig, took time.Duration, at time.Time) *Details {
	n := NamesFor(cfg.AppName)

	scheme := "http"
	if cfg.HTTPS {
		scheme = "https"
	}

	d := &Details{
		ID:         newDeploymentID(),
		AppName:    cfg.AppName,
		Cluster:    n.Cluster,
		Service:    n.Service,
		Region:     cfg.Region,
		RegionName: awsInternal.RegionName(cfg.Region),
		Duration:   took,
		DeployedAt: at,
		Tags:       labels.NewTagBuilder(n.Slug).WithRepository(cfg.Repository).Build(),
	}

	if cfg.Domain != "" {
		d.AppURL = fmt.Sprintf("%s://%s", scheme, cfg.Domain)
		d.APIURL = fmt.Sprintf("%s://api.%s", scheme, cfg.Domain)
	} else {
		d.AppURL = fmt.Sprintf("%s://%s-prod.%s.elb.amazonaws.com", scheme, n.Slug, cfg.Region)
		d.APIURL = fmt.Sprintf("%s://api-%s-prod.%s.elb.amazonaws.com", scheme, n.Slug, cfg.Region)
	}

	if cfg.Database.Enabled {
		d.DBEndpoint = fmt.Sprintf("%s.cluster-%s.%s.rds.amazonaws.com", n.Database, clusterID(n.Slug, cfg.Region), cfg.Region)
	}
	if cfg.Storage {
		d.Bucket = n.Bucket
	}

	return d
}

// HealthURL is the API health check endpoint.
func (d *Details) HealthURL() string {
	return d.APIURL + "/health"
}

// CopyAppURL puts the application URL on the system clipboard.
func (d *Details) CopyAppURL() error {
	if d.AppURL == "" {
		return ErrNoAppURL
	}
	if err := writeClipboard(d.AppURL); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// clusterID is a stable six character suffix for the database cluster.
func clusterID(appSlug, region string) string {
	sum := sha256.Sum256([]byte(appSlug + "/" + region))
	return hex.EncodeToString(sum[:3])
}
