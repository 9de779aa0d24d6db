// Package pricing estimates the monthly AWS cost of a deployment.
package pricing

import (
	"fmt"

	"github.com/imamik/launchpad/internal/config"
)

// Service keys used in Prices.
const (
	ServiceECS        = "ecs"
	ServiceRDS        = "rds"
	ServiceS3         = "s3"
	ServiceCloudWatch = "cloudwatch"
)

// Calculator calculates deployment costs from a price table.
type Calculator struct {
	prices *Prices
}

// Prices maps service keys to monthly USD prices.
type Prices struct {
	Services map[string]float64
}

// Estimate contains the calculated cost estimate.
type Estimate struct {
	// Items is the list of line items, one per billed service.
	Items []LineItem

	// Total is the monthly sum of all items.
	Total float64

	AppName string
	Region  string
}

// LineItem represents a single cost line item.
type LineItem struct {
	Service     string  `json:"service"`
	Description string  `json:"description"`
	Detail      string  `json:"detail"`
	Total       float64 `json:"total"`
}

// String returns a formatted string representation of the line item.
func (l LineItem) String() string {
	return fmt.Sprintf("%s (%s): $%.2f/mo", l.Description, l.Detail, l.Total)
}

// AnnualCost returns the estimated annual cost.
func (e *Estimate) AnnualCost() float64 {
	return e.Total * 12
}

// NewCalculator creates a calculator with DefaultPrices.
func NewCalculator() *Calculator {
	return &Calculator{
		prices: DefaultPrices(),
	}
}

// NewCalculatorWithPrices creates a calculator with specific pricing.
func NewCalculatorWithPrices(prices *Prices) *Calculator {
	return &Calculator{
		prices: prices,
	}
}

// Calculate prices the services enabled in cfg. Container hosting and
// monitoring are always billed; database and storage only when enabled.
func (c *Calculator) Calculate(cfg *config.DeployConfig) *Estimate {
	estimate := &Estimate{
		AppName: cfg.AppName,
		Region:  cfg.Region,
		Items:   make([]LineItem, 0, 4),
	}

	estimate.add(c.item(ServiceECS, "ECS Fargate", "1 vCPU, 2GB RAM"))

	if cfg.Database.Enabled {
		estimate.add(c.item(ServiceRDS, databaseLabel(cfg.Database.Engine), "db.t3.micro"))
	}

	if cfg.Storage {
		estimate.add(c.item(ServiceS3, "S3 + CloudFront", "storage and CDN"))
	}

	estimate.add(c.item(ServiceCloudWatch, "CloudWatch & Monitoring", "logs and metrics"))

	return estimate
}

func (c *Calculator) item(service, description, detail string) LineItem {
	return LineItem{
		Service:     service,
		Description: description,
		Detail:      detail,
		Total:       c.prices.Services[service],
	}
}

func (e *Estimate) add(item LineItem) {
	e.Items = append(e.Items, item)
	e.Total += item.Total
}

func databaseLabel(engine config.DBEngine) string {
	if engine == config.DBEngineMySQL {
		return "RDS MySQL"
	}
	return "RDS PostgreSQL"
}

// DefaultPrices returns the list prices shown in the deploy step, in USD per
// month, based on us-east-1.
func DefaultPrices() *Prices {
	return &Prices{
		Services: map[string]float64{
			ServiceECS:        24.00,
			ServiceRDS:        15.00,
			ServiceS3:         5.00,
			ServiceCloudWatch: 3.00,
		},
	}
}
