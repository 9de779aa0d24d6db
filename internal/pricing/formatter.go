package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter formats cost estimates for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns a detailed, formatted cost estimate for terminal display.
func (f *Formatter) Format(e *Estimate) string {
	var sb strings.Builder

	width := 61

	// Header
	sb.WriteString(boxTop(width))
	sb.WriteString(boxLine("Estimated Monthly Cost", width))
	sb.WriteString(boxLine(fmt.Sprintf("Application: %s", e.AppName), width))
	sb.WriteString(boxLine(fmt.Sprintf("Region: %s", e.Region), width))
	sb.WriteString(boxSep(width))

	// Line items
	sb.WriteString(boxEmpty(width))
	for _, item := range e.Items {
		line := fmt.Sprintf("%-40s %8.2f/mo", item.Description, item.Total)
		sb.WriteString(boxLine(line, width))
	}

	// Totals
	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-40s %8.2f/mo", "Total Monthly Estimate", e.Total), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxLine(fmt.Sprintf("Annual estimate: %.2f", e.AnnualCost()), width))
	sb.WriteString(boxBottom(width))

	sb.WriteString("\n  Prices in USD, based on US East (N. Virginia)\n")

	return sb.String()
}

// FormatCompact returns a single-line cost summary.
func (f *Formatter) FormatCompact(e *Estimate) string {
	return fmt.Sprintf("%s (%s): $%.2f/mo ($%.2f/yr)",
		e.AppName, e.Region, e.Total, e.AnnualCost())
}

// FormatJSON returns the estimate as JSON.
func (f *Formatter) FormatJSON(e *Estimate) string {
	type jsonEstimate struct {
		AppName string     `json:"app_name"`
		Region  string     `json:"region"`
		Items   []LineItem `json:"items"`
		Total   float64    `json:"total"`
		Annual  float64    `json:"annual"`
	}

	je := jsonEstimate{
		AppName: e.AppName,
		Region:  e.Region,
		Items:   e.Items,
		Total:   e.Total,
		Annual:  e.AnnualCost(),
	}

	data, _ := json.MarshalIndent(je, "", "  ")
	return string(data)
}

// Helper functions for box drawing

func boxTop(width int) string {
	return fmt.Sprintf("┌%s┐\n", strings.Repeat("─", width-2))
}

func boxBottom(width int) string {
	return fmt.Sprintf("└%s┘\n", strings.Repeat("─", width-2))
}

func boxSep(width int) string {
	return fmt.Sprintf("├%s┤\n", strings.Repeat("─", width-2))
}

func boxDash(width int) string {
	return fmt.Sprintf("│ %s │\n", strings.Repeat("─", width-4))
}

func boxLine(text string, width int) string {
	padding := width - 4 - len(text)
	if padding < 0 {
		padding = 0
		text = text[:width-4]
	}
	return fmt.Sprintf("│ %s%s │\n", text, strings.Repeat(" ", padding))
}

func boxEmpty(width int) string {
	return fmt.Sprintf("│%s│\n", strings.Repeat(" ", width-2))
}
