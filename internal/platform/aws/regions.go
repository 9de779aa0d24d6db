// Package aws holds the simulated AWS side of launchpad: the supported
// region catalog, credential validation and an SDK configuration built from
// validated credentials. Nothing in this package talks to AWS over the network.
package aws

// Region is an AWS region offered by the credentials step.
type Region struct {
	Code string
	Name string
}

// DefaultRegion is preselected when no setting overrides it.
const DefaultRegion = "us-east-1"

// Regions lists the supported regions in display order.
var Regions = []Region{
	{Code: "us-east-1", Name: "US East (N. Virginia)"},
	{Code: "us-west-2", Name: "US West (Oregon)"},
	{Code: "eu-west-1", Name: "Europe (Ireland)"},
	{Code: "ap-southeast-1", Name: "Asia Pacific (Singapore)"},
	{Code: "ap-northeast-1", Name: "Asia Pacific (Tokyo)"},
}

// IsSupportedRegion reports whether code is in Regions.
func IsSupportedRegion(code string) bool {
	_, ok := LookupRegion(code)
	return ok
}

// LookupRegion finds a region by code.
func LookupRegion(code string) (Region, bool) {
	for _, r := range Regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// RegionName returns the display name for code, or code itself when unknown.
func RegionName(code string) string {
	if r, ok := LookupRegion(code); ok {
		return r.Name
	}
	return code
}
