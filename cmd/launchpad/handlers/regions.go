package handlers

import (
	"context"
	"fmt"

	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
)

// Regions lists the supported AWS regions. The configured default is
// marked with an asterisk.
func Regions(ctx context.Context) error {
	def := settingsFrom(ctx).DefaultRegion
	for _, r := range awsInternal.Regions {
		mark := " "
		if r.Code == def {
			mark = "*"
		}
		fmt.Printf("%s %-16s %s\n", mark, r.Code, r.Name)
	}
	return nil
}
