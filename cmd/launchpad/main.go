// Package main is the entry point for the launchpad CLI.
//
// launchpad walks a user through deploying a GitHub repository to AWS:
// credentials, repository, deploy configuration and the finished
// deployment. All cloud work is simulated.
//
// Commands: new, dashboard, cost, regions, version.
//
// For detailed usage information, run:
//
//	launchpad --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/launchpad/cmd/launchpad/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
