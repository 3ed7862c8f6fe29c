// Package main provides the entry point for the cicdcheck CLI.
package main

import (
	"context"
	"os"

	"github.com/FabLrc/GithubCICDChecker/internal/cli"
)

// Build information injected via ldflags.
//
//nolint:gochecknoglobals // Set at build time.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
