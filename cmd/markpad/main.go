// Package main is the entry point for the markpad CLI.
package main

import (
	"errors"
	"os"

	"github.com/markpadhq/markpad/internal/cli"
	"github.com/markpadhq/markpad/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrNoMatchesFound and ErrRenderFailures are exit-code signals,
		// not failures worth logging.
		if !errors.Is(err, cli.ErrNoMatchesFound) && !errors.Is(err, cli.ErrRenderFailures) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
