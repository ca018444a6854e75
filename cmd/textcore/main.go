// Package main is the entry point for the textcore CLI.
package main

import (
	"errors"
	"os"

	"github.com/craftide/textcore/internal/cli"
	"github.com/craftide/textcore/internal/logging"
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
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrNoMatchesFound is just a signal for the exit code.
		if errors.Is(err, cli.ErrNoMatchesFound) {
			return cli.ExitNoMatches
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)

		if errors.Is(err, cli.ErrConfigLoad) {
			return cli.ExitConfigError
		}
		return 1
	}

	return cli.ExitSuccess
}
