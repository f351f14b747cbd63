// Package main is the entry point for the alphamap CLI.
package main

import (
	"os"

	"github.com/textbits/alphamap/internal/cli"
	"github.com/textbits/alphamap/internal/logging"
)

// Build-time variables set via ldflags.
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
		logging.Default().Error("command failed", "err", err)
		return 1
	}
	return 0
}
