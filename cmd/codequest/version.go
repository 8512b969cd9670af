package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set via -ldflags at build time.
var (
	Version    = "dev"
	BuildTime  = "unknown"
	CommitHash = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("codequest %s (built %s, commit %s)\n", Version, BuildTime, CommitHash)
		return nil
	},
}
