package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codequest",
	Short: "Compute an optimal quest-completion plan",
	Long: "CodeQuest plans the fastest route through a quest catalog, " +
		"minimizing the off-quest training needed along the way.",
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}
