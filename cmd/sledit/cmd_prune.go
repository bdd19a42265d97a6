// Package main implements the prune subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pruneCmd clears unevaluated entries from a solution log
var pruneCmd = &cobra.Command{
	Use:   "prune <log-in> <log-out>",
	Short: "Remove entries whose feasibility was never evaluated",
	Long: `Copy a solution log while omitting every entry with unknown (-1)
feasibility.

The search process accumulates many objective-only entries and keeps the
whole log in memory, so the log should be pruned periodically to keep it
small. Surviving lines are copied verbatim in their original order.`,
	Args: cobra.ExactArgs(2),
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	sum, err := newEditor().PruneUnknown(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Kept %d entries, removed %d with unknown feasibility.\n", sum.Kept, sum.Removed)
	return nil
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
