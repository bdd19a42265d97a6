// Package main implements the merge subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeOptimistic bool

// mergeCmd combines two solution logs from compatible trials
var mergeCmd = &cobra.Command{
	Use:   "merge <log-a> <log-b> <log-out>",
	Short: "Merge two solution logs into a combined log",
	Long: `Merge the contents of two solution logs into a third combined log.

The output contains the union of both logs' entries, with the comment
line taken from the first log. For solutions present in both logs the
default conservative resolution keeps the least certain feasibility and
the worst (highest) objective and user cost values; --optimistic keeps
the best of both instead.`,
	Args: cobra.ExactArgs(3),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	ed := newEditor()
	sum, err := ed.Merge(args[0], args[1], args[2], !mergeOptimistic)
	if err != nil {
		return err
	}

	fmt.Printf("Read %d entries from %s and %d from %s.\n", sum.ReadA, args[0], sum.ReadB, args[1])
	fmt.Printf("Combined log contains %d entries (%d conflicting entries resolved).\n", sum.Written, sum.Conflicts)
	return nil
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeOptimistic, "optimistic", false, "keep the best of conflicting entries instead of the worst")
	rootCmd.AddCommand(mergeCmd)
}
