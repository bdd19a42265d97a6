// Package main implements the rewind subcommand.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sledit/internal/trace"
)

// rewindCmd truncates search-state logs for a restart
var rewindCmd = &cobra.Command{
	Use:   "rewind <iteration> <event-in> <event-out> <memory-in> <memory-out>",
	Short: "Rewind search-state logs to an earlier iteration",
	Long: `Rebuild the search process's event and memory logs so a trial can
restart from the given iteration.

The event log is truncated after the row for iteration-1, and the
objective, tabu tenure, temperature, and incumbent solution are captured
from that row. The memory log is reconstructed from the captured state:
a zeroed tenure table, the incumbent written as both current and best
known solution, reset nonimprovement counters, and a one-element
attractive set. If the event log holds no row for iteration-1 the
command fails and writes nothing.`,
	Args: cobra.ExactArgs(5),
	RunE: runRewind,
}

func runRewind(cmd *cobra.Command, args []string) error {
	iteration, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid iteration %q: %w", args[0], err)
	}

	rw := trace.NewRewinder(newCodec(), logger)
	state, err := rw.Rewind(iteration, args[1], args[2], args[3], args[4])
	if err != nil {
		return err
	}

	fmt.Printf("Rewound to iteration %d.\n", iteration)
	fmt.Printf("Restart state: objective %g, tenure %s, temperature %s, %d vector elements.\n",
		state.Objective, state.TenureRaw, state.TemperatureRaw, len(state.Vector))
	return nil
}

func init() {
	rootCmd.AddCommand(rewindCmd)
}
