// Package main implements the lookup subcommand.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sledit/internal/sollog"
)

// lookupCmd queries a single solution from a log
var lookupCmd = &cobra.Command{
	Use:   "lookup <log> <key>",
	Short: "Look up the logged record for one solution key",
	Long: `Scan a solution log for the given solution key and print its record
in log-line format. The log is not modified. Exits nonzero when the key
is absent.`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	ed := newEditor()
	rec, err := ed.Lookup(args[0], args[1])
	if errors.Is(err, sollog.ErrKeyNotFound) {
		fmt.Printf("No entry for %s.\n", args[1])
		return err
	}
	if err != nil {
		return err
	}

	line, err := ed.Codec().FormatRecord(args[1], rec)
	if err != nil {
		return err
	}
	fmt.Println(line)
	fmt.Printf("Feasibility: %s\n", rec.Status)
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
