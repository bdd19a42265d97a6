// Package main implements the refeas subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// refeasCmd re-evaluates feasibility under revised cost parameters
var refeasCmd = &cobra.Command{
	Use:   "refeas <log-in> <user-cost-file> <log-out>",
	Short: "Re-evaluate feasibility for revised user cost parameters",
	Long: `Re-evaluate the feasibility of every logged solution against a revised
user cost definition.

The user cost file supplies an initial cost, the allowed percentage
increase, and per-component weights. Each evaluated record's weighted
cost is compared against (1 + percent) * initial; records whose
feasibility was never evaluated are copied unchanged. This lets the log
from one trial set seed another that changed only the cost parameters.`,
	Args: cobra.ExactArgs(3),
	RunE: runRefeas,
}

func runRefeas(cmd *cobra.Command, args []string) error {
	ed := newEditor()
	sum, err := ed.Reevaluate(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Printf("Re-evaluated %d of %d entries: %d feasible, %d infeasible.\n",
		sum.Reevaluated, sum.Read, sum.Feasible, sum.Infeasible)
	return nil
}

func init() {
	rootCmd.AddCommand(refeasCmd)
}
