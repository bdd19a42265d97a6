// Package main implements the expand and contract subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// expandCmd grows the solution vector encoding
var expandCmd = &cobra.Command{
	Use:   "expand <log-in> <log-out> <elements>",
	Short: "Append zero-valued solution vector elements to every key",
	Long: `Rewrite a solution log for a problem with additional solution vector
elements. New elements go at the end of the vector with value 0;
feasibility, objective, and cost values carry over unchanged.`,
	Args: cobra.ExactArgs(3),
	RunE: runExpand,
}

// contractCmd shrinks the solution vector encoding
var contractCmd = &cobra.Command{
	Use:   "contract <log-in> <log-out> <elements>",
	Short: "Remove trailing solution vector elements from every key",
	Long: `Rewrite a solution log for a problem with fewer solution vector
elements. Records whose removed trailing elements are not all zero have
no counterpart in the smaller encoding and are dropped. If two keys
truncate to the same shorter key, the later record overwrites the
earlier one.`,
	Args: cobra.ExactArgs(3),
	RunE: runContract,
}

func runExpand(cmd *cobra.Command, args []string) error {
	n, err := parseElements(args[2])
	if err != nil {
		return err
	}

	sum, err := newEditor().Expand(args[0], args[1], n)
	if err != nil {
		return err
	}

	fmt.Printf("Expanded %d entries by %d elements.\n", sum.Written, n)
	return nil
}

func runContract(cmd *cobra.Command, args []string) error {
	n, err := parseElements(args[2])
	if err != nil {
		return err
	}

	sum, err := newEditor().Contract(args[0], args[1], n)
	if err != nil {
		return err
	}

	fmt.Printf("Contracted log contains %d entries (%d dropped, %d collisions overwritten).\n",
		sum.Written, sum.Dropped, sum.Collisions)
	return nil
}

// parseElements parses the element-count argument.
func parseElements(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid element count %q: %w", arg, err)
	}
	return n, nil
}

func init() {
	rootCmd.AddCommand(expandCmd, contractCmd)
}
