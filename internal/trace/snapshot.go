package trace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// writeSnapshot reconstructs a memory-log file from a captured restart
// state. The block sequence and line counts are a wire-format contract
// with the legacy reader and must not change:
//
//	comment line
//	tenure table row, zeroed (x2)
//	solution vector row (x2: current, best known)
//	objective (x2)
//	restart iteration
//	nonimprovement counters (0, 0)
//	tenure (x2: raw token, then re-formatted)
//	temperature (x2: same quirk)
//	attractive set, one element: objective, then solution vector row
//
// The duplicated tenure and temperature lines mirror a quirk of the
// original writer, which emitted each value once unformatted and once
// with fixed precision; the legacy reader consumes both.
func (r *Rewinder) writeSnapshot(path, comment string, state *RestartState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)

	zeroRow := tabRow(make([]int, len(state.Vector)))
	solRow := tabRow(state.Vector)
	objective := r.codec.FormatFloat(state.Objective)

	fmt.Fprintln(w, comment)
	fmt.Fprintln(w, zeroRow)
	fmt.Fprintln(w, zeroRow)
	fmt.Fprintln(w, solRow)
	fmt.Fprintln(w, solRow)
	fmt.Fprintln(w, objective)
	fmt.Fprintln(w, objective)
	fmt.Fprintln(w, state.Iteration)
	fmt.Fprintln(w, 0)
	fmt.Fprintln(w, 0)
	fmt.Fprintln(w, state.TenureRaw)
	fmt.Fprintln(w, r.codec.FormatFloat(state.Tenure))
	fmt.Fprintln(w, state.TemperatureRaw)
	fmt.Fprintln(w, r.codec.FormatFloat(state.Temperature))
	fmt.Fprintln(w, objective)
	fmt.Fprintln(w, solRow)

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// tabRow renders ints as one tab-separated line.
func tabRow(vec []int) string {
	parts := make([]string, len(vec))
	for i, n := range vec {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "\t")
}
