package sollog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// PruneSummary reports what a prune pass did.
type PruneSummary struct {
	Kept    int // records with evaluated feasibility
	Removed int // records with unknown feasibility
}

// PruneUnknown copies a solution log while omitting every record whose
// feasibility was never evaluated. The search process accumulates many
// objective-only entries and keeps the whole log in memory, so it prunes
// periodically to stay small. Surviving lines are copied verbatim, in
// their original order, with the comment line preserved; this is a
// streaming pass, the log is never materialized.
func (e *Editor) PruneUnknown(logIn, logOut string) (PruneSummary, error) {
	var sum PruneSummary

	in, err := os.Open(logIn)
	if err != nil {
		return sum, err
	}
	defer in.Close()

	out, err := os.Create(logOut)
	if err != nil {
		return sum, err
	}

	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if sc.Scan() {
		fmt.Fprintln(w, sc.Text()) // comment line
	}

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			out.Close()
			return sum, fmt.Errorf("%s:%d: %w: %d fields", logIn, lineNo, ErrMalformedRecord, len(fields))
		}
		status, err := strconv.Atoi(fields[1])
		if err != nil {
			out.Close()
			return sum, fmt.Errorf("%s:%d: %w: feasibility %q", logIn, lineNo, ErrMalformedRecord, fields[1])
		}

		if Status(status) == StatusUnknown {
			sum.Removed++
			continue
		}
		sum.Kept++
		fmt.Fprintln(w, line)
	}
	if err := sc.Err(); err != nil {
		out.Close()
		return sum, fmt.Errorf("failed to read %s: %w", logIn, err)
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return sum, fmt.Errorf("failed to write %s: %w", logOut, err)
	}
	if err := out.Close(); err != nil {
		return sum, fmt.Errorf("failed to write %s: %w", logOut, err)
	}

	e.log.Info("unknown entries pruned", zap.Int("kept", sum.Kept), zap.Int("removed", sum.Removed))
	return sum, nil
}
