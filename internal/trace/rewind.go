// Package trace rewinds the external search process's state logs to an
// earlier iteration so that a crashed or cut-short trial can restart.
//
// Two files are involved. The event log is a per-iteration trace of the
// tabu search / simulated annealing driver; rewinding truncates it just
// before the target iteration and captures the restart state from its
// terminal row. The memory log is a snapshot of the driver's working
// state (tenure table, current and best solutions, counters); rewinding
// discards the stale snapshot and reconstructs a fresh one from the
// captured state, in the exact block layout the legacy reader expects.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"sledit/internal/sollog"
)

// ErrIterationNotFound marks a rewind target with no matching event row.
// The legacy script silently wrote a zeroed memory log in this case; we
// refuse to reconstruct a restart state from nothing.
var ErrIterationNotFound = errors.New("iteration not found in event log")

// Event rows are whitespace-separated; these are the field positions the
// rewind needs. The solution vector is always the last field.
const (
	eventFieldIteration   = 0
	eventFieldObjective   = 1
	eventFieldTenure      = 9
	eventFieldTemperature = 10
	eventMinFields        = 12
)

// RestartState is the driver state captured from the terminal event row.
// Tenure and temperature keep their raw tokens alongside the parsed
// values: the memory-log layout writes each once verbatim and once
// re-formatted, and the raw token must survive untouched.
type RestartState struct {
	Iteration      int // the restart target (terminal row holds Iteration-1)
	Objective      float64
	Tenure         float64
	TenureRaw      string
	Temperature    float64
	TemperatureRaw string
	Vector         []int
}

// Rewinder rebuilds restartable search-state logs.
type Rewinder struct {
	codec sollog.Codec
	log   *zap.Logger
}

// NewRewinder returns a rewinder using the given record shape for
// solution vector keys. A nil logger disables diagnostics.
func NewRewinder(c sollog.Codec, logger *zap.Logger) *Rewinder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rewinder{codec: c, log: logger}
}

// Rewind truncates the event log at iteration-1 and reconstructs the
// memory log for a restart at iteration. Both outputs are written only
// after the event scan succeeds; if no row carries iteration-1 the call
// fails with ErrIterationNotFound and neither output file is created.
func (r *Rewinder) Rewind(iteration int, eventIn, eventOut, memIn, memOut string) (*RestartState, error) {
	header, rows, state, err := r.scanEvents(iteration, eventIn)
	if err != nil {
		return nil, err
	}

	memComment, err := readComment(memIn)
	if err != nil {
		return nil, err
	}

	if err := writeLines(eventOut, append([]string{header}, rows...)); err != nil {
		return nil, fmt.Errorf("failed to write event log: %w", err)
	}
	if err := r.writeSnapshot(memOut, memComment, state); err != nil {
		return nil, fmt.Errorf("failed to write memory log: %w", err)
	}

	r.log.Info("search state rewound",
		zap.Int("iteration", iteration),
		zap.Int("events_kept", len(rows)),
		zap.Float64("objective", state.Objective))
	return state, nil
}

// scanEvents collects event rows verbatim up to and including the first
// row whose iteration field equals iteration-1, and captures the restart
// state from that terminal row.
func (r *Rewinder) scanEvents(iteration int, path string) (string, []string, *RestartState, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header string
	if sc.Scan() {
		header = sc.Text()
	}

	var rows []string
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		iter, err := strconv.Atoi(fields[eventFieldIteration])
		if err != nil {
			return "", nil, nil, fmt.Errorf("%s:%d: %w: iteration %q", path, lineNo, sollog.ErrMalformedRecord, fields[eventFieldIteration])
		}

		rows = append(rows, line)
		if iter != iteration-1 {
			continue
		}

		state, err := r.captureState(iteration, fields)
		if err != nil {
			return "", nil, nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		return header, rows, state, nil
	}
	if err := sc.Err(); err != nil {
		return "", nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return "", nil, nil, fmt.Errorf("%w: no event row for iteration %d", ErrIterationNotFound, iteration-1)
}

// captureState parses the restart state out of the terminal event row.
func (r *Rewinder) captureState(iteration int, fields []string) (*RestartState, error) {
	if len(fields) < eventMinFields {
		return nil, fmt.Errorf("%w: %d fields, want at least %d", sollog.ErrMalformedRecord, len(fields), eventMinFields)
	}

	state := &RestartState{
		Iteration:      iteration,
		TenureRaw:      fields[eventFieldTenure],
		TemperatureRaw: fields[eventFieldTemperature],
	}

	var err error
	if state.Objective, err = strconv.ParseFloat(fields[eventFieldObjective], 64); err != nil {
		return nil, fmt.Errorf("%w: objective %q", sollog.ErrMalformedRecord, fields[eventFieldObjective])
	}
	if state.Tenure, err = strconv.ParseFloat(state.TenureRaw, 64); err != nil {
		return nil, fmt.Errorf("%w: tenure %q", sollog.ErrMalformedRecord, state.TenureRaw)
	}
	if state.Temperature, err = strconv.ParseFloat(state.TemperatureRaw, 64); err != nil {
		return nil, fmt.Errorf("%w: temperature %q", sollog.ErrMalformedRecord, state.TemperatureRaw)
	}
	if state.Vector, err = r.codec.KeyToVector(fields[len(fields)-1]); err != nil {
		return nil, err
	}
	return state, nil
}

// readComment returns the first line of a file.
func readComment(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return "", nil
	}
	return sc.Text(), nil
}

// writeLines writes lines to path, one per line, replacing any existing
// file.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
