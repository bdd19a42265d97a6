// Package sollog implements the solution-log record format and the batch
// transforms over it: merging parallel trial logs, re-evaluating
// feasibility under revised user-cost parameters, reshaping the solution
// vector encoding, pruning unevaluated entries, and point lookup.
//
// A solution log is a tab-separated text file with one comment line
// followed by one line per candidate solution. Each line carries the
// solution key (integer vector joined by a delimiter), a tri-state
// feasibility status, the objective value, and a fixed number of
// user-cost components. Logs are interchange files shared with the
// external search process, so the writer reproduces the legacy layout
// exactly, including the trailing tab after the last cost field.
package sollog

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the tri-state feasibility outcome of a candidate solution.
type Status int

const (
	// StatusUnknown means the constraints were never evaluated; only the
	// objective is meaningful.
	StatusUnknown Status = -1

	// StatusInfeasible means the solution violates the user-cost bound.
	StatusInfeasible Status = 0

	// StatusFeasible means the solution satisfies the user-cost bound.
	StatusFeasible Status = 1
)

// Evaluated reports whether the constraints have been evaluated.
func (s Status) Evaluated() bool { return s != StatusUnknown }

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusInfeasible:
		return "infeasible"
	case StatusFeasible:
		return "feasible"
	}
	return strconv.Itoa(int(s))
}

// Record is the evaluation result logged for one candidate solution.
type Record struct {
	Status    Status
	Objective float64
	Costs     []float64
}

// Codec parses and renders solution-log lines for one record shape.
// The zero value is not usable; construct it from config values.
type Codec struct {
	// Delimiter joins vector elements into a key string.
	Delimiter string

	// Width is the number of cost components per record.
	Width int

	// Precision is the number of fractional digits for float output.
	Precision int
}

// ParseRecord splits a data line into its key and record. Lines with
// fewer than Width+3 whitespace-separated tokens, or with non-numeric
// fields, fail with ErrMalformedRecord.
func (c Codec) ParseRecord(line string) (string, Record, error) {
	fields := strings.Fields(line)
	if len(fields) < c.Width+3 {
		return "", Record{}, fmt.Errorf("%w: %d fields, want at least %d", ErrMalformedRecord, len(fields), c.Width+3)
	}

	status, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", Record{}, fmt.Errorf("%w: feasibility %q: %v", ErrMalformedRecord, fields[1], err)
	}
	objective, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return "", Record{}, fmt.Errorf("%w: objective %q: %v", ErrMalformedRecord, fields[2], err)
	}

	costs := make([]float64, c.Width)
	for i := 0; i < c.Width; i++ {
		costs[i], err = strconv.ParseFloat(fields[3+i], 64)
		if err != nil {
			return "", Record{}, fmt.Errorf("%w: cost %d %q: %v", ErrMalformedRecord, i+1, fields[3+i], err)
		}
	}

	return fields[0], Record{Status: Status(status), Objective: objective, Costs: costs}, nil
}

// FormatRecord renders one data line in the legacy layout: tab-separated
// fields, floats with Precision fractional digits, and a trailing tab
// after the last cost (the search process writes one, and its reader
// splits on whitespace, so we stay byte-compatible).
func (c Codec) FormatRecord(key string, rec Record) (string, error) {
	if len(rec.Costs) != c.Width {
		return "", fmt.Errorf("record %s has %d cost components, want %d", key, len(rec.Costs), c.Width)
	}

	var b strings.Builder
	b.WriteString(key)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(int(rec.Status)))
	b.WriteByte('\t')
	b.WriteString(c.FormatFloat(rec.Objective))
	b.WriteByte('\t')
	for _, cost := range rec.Costs {
		b.WriteString(c.FormatFloat(cost))
		b.WriteByte('\t')
	}
	return b.String(), nil
}

// FormatFloat renders a float with the configured fractional precision.
func (c Codec) FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', c.Precision, 64)
}

// KeyToVector decodes a solution key into its integer vector. The empty
// key decodes to an empty vector.
func (c Codec) KeyToVector(key string) ([]int, error) {
	if key == "" {
		return []int{}, nil
	}
	parts := strings.Split(key, c.Delimiter)
	vec := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: key element %q: %v", ErrMalformedRecord, p, err)
		}
		vec[i] = n
	}
	return vec, nil
}

// VectorToKey encodes an integer vector as a solution key. Equal vectors
// always serialize identically; the empty vector serializes to "".
func (c Codec) VectorToKey(vec []int) string {
	if len(vec) == 0 {
		return ""
	}
	parts := make([]string, len(vec))
	for i, n := range vec {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, c.Delimiter)
}
