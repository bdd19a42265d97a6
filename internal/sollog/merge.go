package sollog

import (
	"fmt"

	"go.uber.org/zap"
)

// MergeSummary reports what a merge did.
type MergeSummary struct {
	ReadA     int // records read from the first log
	ReadB     int // records read from the second log
	Conflicts int // duplicate keys resolved
	Written   int // records in the output log
}

// Merge combines two solution logs from compatible trials into one. Keys
// present in only one log are copied unchanged. For duplicate keys,
// conservative mode keeps the least certain feasibility (min over the
// -1/0/1 encoding) and the worst objective and cost values (max);
// optimistic mode keeps the max feasibility and min values. The comment
// line comes from the first log.
func (e *Editor) Merge(pathA, pathB, pathOut string, conservative bool) (MergeSummary, error) {
	var sum MergeSummary

	merged, err := ReadLog(pathA, e.codec)
	if err != nil {
		return sum, err
	}
	sum.ReadA = merged.Len()
	e.log.Debug("first log read", zap.String("path", pathA), zap.Int("records", sum.ReadA))

	other, err := ReadLog(pathB, e.codec)
	if err != nil {
		return sum, err
	}
	sum.ReadB = other.Len()
	e.log.Debug("second log read", zap.String("path", pathB), zap.Int("records", sum.ReadB))

	err = other.Each(func(key string, rec Record) error {
		existing, ok := merged.Get(key)
		if !ok {
			merged.Set(key, rec)
			return nil
		}
		sum.Conflicts++
		merged.Set(key, resolveConflict(existing, rec, conservative))
		return nil
	})
	if err != nil {
		return sum, err
	}

	if err := merged.WriteFile(pathOut, e.codec); err != nil {
		return sum, fmt.Errorf("failed to write merged log: %w", err)
	}
	sum.Written = merged.Len()
	e.log.Info("logs merged",
		zap.Int("entries", sum.Written),
		zap.Int("conflicts", sum.Conflicts),
		zap.Bool("conservative", conservative))
	return sum, nil
}

// resolveConflict combines two records logged for the same solution.
// Conservative resolution assumes the worst of both trials: feasibility
// can only degrade (unknown dominates infeasible dominates feasible) and
// the objective and costs take their maxima.
func resolveConflict(a, b Record, conservative bool) Record {
	out := Record{Costs: make([]float64, len(a.Costs))}
	if conservative {
		out.Status = minStatus(a.Status, b.Status)
		out.Objective = maxFloat(a.Objective, b.Objective)
		for i := range a.Costs {
			out.Costs[i] = maxFloat(a.Costs[i], b.Costs[i])
		}
	} else {
		out.Status = maxStatus(a.Status, b.Status)
		out.Objective = minFloat(a.Objective, b.Objective)
		for i := range a.Costs {
			out.Costs[i] = minFloat(a.Costs[i], b.Costs[i])
		}
	}
	return out
}

func minStatus(a, b Status) Status {
	if a < b {
		return a
	}
	return b
}

func maxStatus(a, b Status) Status {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
