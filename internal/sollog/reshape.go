package sollog

import (
	"fmt"

	"go.uber.org/zap"
)

// ReshapeSummary reports what an expand or contract did.
type ReshapeSummary struct {
	Read       int // records read
	Dropped    int // records dropped for nonzero trailing elements
	Collisions int // truncated keys that overwrote an earlier record
	Written    int // records in the output log
}

// Expand rewrites a solution log with n additional solution vector
// elements appended to every key. New elements go at the end of the
// vector and take the value 0, so feasibility, objective, and costs carry
// over unchanged. Expansion never drops a record.
//
// Keys are re-encoded through the vector codec rather than by string
// append, so the empty-vector key stays round-trip safe.
func (e *Editor) Expand(logIn, logOut string, n int) (ReshapeSummary, error) {
	var sum ReshapeSummary
	if n < 0 {
		return sum, fmt.Errorf("element count must be non-negative, got %d", n)
	}

	log, err := ReadLog(logIn, e.codec)
	if err != nil {
		return sum, err
	}
	sum.Read = log.Len()

	out := NewLog(log.Comment)
	err = log.Each(func(key string, rec Record) error {
		vec, err := e.codec.KeyToVector(key)
		if err != nil {
			return err
		}
		vec = append(vec, make([]int, n)...)
		out.Set(e.codec.VectorToKey(vec), rec)
		return nil
	})
	if err != nil {
		return sum, err
	}

	if err := out.WriteFile(logOut, e.codec); err != nil {
		return sum, fmt.Errorf("failed to write expanded log: %w", err)
	}
	sum.Written = out.Len()
	e.log.Info("solution vectors expanded", zap.Int("records", sum.Written), zap.Int("added", n))
	return sum, nil
}

// Contract rewrites a solution log with the last n solution vector
// elements removed from every key. A record whose removed elements are
// not all zero describes a solution that has no counterpart in the
// smaller encoding, so it is dropped and counted. If two surviving keys
// truncate to the same shorter key, the later record silently overwrites
// the earlier one (last wins, at the earlier record's position); callers
// wanting conflict resolution should merge instead.
//
// Contracting more elements than any record's vector holds fails with
// ErrVectorLength.
func (e *Editor) Contract(logIn, logOut string, n int) (ReshapeSummary, error) {
	var sum ReshapeSummary
	if n < 0 {
		return sum, fmt.Errorf("element count must be non-negative, got %d", n)
	}

	log, err := ReadLog(logIn, e.codec)
	if err != nil {
		return sum, err
	}
	sum.Read = log.Len()

	out := NewLog(log.Comment)
	err = log.Each(func(key string, rec Record) error {
		vec, err := e.codec.KeyToVector(key)
		if err != nil {
			return err
		}
		if n > len(vec) {
			return fmt.Errorf("%w: key %q has %d elements, cannot remove %d", ErrVectorLength, key, len(vec), n)
		}

		cut := len(vec) - n
		for _, tail := range vec[cut:] {
			if tail != 0 {
				sum.Dropped++
				return nil
			}
		}

		short := e.codec.VectorToKey(vec[:cut])
		if _, ok := out.Get(short); ok {
			sum.Collisions++
		}
		out.Set(short, rec)
		return nil
	})
	if err != nil {
		return sum, err
	}

	if err := out.WriteFile(logOut, e.codec); err != nil {
		return sum, fmt.Errorf("failed to write contracted log: %w", err)
	}
	sum.Written = out.Len()
	e.log.Info("solution vectors contracted",
		zap.Int("records", sum.Written),
		zap.Int("removed", n),
		zap.Int("dropped", sum.Dropped),
		zap.Int("collisions", sum.Collisions))
	return sum, nil
}
