package sollog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CostParams holds the user-cost function definition read from a
// parameter file: an initial cost, the allowed percentage increase, and
// one weight per cost component the function uses. The weight count may
// be smaller than the record width; the extra components are ignored.
type CostParams struct {
	Initial float64
	Percent float64
	Weights []float64
}

// Bound returns the feasibility threshold: the initial cost scaled by the
// allowed increase. A solution is feasible when its weighted cost does
// not exceed this.
func (p CostParams) Bound() float64 {
	return (1 + p.Percent) * p.Initial
}

// ReadCostParams parses a user-cost parameter file: a comment line, then
// initial cost, percent increase, element count, and element-count weight
// lines. Labels are arbitrary; only the second whitespace-separated token
// of each line is read.
func ReadCostParams(path string) (CostParams, error) {
	var params CostParams

	f, err := os.Open(path)
	if err != nil {
		return params, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	nextValue := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("failed to read %s: %w", path, err)
			}
			return "", fmt.Errorf("%w: %s: missing %s line", ErrMalformedRecord, path, what)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			return "", fmt.Errorf("%w: %s: %s line %q", ErrMalformedRecord, path, what, sc.Text())
		}
		return fields[1], nil
	}

	if !sc.Scan() { // comment line
		if err := sc.Err(); err != nil {
			return params, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return params, fmt.Errorf("%w: %s: empty file", ErrMalformedRecord, path)
	}

	tok, err := nextValue("initial cost")
	if err != nil {
		return params, err
	}
	if params.Initial, err = strconv.ParseFloat(tok, 64); err != nil {
		return params, fmt.Errorf("%w: initial cost %q: %v", ErrMalformedRecord, tok, err)
	}

	if tok, err = nextValue("percent increase"); err != nil {
		return params, err
	}
	if params.Percent, err = strconv.ParseFloat(tok, 64); err != nil {
		return params, fmt.Errorf("%w: percent increase %q: %v", ErrMalformedRecord, tok, err)
	}

	if tok, err = nextValue("element count"); err != nil {
		return params, err
	}
	count, err := strconv.Atoi(tok)
	if err != nil {
		return params, fmt.Errorf("%w: element count %q: %v", ErrMalformedRecord, tok, err)
	}

	params.Weights = make([]float64, count)
	for i := 0; i < count; i++ {
		if tok, err = nextValue(fmt.Sprintf("weight %d", i+1)); err != nil {
			return params, err
		}
		if params.Weights[i], err = strconv.ParseFloat(tok, 64); err != nil {
			return params, fmt.Errorf("%w: weight %d %q: %v", ErrMalformedRecord, i+1, tok, err)
		}
	}

	return params, nil
}

// ReevalSummary reports what a feasibility re-evaluation did.
type ReevalSummary struct {
	Read        int // records read
	Reevaluated int // records whose feasibility was recomputed
	Feasible    int // records set feasible
	Infeasible  int // records set infeasible
}

// Reevaluate rewrites a solution log with feasibility recomputed under a
// revised user-cost definition. Because logs store the cost components
// rather than the final user-cost value, a log from one trial set can be
// reused in another that changed only the cost parameters. Records with
// unknown feasibility are copied unchanged: unknown stays unknown.
func (e *Editor) Reevaluate(logIn, costFile, logOut string) (ReevalSummary, error) {
	var sum ReevalSummary

	params, err := ReadCostParams(costFile)
	if err != nil {
		return sum, err
	}
	if len(params.Weights) > e.codec.Width {
		return sum, fmt.Errorf("user cost uses %d components but records carry %d", len(params.Weights), e.codec.Width)
	}
	e.log.Debug("user cost file read",
		zap.Float64("initial", params.Initial),
		zap.Float64("percent", params.Percent),
		zap.Int("elements", len(params.Weights)))

	log, err := ReadLog(logIn, e.codec)
	if err != nil {
		return sum, err
	}
	sum.Read = log.Len()

	bound := params.Bound()
	for _, key := range log.Keys() {
		rec, _ := log.Get(key)
		if !rec.Status.Evaluated() {
			continue
		}
		sum.Reevaluated++

		uc := 0.0
		for i, w := range params.Weights {
			uc += w * rec.Costs[i]
		}
		if uc <= bound {
			rec.Status = StatusFeasible
			sum.Feasible++
		} else {
			rec.Status = StatusInfeasible
			sum.Infeasible++
		}
		log.Set(key, rec)
	}

	if err := log.WriteFile(logOut, e.codec); err != nil {
		return sum, fmt.Errorf("failed to write re-evaluated log: %w", err)
	}
	e.log.Info("feasibility re-evaluated",
		zap.Int("records", sum.Read),
		zap.Int("reevaluated", sum.Reevaluated),
		zap.Float64("bound", bound))
	return sum, nil
}
