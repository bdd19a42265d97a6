package sollog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const zeroCosts = "0.0\t0.0\t0.0\t0.0\t0.0\t"

func TestMergeConservative(t *testing.T) {
	// The duplicate key must resolve to min feasibility, max objective.
	pathA := writeTemp(t, "a.txt", "log A\n1_0\t1\t5.0\t"+zeroCosts+"\n")
	pathB := writeTemp(t, "b.txt", "log B\n1_0\t0\t7.0\t"+zeroCosts+"\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	ed := NewEditor(testCodec(), nil)
	sum, err := ed.Merge(pathA, pathB, out, true)
	require.NoError(t, err)
	require.Equal(t, MergeSummary{ReadA: 1, ReadB: 1, Conflicts: 1, Written: 1}, sum)

	merged, err := ReadLog(out, testCodec())
	require.NoError(t, err)
	require.Equal(t, "log A", merged.Comment)

	rec, ok := merged.Get("1_0")
	require.True(t, ok)
	require.Equal(t, StatusInfeasible, rec.Status)
	require.Equal(t, 7.0, rec.Objective)
}

func TestMergeOptimistic(t *testing.T) {
	pathA := writeTemp(t, "a.txt", "log A\n1_0\t1\t5.0\t1.0\t0.0\t0.0\t0.0\t0.0\t\n")
	pathB := writeTemp(t, "b.txt", "log B\n1_0\t0\t7.0\t0.5\t2.0\t0.0\t0.0\t0.0\t\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	sum, err := NewEditor(testCodec(), nil).Merge(pathA, pathB, out, false)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Conflicts)

	merged, err := ReadLog(out, testCodec())
	require.NoError(t, err)

	rec, _ := merged.Get("1_0")
	require.Equal(t, StatusFeasible, rec.Status)
	require.Equal(t, 5.0, rec.Objective)
	require.Equal(t, []float64{0.5, 0, 0, 0, 0}, rec.Costs)
}

func TestMergeUnionAndOrder(t *testing.T) {
	pathA := writeTemp(t, "a.txt",
		"log A\n"+
			"1_0\t1\t5.0\t"+zeroCosts+"\n"+
			"2_0\t-1\t3.0\t"+zeroCosts+"\n")
	pathB := writeTemp(t, "b.txt",
		"log B\n"+
			"3_0\t0\t4.0\t"+zeroCosts+"\n"+
			"2_0\t1\t2.0\t"+zeroCosts+"\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	sum, err := NewEditor(testCodec(), nil).Merge(pathA, pathB, out, true)
	require.NoError(t, err)
	require.Equal(t, MergeSummary{ReadA: 2, ReadB: 2, Conflicts: 1, Written: 3}, sum)

	merged, err := ReadLog(out, testCodec())
	require.NoError(t, err)

	// First log's keys keep their order; new keys from the second append.
	require.Equal(t, []string{"1_0", "2_0", "3_0"}, merged.Keys())

	// Conflicting 2_0: unknown dominates feasible, objective takes max.
	rec, _ := merged.Get("2_0")
	require.Equal(t, StatusUnknown, rec.Status)
	require.Equal(t, 3.0, rec.Objective)
}

func TestMergeKeyCoverageCommutes(t *testing.T) {
	pathA := writeTemp(t, "a.txt", "A\n1_0\t1\t5.0\t"+zeroCosts+"\n2_0\t0\t1.0\t"+zeroCosts+"\n")
	pathB := writeTemp(t, "b.txt", "B\n2_0\t1\t2.0\t"+zeroCosts+"\n3_0\t-1\t9.0\t"+zeroCosts+"\n")

	dir := t.TempDir()
	outAB := filepath.Join(dir, "ab.txt")
	outBA := filepath.Join(dir, "ba.txt")

	ed := NewEditor(testCodec(), nil)
	_, err := ed.Merge(pathA, pathB, outAB, true)
	require.NoError(t, err)
	_, err = ed.Merge(pathB, pathA, outBA, true)
	require.NoError(t, err)

	ab, err := ReadLog(outAB, testCodec())
	require.NoError(t, err)
	ba, err := ReadLog(outBA, testCodec())
	require.NoError(t, err)

	require.ElementsMatch(t, ab.Keys(), ba.Keys())
	for _, key := range ab.Keys() {
		ra, _ := ab.Get(key)
		rb, _ := ba.Get(key)
		require.Equal(t, ra, rb, "merged record for %q", key)
	}
}

func TestMergeMissingInput(t *testing.T) {
	pathA := writeTemp(t, "a.txt", "A\n1_0\t1\t5.0\t"+zeroCosts+"\n")
	out := filepath.Join(t.TempDir(), "merged.txt")

	_, err := NewEditor(testCodec(), nil).Merge(pathA, filepath.Join(t.TempDir(), "absent.txt"), out, true)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))

	// No partial output on read failure.
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}
