package sollog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCodec() Codec {
	return Codec{Delimiter: "_", Width: 5, Precision: 15}
}

func TestKeyVectorRoundTrip(t *testing.T) {
	c := testCodec()

	tests := []struct {
		name string
		vec  []int
	}{
		{"empty vector", []int{}},
		{"single element", []int{7}},
		{"zeros", []int{0, 0, 0}},
		{"negatives", []int{-3, 0, 12, -1}},
		{"typical solution", []int{1, 0, 4, 2, 0, 0, 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key := c.VectorToKey(tc.vec)
			got, err := c.KeyToVector(key)
			if err != nil {
				t.Fatalf("KeyToVector(%q) failed: %v", key, err)
			}
			if !reflect.DeepEqual(got, tc.vec) {
				t.Errorf("round trip of %v via %q = %v", tc.vec, key, got)
			}
		})
	}
}

func TestVectorToKeySerialization(t *testing.T) {
	c := testCodec()

	if got := c.VectorToKey([]int{1, 0, -2}); got != "1_0_-2" {
		t.Errorf("VectorToKey([1 0 -2]) = %q, want %q", got, "1_0_-2")
	}
	if got := c.VectorToKey(nil); got != "" {
		t.Errorf("VectorToKey(nil) = %q, want empty", got)
	}
}

func TestKeyToVectorMalformed(t *testing.T) {
	c := testCodec()

	for _, key := range []string{"1_x_2", "1__2", "_1"} {
		if _, err := c.KeyToVector(key); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("KeyToVector(%q) err = %v, want ErrMalformedRecord", key, err)
		}
	}
}

func TestParseRecord(t *testing.T) {
	c := testCodec()

	line := "1_0_4\t1\t5.250000000000000\t1.0\t2.0\t3.0\t4.0\t5.0\t"
	key, rec, err := c.ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if key != "1_0_4" {
		t.Errorf("key = %q, want %q", key, "1_0_4")
	}

	want := Record{Status: StatusFeasible, Objective: 5.25, Costs: []float64{1, 2, 3, 4, 5}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordMalformed(t *testing.T) {
	c := testCodec()

	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "1_0\t1\t5.0\t1.0\t2.0"},
		{"bad feasibility", "1_0\tx\t5.0\t1.0\t2.0\t3.0\t4.0\t5.0"},
		{"bad objective", "1_0\t1\tx\t1.0\t2.0\t3.0\t4.0\t5.0"},
		{"bad cost", "1_0\t1\t5.0\t1.0\t2.0\tx\t4.0\t5.0"},
		{"empty line", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := c.ParseRecord(tc.line); !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("ParseRecord(%q) err = %v, want ErrMalformedRecord", tc.line, err)
			}
		})
	}
}

func TestFormatRecord(t *testing.T) {
	c := testCodec()

	rec := Record{Status: StatusInfeasible, Objective: 7, Costs: []float64{0, 0, 0, 0, 0.5}}
	line, err := c.FormatRecord("2_-1_0", rec)
	if err != nil {
		t.Fatalf("FormatRecord failed: %v", err)
	}

	want := "2_-1_0\t0\t7.000000000000000\t" +
		"0.000000000000000\t0.000000000000000\t0.000000000000000\t" +
		"0.000000000000000\t0.500000000000000\t"
	if line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
}

func TestFormatRecordWidthMismatch(t *testing.T) {
	c := testCodec()

	rec := Record{Status: StatusFeasible, Objective: 1, Costs: []float64{1, 2, 3}}
	if _, err := c.FormatRecord("1", rec); err == nil {
		t.Error("FormatRecord accepted a 3-component record with width 5")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	c := testCodec()

	rec := Record{Status: StatusUnknown, Objective: 123.456, Costs: []float64{9.5, 0, -2.25, 1, 8}}
	line, err := c.FormatRecord("4_5_6", rec)
	if err != nil {
		t.Fatalf("FormatRecord failed: %v", err)
	}

	key, got, err := c.ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if key != "4_5_6" {
		t.Errorf("key = %q", key)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusPredicates(t *testing.T) {
	if StatusUnknown.Evaluated() {
		t.Error("StatusUnknown.Evaluated() = true")
	}
	if !StatusInfeasible.Evaluated() || !StatusFeasible.Evaluated() {
		t.Error("evaluated statuses reported unevaluated")
	}
	if StatusFeasible.String() != "feasible" || StatusUnknown.String() != "unknown" {
		t.Error("unexpected Status strings")
	}
}
