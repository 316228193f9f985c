package similarity

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"process_data", "process_data", 1.0},
		{"", "", 1.0},
		{"ABC", "abc", 1.0}, // case-folded
		{"abc", "xyz", 0.0},
		{"abcdef", "abc", 2.0 * 3 / 9},
	}

	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioSymmetric(t *testing.T) {
	if Ratio("handler", "handle") != Ratio("handle", "handler") {
		t.Error("Ratio is not symmetric")
	}
}

func TestSimilarOrdering(t *testing.T) {
	got := Similar("process_dta", []string{"zzzz", "process", "process_data"}, 5)
	want := []string{"process_data", "process"}
	if len(got) != len(want) {
		t.Fatalf("Similar = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Similar[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimilarThreshold(t *testing.T) {
	// "ab" vs "abcdef" scores 0.5, below the 0.6 threshold.
	if got := Similar("abcdef", []string{"ab"}, 5); len(got) != 0 {
		t.Errorf("Similar = %v, want no matches below threshold", got)
	}
	// "abc" vs "abcdef" scores 2/3.
	if got := Similar("abcdef", []string{"abc"}, 5); len(got) != 1 {
		t.Errorf("Similar = %v, want one match at threshold", got)
	}
}

func TestSimilarMax(t *testing.T) {
	known := []string{"handles", "handler", "handled", "handlex", "handley"}
	if got := Similar("handle", known, 2); len(got) != 2 {
		t.Errorf("Similar with max 2 returned %d results", len(got))
	}
	if got := Similar("handle", known, 0); len(got) != len(known) {
		t.Errorf("Similar with max 0 returned %d results, want all %d", len(got), len(known))
	}
}
