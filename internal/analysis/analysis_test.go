package analysis

import (
	"math"
	"testing"

	"github.com/discochess/pfc/internal/frontcode"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHistogram_Summarize(t *testing.T) {
	var h Histogram
	// apple, application, apply.
	for _, k := range []int{0, 4, 4} {
		h.Observe(k)
	}

	s := h.Summarize()
	if s.Records != 3 {
		t.Errorf("Records = %d, want 3", s.Records)
	}
	if s.Shared != 2 {
		t.Errorf("Shared = %d, want 2", s.Shared)
	}
	if s.SavedChars != 8 {
		t.Errorf("SavedChars = %d, want 8", s.SavedChars)
	}
	if !approxEqual(s.Mean, 8.0/3.0) {
		t.Errorf("Mean = %v, want %v", s.Mean, 8.0/3.0)
	}
	// Sample variance of {0, 4, 4} is 16/3.
	if !approxEqual(s.StdDev, math.Sqrt(16.0/3.0)) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(16.0/3.0))
	}
	if s.Median != 4 {
		t.Errorf("Median = %v, want 4", s.Median)
	}
	if s.Max != 4 {
		t.Errorf("Max = %d, want 4", s.Max)
	}
	if !approxEqual(s.SharedFraction(), 2.0/3.0) {
		t.Errorf("SharedFraction() = %v, want %v", s.SharedFraction(), 2.0/3.0)
	}
}

func TestHistogram_Empty(t *testing.T) {
	var h Histogram
	s := h.Summarize()
	if s != (Summary{}) {
		t.Errorf("Summarize() of empty histogram = %+v, want zero", s)
	}
	if s.SharedFraction() != 0 {
		t.Errorf("SharedFraction() = %v, want 0", s.SharedFraction())
	}
}

func TestHistogram_SingleRecord(t *testing.T) {
	var h Histogram
	h.Observe(0)
	s := h.Summarize()
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0", s.StdDev)
	}
	if s.P90 != 0 {
		t.Errorf("P90 = %v, want 0", s.P90)
	}
}

func TestHistogram_ObserveClamps(t *testing.T) {
	var h Histogram
	h.Observe(-3)
	h.Observe(frontcode.MaxPrefixLen + 10)

	if got := h.Count(0); got != 1 {
		t.Errorf("Count(0) = %d, want 1", got)
	}
	if got := h.Count(frontcode.MaxPrefixLen); got != 1 {
		t.Errorf("Count(max) = %d, want 1", got)
	}
	if got := h.Count(-1); got != 0 {
		t.Errorf("Count(-1) = %d, want 0", got)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		in, out int64
		want    float64
	}{
		{0, 0, 0},
		{100, 50, 0.5},
		{10, 11, 1.1},
	}
	for _, tt := range tests {
		if got := Ratio(tt.in, tt.out); !approxEqual(got, tt.want) {
			t.Errorf("Ratio(%d, %d) = %v, want %v", tt.in, tt.out, got, tt.want)
		}
	}
}
