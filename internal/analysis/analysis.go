// Package analysis summarizes how much prefix sharing a word list has.
package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/discochess/pfc/internal/frontcode"
)

// Histogram counts records by shared prefix length. It holds one counter per
// possible length, so memory does not grow with the list.
type Histogram struct {
	counts [frontcode.MaxPrefixLen + 1]int64
}

// Observe records one record with a shared prefix of k characters.
// Out-of-range values are clamped.
func (h *Histogram) Observe(k int) {
	if k < 0 {
		k = 0
	}
	if k > frontcode.MaxPrefixLen {
		k = frontcode.MaxPrefixLen
	}
	h.counts[k]++
}

// Count returns the number of records with a shared prefix of k characters.
func (h *Histogram) Count(k int) int64 {
	if k < 0 || k > frontcode.MaxPrefixLen {
		return 0
	}
	return h.counts[k]
}

// Summary describes the shared prefix distribution of a word list.
type Summary struct {
	Records    int64   // Records observed.
	Shared     int64   // Records sharing at least one character with their predecessor.
	SavedChars int64   // Characters omitted from the output by prefix sharing.
	Mean       float64 // Mean shared prefix length.
	StdDev     float64 // Sample standard deviation of the shared prefix length.
	Median     float64
	P90        float64
	Max        int
}

// SharedFraction returns the fraction of records that share a prefix.
func (s Summary) SharedFraction() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.Shared) / float64(s.Records)
}

// Summarize computes the summary of h.
func (h *Histogram) Summarize() Summary {
	var s Summary

	// x must be sorted for the quantiles; lengths are visited in order.
	var x, weights []float64
	for k, n := range h.counts {
		if n == 0 {
			continue
		}
		x = append(x, float64(k))
		weights = append(weights, float64(n))
		s.Records += n
		s.SavedChars += int64(k) * n
		if k > 0 {
			s.Shared += n
		}
		s.Max = k
	}
	if s.Records == 0 {
		return s
	}

	s.Mean = stat.Mean(x, weights)
	if s.Records > 1 {
		s.StdDev = stat.StdDev(x, weights)
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, x, weights)
	s.P90 = stat.Quantile(0.9, stat.Empirical, x, weights)
	return s
}

// Ratio returns out/in, or 0 when in is 0.
func Ratio(in, out int64) float64 {
	if in == 0 {
		return 0
	}
	return float64(out) / float64(in)
}
