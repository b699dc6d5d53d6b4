// SPDX-License-Identifier: MIT

package peaks

import (
	"math"

	"github.com/katalvlaran/tonescale/histogram"
)

// Scorer rates how peak-like class i of h is. The meaning of param depends on
// the strategy (neighbour distance, window size, ...). Class indices are
// circular: i-1 of class 0 is class N-1.
type Scorer interface {
	Score(h *histogram.Histogram, i int, param int) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(h *histogram.Histogram, i int, param int) float64

// Score calls f.
func (f ScorerFunc) Score(h *histogram.Histogram, i int, param int) float64 {
	return f(h, i, param)
}

// DifferenceScore compares class i with its neighbours param classes away on
// both sides. It returns the smaller of the two one-sided differences when i
// is a strict local maximum, and 0 otherwise (including plateaus).
type DifferenceScore struct{}

// Score implements Scorer.
func (DifferenceScore) Score(h *histogram.Histogram, i int, param int) float64 {
	c := h.CountForClass(i)
	left := c - h.CountForClass(i-param)
	right := c - h.CountForClass(i+param)
	if left <= 0 || right <= 0 {
		return 0
	}

	return math.Min(left, right)
}

// LocalHeightScore is the prominence of class i: its count minus the minimum
// count within param classes on either side (the window wraps). It does not
// check that i is a local maximum; the detector gates it for that.
type LocalHeightScore struct{}

// Score implements Scorer.
func (LocalHeightScore) Score(h *histogram.Histogram, i int, param int) float64 {
	c := h.CountForClass(i)
	lowest := c
	for d := 1; d <= param; d++ {
		lowest = math.Min(lowest, math.Min(h.CountForClass(i-d), h.CountForClass(i+d)))
	}

	return c - lowest
}
