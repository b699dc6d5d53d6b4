// SPDX-License-Identifier: MIT

package histogram

import "math"

// Correlation returns the intersection similarity of h and other:
//
//	Σ min(h[i], other[i]) / max(Σ h, Σ other)
//
// The value lies in [0, 1] for non-negative counts. Two empty histograms
// correlate with 0 rather than dividing by zero.
//
// Errors:
//   - ErrNilHistogram, ErrIncompatible.
func (h *Histogram) Correlation(other *Histogram) (float64, error) {
	return h.ShiftedCorrelation(other, 0)
}

// ShiftedCorrelation is Correlation with other rotated by shift classes:
// class i of h is compared with class i+shift of other.
func (h *Histogram) ShiftedCorrelation(other *Histogram, shift int) (float64, error) {
	if err := h.compatible(other); err != nil {
		return 0, histogramErrorf(opCorrelation, err)
	}

	return h.intersection(other, shift), nil
}

// BestShift finds the circular shift (in classes, in [0, N)) of other that
// maximizes the intersection correlation with h. Ties keep the smallest shift.
//
// Complexity: O(N²).
func (h *Histogram) BestShift(other *Histogram) (shift int, correlation float64, err error) {
	if err = h.compatible(other); err != nil {
		return 0, 0, histogramErrorf(opBestShift, err)
	}

	correlation = math.Inf(-1)
	for s := range h.counts {
		c := h.intersection(other, s)
		if c > correlation {
			shift, correlation = s, c
		}
	}

	return shift, correlation, nil
}

// intersection assumes compatibility was checked.
func (h *Histogram) intersection(other *Histogram, shift int) float64 {
	matching := 0.0
	for i, c := range h.counts {
		matching += math.Min(c, other.counts[h.wrapClass(i+shift)])
	}
	denominator := math.Max(h.TotalCount(), other.TotalCount())
	if denominator == 0 {
		return 0
	}

	return matching / denominator
}

// compatible reports whether other shares h's bounds and class count.
func (h *Histogram) compatible(other *Histogram) error {
	if h == nil || other == nil {
		return ErrNilHistogram
	}
	if h.start != other.start || h.stop != other.stop || len(h.counts) != len(other.counts) {
		return ErrIncompatible
	}

	return nil
}
