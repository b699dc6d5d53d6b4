// SPDX-License-Identifier: MIT

package tonescale

import (
	"math"

	"github.com/katalvlaran/tonescale/histogram"
	"github.com/katalvlaran/tonescale/peaks"
)

const (
	opFromTuning = "FromTuning"
	opFromPeaks  = "FromPeaks"
)

// Synthesizer builds octave histograms at a fixed resolution.
type Synthesizer struct {
	classWidth        float64
	standardDeviation float64
}

// New returns a Synthesizer with DefaultClassWidth and
// DefaultStandardDeviation, adjusted by opts.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		classWidth:        DefaultClassWidth,
		standardDeviation: DefaultStandardDeviation,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ClassWidth returns the class width of synthesized histograms.
func (s *Synthesizer) ClassWidth() float64 { return s.classWidth }

// StandardDeviation returns the default Gaussian spread.
func (s *Synthesizer) StandardDeviation() float64 { return s.standardDeviation }

// FromTuning returns a histogram with a unit spike at every pitch (cents).
// Pitches outside the octave are wrapped; repeated pitches stack.
func (s *Synthesizer) FromTuning(pitches []float64) (*histogram.Histogram, error) {
	h, err := histogram.NewOctaveWithWidth(s.classWidth)
	if err != nil {
		return nil, tonescaleErrorf(opFromTuning, err)
	}
	for _, p := range pitches {
		h.Add(p)
	}

	return h, nil
}

// FromPeaks returns the sum of one circular Gaussian per peak, evaluated at
// the lower edge of every class.
//
// Inputs:
//   - positions: peak centers in cents (wrapped into the octave).
//   - heights:   amplitudes, same length as positions.
//   - widths:    optional cutoffs in cents; beyond its width a peak adds
//     nothing. nil, or a width <= 0, means no cutoff.
//   - stdDevs:   optional per-peak spreads; nil falls back to the default.
//
// Errors:
//   - ErrLengthMismatch, ErrInvalidStandardDeviation.
//
// Complexity: O(N·P), N = classes, P = peaks.
func (s *Synthesizer) FromPeaks(positions, heights, widths, stdDevs []float64) (*histogram.Histogram, error) {
	if len(heights) != len(positions) ||
		(widths != nil && len(widths) != len(positions)) ||
		(stdDevs != nil && len(stdDevs) != len(positions)) {
		return nil, tonescaleErrorf(opFromPeaks, ErrLengthMismatch)
	}
	for _, sigma := range stdDevs {
		if !validSigma(sigma) {
			return nil, tonescaleErrorf(opFromPeaks, ErrInvalidStandardDeviation)
		}
	}

	h, err := histogram.NewOctaveWithWidth(s.classWidth)
	if err != nil {
		return nil, tonescaleErrorf(opFromPeaks, err)
	}
	for i := 0; i < h.NumberOfClasses(); i++ {
		key := h.KeyForClass(i)
		value := 0.0
		for p, position := range positions {
			d := circularDistance(key, position)
			if widths != nil && widths[p] > 0 && d > widths[p] {
				continue
			}
			sigma := s.standardDeviation
			if stdDevs != nil {
				sigma = stdDevs[p]
			}
			value += heights[p] * math.Exp(-d*d/(2*sigma*sigma))
		}
		h.AddToClass(i, value)
	}

	return h, nil
}

// FromPeakList is FromPeaks for detector output, using default spreads and
// no cutoffs.
func (s *Synthesizer) FromPeakList(ps []peaks.Peak) (*histogram.Histogram, error) {
	return s.FromPeaks(peaks.Positions(ps), peaks.Heights(ps), nil, nil)
}

// circularDistance is the shortest distance between a and b on the octave circle.
func circularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), histogram.OctaveCents)

	return math.Min(d, histogram.OctaveCents-d)
}
