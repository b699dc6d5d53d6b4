// SPDX-License-Identifier: MIT

// Package tonescale synthesizes reference pitch-class histograms over the
// octave [0, 1200) cents.
//
// Two modes are offered:
//   - FromTuning: one unit spike per scale degree. A fixed grid of known
//     pitches, not a density.
//   - FromPeaks: a sum of circular Gaussian bumps, one per peak, with the
//     peak height as amplitude. The result is smooth and suited to
//     cross-correlation with other tone-scale histograms.
//
// A Synthesizer is calibrated with the class width of a reference histogram
// (WithReference), so histograms built from different sources line up bin
// for bin.
//
//	s := tonescale.New(tonescale.WithReference(observed))
//	ref, err := s.FromPeakList(found)
package tonescale
