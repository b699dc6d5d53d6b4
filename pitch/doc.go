// SPDX-License-Identifier: MIT

// Package pitch converts between frequency and cent scales and folds pitch
// observations from an external detector into a pitch-class histogram.
//
// The detector itself (process, file format, live capture) is not part of
// this package: anything that can hand out Observations through the Source
// interface can feed Accumulate.
//
//	h, _ := histogram.NewOctave(1200)
//	n, err := pitch.Accumulate(h, pitch.NewTextSource(r), pitch.AccumulateOptions{})
package pitch
