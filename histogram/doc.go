// SPDX-License-Identifier: MIT

// Package histogram implements a circular (wrap-around) histogram: a fixed
// key range [start, stop) split into N classes of equal width, where every
// key outside the range is folded back into it before use.
//
// 🚀 What is it for?
//
//	Pitch-class distributions live on a circle: 1199 cents is a neighbour of
//	0 cents. A circular histogram keeps that adjacency explicit so that
//	smoothing, peak scoring and comparison never special-case the edges.
//
// ✨ Key features:
//   - one addressing function (Wrap) used by every read and write
//   - weighted accumulation, clearing, ordered traversal (All)
//   - circular Gaussian smoothing that preserves total mass
//   - comparison helpers: intersection correlation and best circular shift
//
// ⚙️ Usage:
//
//	h, err := histogram.NewOctave(1200) // [0,1200) cents, 1 cent per class
//	if err != nil {
//	  // ErrInvalidClasses
//	}
//	h.Add(1250)                // lands in class 50
//	_ = h.GaussianSmooth(0.8)  // sigma in cents
//	for key, count := range h.All() {
//	  fmt.Println(key, count)
//	}
//
// Concurrency:
//
//	A Histogram is a plain mutable value. It holds no locks; callers that
//	share one across goroutines must synchronize themselves.
//
// Complexity:
//
//   - Add / Count / ClassForKey: O(1)
//   - GaussianSmooth:            O(N·k), k = kernel length
//   - BestShift:                 O(N²)
package histogram
