// SPDX-License-Identifier: MIT

// Package peaks detects statistically significant peaks in a circular
// histogram.
//
// 🚀 How does detection work?
//
//  1. Gate: a cheap DifferenceScore (neighbour distance 1) keeps only strict
//     local maxima; every other class scores 0.
//  2. Score: a LocalHeightScore (prominence over ±windowSize classes) is
//     computed for the surviving classes only.
//  3. Threshold: classes scoring strictly above threshold become candidates.
//  4. Resolve: each candidate is paired once with its circular successor;
//     when the pair is ≤ windowSize classes apart the lower one is dropped
//     (a tie drops the first of the pair). Removals are not re-checked.
//
// ⚙️ Usage:
//
//	found, err := peaks.Detect(h, 5, 15)
//	if err != nil {
//	  // ErrInvalidWindow or ErrNilHistogram
//	}
//	for _, p := range found {
//	  fmt.Println(p.Position, p.Height)
//	}
//
// Strategies are pluggable through the Scorer interface:
//
//	d := peaks.NewDetector(peaks.WithScorer(myScorer))
//	found, err := d.Detect(h, 5, 0.3)
//
// Determinism:
//
//	Classes are visited in ascending order and ties are broken by position,
//	so a fixed histogram and parameter set always yields the same peaks.
//
// Complexity:
//
//	O(N + C·w), N = classes, C = local maxima, w = window size.
package peaks
