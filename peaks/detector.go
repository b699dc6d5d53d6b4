// SPDX-License-Identifier: MIT

package peaks

import (
	"github.com/katalvlaran/tonescale/histogram"
)

const (
	opDetect = "Detect"
	opScores = "Scores"
)

// Detector combines a gate and a windowed scorer. The zero value is not
// usable; build one with NewDetector.
type Detector struct {
	gate         Scorer
	scorer       Scorer
	gateDistance int
}

// NewDetector returns a Detector using DifferenceScore as gate (distance 1)
// and LocalHeightScore as windowed score, adjusted by opts.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		gate:         DifferenceScore{},
		scorer:       LocalHeightScore{},
		gateDistance: DefaultGateDistance,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Detect runs the default detector. See Detector.Detect.
func Detect(h *histogram.Histogram, windowSize int, threshold float64) ([]Peak, error) {
	return NewDetector().Detect(h, windowSize, threshold)
}

// Detect returns the peaks of h in ascending class order.
//
// Implementation:
//   - Stage 1: Score every class (gate first, windowed score only if the gate is non-zero).
//   - Stage 2: Keep classes whose score is strictly greater than threshold.
//   - Stage 3: Pair each candidate once with its circular successor; if they are
//     ≤ windowSize classes apart, drop the one with the smaller raw count
//     (a tie drops the first of the pair). Pairs are taken from the original
//     candidate list, so survivors that become adjacent are not re-checked.
//   - Stage 4: Convert survivors to Peak{KeyForClass(i), CountForClass(i)}.
//
// Behavior highlights:
//   - A single candidate is never paired with itself; two candidates form one pair.
//   - No candidates yields an empty, non-nil slice and no error.
//   - A negative threshold admits ungated (score 0) classes as well.
//
// Errors:
//   - ErrNilHistogram, ErrInvalidWindow (windowSize <= 0).
func (d *Detector) Detect(h *histogram.Histogram, windowSize int, threshold float64) ([]Peak, error) {
	scores, err := d.scores(h, windowSize)
	if err != nil {
		return nil, peaksErrorf(opDetect, err)
	}

	// Stage 2: ascending by construction.
	candidates := make([]int, 0)
	for i, s := range scores {
		if s > threshold {
			candidates = append(candidates, i)
		}
	}

	// Stage 3
	removed := resolveConflicts(h, candidates, windowSize)

	// Stage 4
	found := make([]Peak, 0, len(candidates)-len(removed))
	for k, i := range candidates {
		if removed[k] {
			continue
		}
		found = append(found, Peak{Position: h.KeyForClass(i), Height: h.CountForClass(i)})
	}

	return found, nil
}

// Scores returns the combined score of every class, the quantity Detect
// compares with its threshold.
func (d *Detector) Scores(h *histogram.Histogram, windowSize int) ([]float64, error) {
	scores, err := d.scores(h, windowSize)
	if err != nil {
		return nil, peaksErrorf(opScores, err)
	}

	return scores, nil
}

func (d *Detector) scores(h *histogram.Histogram, windowSize int) ([]float64, error) {
	if h == nil {
		return nil, ErrNilHistogram
	}
	if windowSize <= 0 {
		return nil, ErrInvalidWindow
	}

	scores := make([]float64, h.NumberOfClasses())
	for i := range scores {
		if d.gate.Score(h, i, d.gateDistance) == 0 {
			continue
		}
		scores[i] = d.scorer.Score(h, i, windowSize)
	}

	return scores, nil
}

// resolveConflicts marks, by candidate position, the candidates to drop.
func resolveConflicts(h *histogram.Histogram, candidates []int, windowSize int) map[int]bool {
	removed := make(map[int]bool)
	pairs := len(candidates)
	switch pairs {
	case 0, 1:
		return removed
	case 2:
		pairs = 1 // (a,b) and (b,a) are the same pair
	}

	n := h.NumberOfClasses()
	for k := 0; k < pairs; k++ {
		next := (k + 1) % len(candidates)
		first, second := candidates[k], candidates[next]
		if classDistance(first, second, n) > windowSize {
			continue
		}
		if h.CountForClass(first) > h.CountForClass(second) {
			removed[next] = true
		} else {
			removed[k] = true
		}
	}

	return removed
}

// classDistance is the circular distance between classes a and b of an n-class histogram.
func classDistance(a, b, n int) int {
	d := a - b
	if d < 0 {
		d = -d
	}

	return min(d, n-d)
}
