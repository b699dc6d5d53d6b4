// SPDX-License-Identifier: MIT

package peaks_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonescale/histogram"
	"github.com/katalvlaran/tonescale/peaks"
)

// sparse builds an n-class octave histogram with the given class→count entries.
func sparse(t *testing.T, n int, entries map[int]float64) *histogram.Histogram {
	t.Helper()
	h, err := histogram.NewOctave(n)
	require.NoError(t, err)
	for i, c := range entries {
		h.AddToClass(i, c)
	}

	return h
}

// TestDetect_Validation rejects nil histograms and non-positive windows.
func TestDetect_Validation(t *testing.T) {
	h := sparse(t, 12, nil)

	_, err := peaks.Detect(nil, 5, 0)
	assert.ErrorIs(t, err, peaks.ErrNilHistogram)

	for _, w := range []int{0, -1} {
		_, err = peaks.Detect(h, w, 0)
		assert.ErrorIs(t, err, peaks.ErrInvalidWindow, "window=%d", w)
	}

	_, err = peaks.NewDetector().Scores(h, 0)
	assert.ErrorIs(t, err, peaks.ErrInvalidWindow)
}

// TestDetect_SingleDominantPeak returns exactly that peak.
func TestDetect_SingleDominantPeak(t *testing.T) {
	h := sparse(t, 1200, map[int]float64{300: 42})

	found, err := peaks.Detect(h, 5, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, peaks.Peak{Position: h.KeyForClass(300), Height: 42}, found[0])
}

// TestDetect_EmptyHistogram yields no peaks for any non-negative threshold.
func TestDetect_EmptyHistogram(t *testing.T) {
	h := sparse(t, 1200, nil)
	for _, threshold := range []float64{0, 1, 15, 1e9} {
		found, err := peaks.Detect(h, 5, threshold)
		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found, "threshold=%v", threshold)
	}
}

// TestDetect_ThresholdIsStrict excludes a score equal to the threshold.
func TestDetect_ThresholdIsStrict(t *testing.T) {
	h := sparse(t, 100, map[int]float64{20: 10, 60: 11})

	found, err := peaks.Detect(h, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{h.KeyForClass(60)}, peaks.Positions(found))
}

// TestDetect_ConflictKeepsHigher drops the lower of two close peaks.
func TestDetect_ConflictKeepsHigher(t *testing.T) {
	h := sparse(t, 100, map[int]float64{10: 5, 13: 8, 50: 4})

	found, err := peaks.Detect(h, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{13 * 12, 50 * 12}, peaks.Positions(found))
	assert.Equal(t, []float64{8, 4}, peaks.Heights(found))
}

// TestDetect_ConflictTieDropsFirst documents the deterministic tie rule.
func TestDetect_ConflictTieDropsFirst(t *testing.T) {
	h := sparse(t, 100, map[int]float64{10: 6, 13: 6})

	found, err := peaks.Detect(h, 5, 0)
	require.NoError(t, err)
	require.Len(t, found, 1, "two candidates form a single pair")
	assert.Equal(t, h.KeyForClass(13), found[0].Position)
}

// TestDetect_ConflictAcrossWrap pairs the last candidate with the first.
func TestDetect_ConflictAcrossWrap(t *testing.T) {
	h := sparse(t, 100, map[int]float64{1: 4, 40: 9, 98: 7})

	found, err := peaks.Detect(h, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{h.KeyForClass(40), h.KeyForClass(98)}, peaks.Positions(found))
}

// TestDetect_OnePassLimitation shows survivors that become neighbours after a
// removal are not re-checked: classes 10 and 14 both survive with window 5.
func TestDetect_OnePassLimitation(t *testing.T) {
	h := sparse(t, 100, map[int]float64{10: 9, 12: 5, 14: 8, 60: 9})

	found, err := peaks.Detect(h, 5, 0)
	require.NoError(t, err)
	assert.Equal(t,
		[]float64{h.KeyForClass(10), h.KeyForClass(14), h.KeyForClass(60)},
		peaks.Positions(found))
}

// TestDetect_PairwiseRule checks, on pseudo-random data, the rule Detect
// actually guarantees: two consecutive output peaks closer than windowSize
// were never adjacent in the candidate list.
func TestDetect_PairwiseRule(t *testing.T) {
	const n, window, threshold = 240, 4, 2.0
	rng := rand.New(rand.NewSource(42))
	d := peaks.NewDetector()

	for round := 0; round < 50; round++ {
		h := sparse(t, n, nil)
		for i := 0; i < n; i++ {
			h.AddToClass(i, float64(rng.Intn(20)))
		}

		found, err := d.Detect(h, window, threshold)
		require.NoError(t, err)
		scores, err := d.Scores(h, window)
		require.NoError(t, err)

		candidateIndex := make(map[int]int)
		var candidates []int
		for i, s := range scores {
			if s > threshold {
				candidateIndex[i] = len(candidates)
				candidates = append(candidates, i)
			}
		}
		if len(found) < 2 {
			continue
		}
		for k := range found {
			a := h.ClassForKey(found[k].Position)
			b := h.ClassForKey(found[(k+1)%len(found)].Position)
			dist := abs(a - b)
			dist = min(dist, n-dist)
			if dist > window {
				continue
			}
			ia, ib := candidateIndex[a], candidateIndex[b]
			assert.NotEqual(t, (ia+1)%len(candidates), ib,
				"round %d: adjacent candidates %d and %d both survived", round, a, b)
		}
	}
}

// TestDetect_Deterministic repeats detection on the same state.
func TestDetect_Deterministic(t *testing.T) {
	h := sparse(t, 120, map[int]float64{3: 5, 7: 5, 30: 2, 31: 6, 80: 9, 119: 9})

	first, err := peaks.Detect(h, 3, 0)
	require.NoError(t, err)
	second, err := peaks.Detect(h, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestDetector_CustomStrategies plugs in replacement scorers.
func TestDetector_CustomStrategies(t *testing.T) {
	h := sparse(t, 12, map[int]float64{2: 3, 8: 1})

	// Every class passes the gate and scores its raw count.
	everyClass := peaks.ScorerFunc(func(*histogram.Histogram, int, int) float64 { return 1 })
	rawCount := peaks.ScorerFunc(func(h *histogram.Histogram, i int, _ int) float64 { return h.CountForClass(i) })
	d := peaks.NewDetector(peaks.WithGate(everyClass), peaks.WithScorer(rawCount), peaks.WithGateDistance(2))

	found, err := d.Detect(h, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 800}, peaks.Positions(found))
}

// TestOptions_PanicOnNonsense surfaces programmer errors early.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { peaks.WithGate(nil) })
	assert.Panics(t, func() { peaks.WithScorer(nil) })
	assert.Panics(t, func() { peaks.WithGateDistance(0) })
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
