// SPDX-License-Identifier: MIT

package histogram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonescale/histogram"
)

// mustOctave allocates an octave histogram or aborts the test.
func mustOctave(t *testing.T, classes int) *histogram.Histogram {
	t.Helper()
	h, err := histogram.NewOctave(classes)
	require.NoError(t, err)

	return h
}

// TestNew_Validation checks constructor errors are surfaced, never coerced.
func TestNew_Validation(t *testing.T) {
	_, err := histogram.New(10, 10, 4)
	assert.ErrorIs(t, err, histogram.ErrInvalidRange, "empty range")

	_, err = histogram.New(10, 0, 4)
	assert.ErrorIs(t, err, histogram.ErrInvalidRange, "inverted range")

	_, err = histogram.New(0, math.Inf(1), 4)
	assert.ErrorIs(t, err, histogram.ErrInvalidRange, "infinite bound")

	_, err = histogram.New(0, 1200, 0)
	assert.ErrorIs(t, err, histogram.ErrInvalidClasses, "zero classes")

	_, err = histogram.NewOctaveWithWidth(0)
	assert.ErrorIs(t, err, histogram.ErrInvalidWidth, "zero width")

	_, err = histogram.NewOctaveWithWidth(2400)
	assert.ErrorIs(t, err, histogram.ErrInvalidWidth, "width wider than the octave")
}

// TestNewOctaveWithWidth verifies width→classes conversion.
func TestNewOctaveWithWidth(t *testing.T) {
	h, err := histogram.NewOctaveWithWidth(6)
	require.NoError(t, err)
	assert.Equal(t, 200, h.NumberOfClasses())
	assert.Equal(t, 6.0, h.ClassWidth())
	assert.Equal(t, 0.0, h.Start())
	assert.Equal(t, histogram.OctaveCents, h.Stop())
}

// TestWrap checks keys are folded into [start, stop).
func TestWrap(t *testing.T) {
	h, err := histogram.New(100, 300, 20)
	require.NoError(t, err)

	assert.Equal(t, 150.0, h.Wrap(150))
	assert.Equal(t, 150.0, h.Wrap(350))
	assert.Equal(t, 150.0, h.Wrap(-50))
	assert.Equal(t, 100.0, h.Wrap(300))
	assert.Equal(t, 199.5, h.Wrap(-0.5))
}

// TestClassForKey_Clamp ensures the last class absorbs keys right below stop.
func TestClassForKey_Clamp(t *testing.T) {
	h := mustOctave(t, 12)

	assert.Equal(t, 0, h.ClassForKey(0))
	assert.Equal(t, 0, h.ClassForKey(99.999))
	assert.Equal(t, 1, h.ClassForKey(100))
	assert.Equal(t, 11, h.ClassForKey(math.Nextafter(1200, 0)))
	assert.Equal(t, 0, h.ClassForKey(1200))
	assert.Equal(t, 11, h.ClassForKey(-1))
	assert.Equal(t, 0, h.ClassForKey(math.NaN()), "non-finite keys map to class 0")
}

// TestClassAddressing_RoundTrip verifies classForKey(keyForClass(classForKey(k))) == classForKey(k).
func TestClassAddressing_RoundTrip(t *testing.T) {
	keys := []float64{-2400.3, -1, 0, 0.1, 33.3333, 99.999, 100, 599.5, 1199.999, 1200, 1234.5, 7777.7}
	for _, n := range []int{1, 3, 7, 12, 53, 100, 1200, 1777} {
		h := mustOctave(t, n)
		for _, k := range keys {
			c := h.ClassForKey(k)
			assert.Equal(t, c, h.ClassForKey(h.KeyForClass(c)), "N=%d key=%v", n, k)
		}
		for i := 0; i < n; i++ {
			assert.Equal(t, i, h.ClassForKey(h.KeyForClass(i)), "N=%d class=%d", n, i)
		}
	}

	// Non-zero start exercises the offset path.
	h, err := histogram.New(-600, 600, 7)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, h.ClassForKey(h.KeyForClass(i)), "class=%d", i)
	}
}

// TestKeyForClass_Wraps checks class indices are reduced modulo N.
func TestKeyForClass_Wraps(t *testing.T) {
	h := mustOctave(t, 12)

	assert.Equal(t, 0.0, h.KeyForClass(0))
	assert.Equal(t, 1100.0, h.KeyForClass(11))
	assert.Equal(t, 1100.0, h.KeyForClass(-1))
	assert.Equal(t, 100.0, h.KeyForClass(13))
}

// TestAddAndCount covers weighted accumulation and wrapped reads.
func TestAddAndCount(t *testing.T) {
	h := mustOctave(t, 1200)

	h.Add(50)
	h.Add(1250)
	h.AddWeighted(-1150, 2.5)
	h.AddWeighted(math.NaN(), 1)
	h.AddWeighted(10, math.Inf(1))
	h.AddToClass(-1, 3)

	assert.Equal(t, 4.5, h.Count(50))
	assert.Equal(t, 4.5, h.CountForClass(50))
	assert.Equal(t, 4.5, h.CountForClass(1250))
	assert.Equal(t, 3.0, h.Count(1199.5))
	assert.Equal(t, 0.0, h.Count(10), "non-finite weight ignored")
	assert.Equal(t, 7.5, h.TotalCount())
	assert.Equal(t, 4.5, h.MaxBinCount())
}

// TestMaxBinCount_Empty guards the degenerate case callers divide by.
func TestMaxBinCount_Empty(t *testing.T) {
	h := mustOctave(t, 10)
	assert.Equal(t, 0.0, h.MaxBinCount())

	h.Normalize()
	assert.Equal(t, 0.0, h.TotalCount(), "Normalize on an empty histogram is a no-op")
}

// TestClear returns to all-zero with unchanged bounds/resolution.
func TestClear(t *testing.T) {
	h, err := histogram.New(-50, 50, 25)
	require.NoError(t, err)
	for k := -100.0; k < 100; k += 3.7 {
		h.Add(k)
	}
	require.Greater(t, h.TotalCount(), 0.0)

	h.Clear()

	assert.Equal(t, make([]float64, 25), h.Counts())
	assert.Equal(t, -50.0, h.Start())
	assert.Equal(t, 50.0, h.Stop())
	assert.Equal(t, 25, h.NumberOfClasses())
	assert.Equal(t, 4.0, h.ClassWidth())
}

// TestAll_Order verifies traversal starts at class 0 with lower-edge keys.
func TestAll_Order(t *testing.T) {
	h := mustOctave(t, 4)
	h.Add(0)
	h.Add(900)
	h.Add(900)

	var keys, counts []float64
	for k, c := range h.All() {
		keys = append(keys, k)
		counts = append(counts, c)
	}
	assert.Equal(t, []float64{0, 300, 600, 900}, keys)
	assert.Equal(t, []float64{1, 0, 0, 2}, counts)

	// Early break stops the iteration.
	seen := 0
	for range h.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

// TestCountsAndClone_AreCopies ensures readers never alias internal state.
func TestCountsAndClone_AreCopies(t *testing.T) {
	h := mustOctave(t, 12)
	h.Add(100)

	counts := h.Counts()
	counts[1] = 99
	assert.Equal(t, 1.0, h.CountForClass(1))

	c := h.Clone()
	c.Add(100)
	assert.Equal(t, 1.0, h.CountForClass(1))
	assert.Equal(t, 2.0, c.CountForClass(1))
}

// TestNormalize scales the maximum to one.
func TestNormalize(t *testing.T) {
	h := mustOctave(t, 4)
	h.AddWeighted(0, 4)
	h.AddWeighted(300, 2)

	h.Normalize()

	assert.Equal(t, []float64{1, 0.5, 0, 0}, h.Counts())
}
