// SPDX-License-Identifier: MIT

package histogram

import (
	"iter"
	"math"
)

// OctaveCents is the width of the canonical pitch-class domain [0, 1200).
const OctaveCents = 1200.0

// Operation names used when wrapping sentinel errors.
const (
	opNew          = "New"
	opNewWithWidth = "NewWithWidth"
	opSmooth       = "GaussianSmooth"
	opCorrelation  = "Correlation"
	opBestShift    = "BestShift"
)

// Histogram is a circular histogram over [start, stop) with N classes of equal
// width. Keys and class indices are always reduced modulo the domain before use.
type Histogram struct {
	start      float64
	stop       float64
	classWidth float64
	counts     []float64
}

// New creates an empty histogram over [start, stop) split into classes bins.
//
// Errors:
//   - ErrInvalidRange   if stop <= start or a bound is not finite.
//   - ErrInvalidClasses if classes < 1.
func New(start, stop float64, classes int) (*Histogram, error) {
	if !isFinite(start) || !isFinite(stop) || stop <= start {
		return nil, histogramErrorf(opNew, ErrInvalidRange)
	}
	if classes < 1 {
		return nil, histogramErrorf(opNew, ErrInvalidClasses)
	}

	return &Histogram{
		start:      start,
		stop:       stop,
		classWidth: (stop - start) / float64(classes),
		counts:     make([]float64, classes),
	}, nil
}

// NewWithWidth creates an empty histogram over [start, stop) whose class width
// is as close to width as an integral number of classes allows.
func NewWithWidth(start, stop, width float64) (*Histogram, error) {
	if !isFinite(start) || !isFinite(stop) || stop <= start {
		return nil, histogramErrorf(opNewWithWidth, ErrInvalidRange)
	}
	if !isFinite(width) || width <= 0 || width > stop-start {
		return nil, histogramErrorf(opNewWithWidth, ErrInvalidWidth)
	}
	classes := int(math.Round((stop - start) / width))

	return New(start, stop, classes)
}

// NewOctave creates an empty pitch-class histogram over [0, 1200) cents.
func NewOctave(classes int) (*Histogram, error) {
	return New(0, OctaveCents, classes)
}

// NewOctaveWithWidth creates an empty pitch-class histogram over [0, 1200)
// cents with (approximately) the given class width in cents.
func NewOctaveWithWidth(width float64) (*Histogram, error) {
	return NewWithWidth(0, OctaveCents, width)
}

// Start returns the inclusive lower bound of the domain.
func (h *Histogram) Start() float64 { return h.start }

// Stop returns the exclusive upper bound of the domain.
func (h *Histogram) Stop() float64 { return h.stop }

// ClassWidth returns the width of one class in key units.
func (h *Histogram) ClassWidth() float64 { return h.classWidth }

// NumberOfClasses returns N.
func (h *Histogram) NumberOfClasses() int { return len(h.counts) }

// Wrap folds key into [start, stop). It is the single addressing function:
// every key-based read or write goes through it.
func (h *Histogram) Wrap(key float64) float64 {
	if key >= h.start && key < h.stop {
		return key
	}
	width := h.stop - h.start
	k := math.Mod(key-h.start, width)
	if k < 0 {
		k += width
	}

	return h.start + k
}

// wrapClass reduces a class index modulo N, so i-1 of class 0 is class N-1.
func (h *Histogram) wrapClass(i int) int {
	n := len(h.counts)
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// ClassForKey returns the class owning key after wrapping. The result is
// clamped to [0, N-1] to absorb rounding right below stop, and reconciled
// with the lower edges reported by KeyForClass so that
// ClassForKey(KeyForClass(i)) == i. Non-finite keys map to class 0.
func (h *Histogram) ClassForKey(key float64) int {
	if !isFinite(key) {
		return 0
	}
	k := h.Wrap(key)
	last := len(h.counts) - 1
	i := int(math.Floor((k - h.start) / h.classWidth))
	i = max(0, min(i, last))
	switch {
	case i < last && h.lowerEdge(i+1) <= k:
		i++
	case i > 0 && h.lowerEdge(i) > k:
		i--
	}

	return i
}

// lowerEdge is KeyForClass without wrapping the index.
func (h *Histogram) lowerEdge(i int) float64 {
	return h.start + float64(i)*h.classWidth
}

// KeyForClass returns the lower edge of class i (i is wrapped modulo N).
func (h *Histogram) KeyForClass(i int) float64 {
	return h.lowerEdge(h.wrapClass(i))
}

// Add increments the class owning key by one.
func (h *Histogram) Add(key float64) {
	h.AddWeighted(key, 1)
}

// AddWeighted increments the class owning key by weight. Out-of-range keys
// are wrapped; non-finite keys or weights are ignored.
func (h *Histogram) AddWeighted(key, weight float64) {
	if !isFinite(key) || !isFinite(weight) {
		return
	}
	h.counts[h.ClassForKey(key)] += weight
}

// AddToClass increments class i (wrapped modulo N) by weight.
// Non-finite weights are ignored.
func (h *Histogram) AddToClass(i int, weight float64) {
	if !isFinite(weight) {
		return
	}
	h.counts[h.wrapClass(i)] += weight
}

// Count returns the accumulator of the class owning key.
func (h *Histogram) Count(key float64) float64 {
	return h.counts[h.ClassForKey(key)]
}

// CountForClass returns the accumulator of class i (wrapped modulo N).
func (h *Histogram) CountForClass(i int) float64 {
	return h.counts[h.wrapClass(i)]
}

// MaxBinCount returns the largest accumulator, or 0 for an empty histogram.
func (h *Histogram) MaxBinCount() float64 {
	maxCount := 0.0
	for i, c := range h.counts {
		if i == 0 || c > maxCount {
			maxCount = c
		}
	}

	return maxCount
}

// TotalCount returns the sum of all accumulators.
func (h *Histogram) TotalCount() float64 {
	total := 0.0
	for _, c := range h.counts {
		total += c
	}

	return total
}

// Clear resets every accumulator to zero. Bounds and resolution are kept.
func (h *Histogram) Clear() {
	clear(h.counts)
}

// All yields (key, count) pairs in ascending class order, class 0 first.
// The key of a class is its lower edge.
func (h *Histogram) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i, c := range h.counts {
			if !yield(h.lowerEdge(i), c) {
				return
			}
		}
	}
}

// Counts returns a copy of the accumulators in class order.
func (h *Histogram) Counts() []float64 {
	out := make([]float64, len(h.counts))
	copy(out, h.counts)

	return out
}

// Clone returns a deep copy of h.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		start:      h.start,
		stop:       h.stop,
		classWidth: h.classWidth,
		counts:     h.Counts(),
	}
}

// Normalize scales all accumulators so the largest becomes 1.
// An empty (all-zero) histogram is left untouched.
func (h *Histogram) Normalize() {
	maxCount := h.MaxBinCount()
	if maxCount == 0 {
		return
	}
	for i := range h.counts {
		h.counts[i] /= maxCount
	}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
