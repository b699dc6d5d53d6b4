// SPDX-License-Identifier: MIT

package histogram

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "histogram: ". Callers match with errors.Is.
var (
	// ErrInvalidRange is returned when stop <= start or a bound is NaN/Inf.
	ErrInvalidRange = errors.New("histogram: range must satisfy start < stop with finite bounds")

	// ErrInvalidClasses is returned when the number of classes is < 1.
	ErrInvalidClasses = errors.New("histogram: number of classes must be >= 1")

	// ErrInvalidWidth is returned when a requested class width is non-positive,
	// non-finite, or larger than the domain.
	ErrInvalidWidth = errors.New("histogram: class width must be finite, > 0 and <= range")

	// ErrInvalidSigma is returned by GaussianSmooth for sigma <= 0 or non-finite.
	ErrInvalidSigma = errors.New("histogram: sigma must be finite and > 0")

	// ErrNilHistogram indicates a nil *Histogram operand.
	ErrNilHistogram = errors.New("histogram: nil histogram")

	// ErrIncompatible indicates two histograms with different bounds or resolution.
	ErrIncompatible = errors.New("histogram: histograms have different bounds or classes")
)

// histogramErrorf tags err with the failing operation, keeping errors.Is intact.
func histogramErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
