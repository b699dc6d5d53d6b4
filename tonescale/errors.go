// SPDX-License-Identifier: MIT

package tonescale

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when per-peak slices differ in length.
	ErrLengthMismatch = errors.New("tonescale: per-peak slices must have the same length")

	// ErrInvalidStandardDeviation is returned for a per-peak standard
	// deviation that is non-positive or non-finite.
	ErrInvalidStandardDeviation = errors.New("tonescale: standard deviation must be finite and > 0")
)

func tonescaleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
