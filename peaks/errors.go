// SPDX-License-Identifier: MIT

package peaks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is returned when windowSize <= 0.
	ErrInvalidWindow = errors.New("peaks: window size must be > 0")

	// ErrNilHistogram is returned when the histogram to scan is nil.
	ErrNilHistogram = errors.New("peaks: nil histogram")
)

// peaksErrorf tags err with the failing operation.
func peaksErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
