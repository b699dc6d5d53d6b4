// SPDX-License-Identifier: MIT

package pitch

import "errors"

var (
	// ErrInvalidFrequency is returned for a frequency that is not finite and > 0.
	ErrInvalidFrequency = errors.New("pitch: frequency must be finite and > 0")

	// ErrNilHistogram is returned by Accumulate for a nil target.
	ErrNilHistogram = errors.New("pitch: nil histogram")

	// ErrMalformedRow is returned by TextSource for a row it cannot read.
	ErrMalformedRow = errors.New("pitch: malformed observation row")
)
