// SPDX-License-Identifier: MIT

package scala

import (
	"errors"
	"fmt"
)

var (
	// ErrNameCountMismatch is returned when names are given but their count
	// differs from the pitch count.
	ErrNameCountMismatch = errors.New("scala: names and pitches must have the same length")

	// ErrMalformedPitch is returned by ParsePitch for a token it cannot read.
	ErrMalformedPitch = errors.New("scala: malformed pitch")
)

func scalaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
