// SPDX-License-Identifier: MIT

package pitch

import "math"

// OctaveCents is the number of cents in an octave.
const OctaveCents = 1200.0

// ReferenceFrequency is the frequency at 0 absolute cents: C five octaves
// below A4 = 440 Hz, about 8.176 Hz.
var ReferenceFrequency = 440 * math.Pow(2, 3.0/12-5)

// HertzToAbsoluteCent converts hz to cents above ReferenceFrequency.
func HertzToAbsoluteCent(hz float64) (float64, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return 0, ErrInvalidFrequency
	}

	return OctaveCents * math.Log2(hz/ReferenceFrequency), nil
}

// AbsoluteCentToHertz is the inverse of HertzToAbsoluteCent.
func AbsoluteCentToHertz(cents float64) float64 {
	return ReferenceFrequency * math.Pow(2, cents/OctaveCents)
}

// HertzToRelativeCent converts hz to a pitch class in [0, 1200) cents.
func HertzToRelativeCent(hz float64) (float64, error) {
	abs, err := HertzToAbsoluteCent(hz)
	if err != nil {
		return 0, err
	}
	rel := math.Mod(abs, OctaveCents)
	if rel < 0 {
		rel += OctaveCents
	}

	return rel, nil
}

// RatioToCent returns the interval numerator/denominator in cents, computed
// as the absolute difference of both terms on the absolute-cent scale.
func RatioToCent(numerator, denominator float64) (float64, error) {
	num, err := HertzToAbsoluteCent(numerator)
	if err != nil {
		return 0, err
	}
	den, err := HertzToAbsoluteCent(denominator)
	if err != nil {
		return 0, err
	}

	return math.Abs(num - den), nil
}
