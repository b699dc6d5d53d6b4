// SPDX-License-Identifier: MIT

package peaks

// Peak is a detected local maximum: a key in the histogram's domain and the
// count found there. It is a plain value and is never modified after creation.
type Peak struct {
	Position float64
	Height   float64
}

// Positions returns the positions of ps in order.
func Positions(ps []Peak) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Position
	}

	return out
}

// Heights returns the heights of ps in order.
func Heights(ps []Peak) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Height
	}

	return out
}
