// SPDX-License-Identifier: MIT

package histogram

import "math"

// kernelRadiusSigmas is how many standard deviations the discrete kernel spans
// on each side; mass beyond 4σ is below 1e-4 of the total and is dropped
// before normalization.
const kernelRadiusSigmas = 4.0

// GaussianSmooth replaces the counts with their circular convolution with a
// discrete Gaussian of standard deviation sigma (key units).
//
// Implementation:
//   - Stage 1: Validate sigma and convert it to class units.
//   - Stage 2: Build a symmetric kernel over [-r, r], r = ceil(4σ), normalized to sum 1.
//   - Stage 3: Convolve with wrap-around: class N-1 neighbours class 0.
//
// Behavior highlights:
//   - Total mass is preserved up to floating-point rounding.
//   - Rotating the input rotates the output by the same amount.
//
// Errors:
//   - ErrInvalidSigma for sigma <= 0 or non-finite sigma.
//
// Complexity:
//   - Time O(N·r), Space O(N + r).
func (h *Histogram) GaussianSmooth(sigma float64) error {
	if !isFinite(sigma) || sigma <= 0 {
		return histogramErrorf(opSmooth, ErrInvalidSigma)
	}

	kernel := gaussianKernel(sigma / h.classWidth)
	radius := len(kernel) / 2
	smoothed := make([]float64, len(h.counts))
	for i := range h.counts {
		sum := 0.0
		for k := -radius; k <= radius; k++ {
			sum += kernel[k+radius] * h.counts[h.wrapClass(i-k)]
		}
		smoothed[i] = sum
	}
	h.counts = smoothed

	return nil
}

// gaussianKernel returns a normalized, symmetric kernel of length 2r+1.
func gaussianKernel(sigmaClasses float64) []float64 {
	radius := int(math.Ceil(kernelRadiusSigmas * sigmaClasses))
	kernel := make([]float64, 2*radius+1)
	twoSigmaSq := 2 * sigmaClasses * sigmaClasses
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / twoSigmaSq)
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
