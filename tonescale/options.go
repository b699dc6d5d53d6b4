// SPDX-License-Identifier: MIT

package tonescale

import (
	"math"

	"github.com/katalvlaran/tonescale/histogram"
)

// Defaults.
const (
	// DefaultClassWidth is one cent per class (1200 classes).
	DefaultClassWidth = 1.0

	// DefaultStandardDeviation is the Gaussian spread, in cents, used for
	// peaks without their own override.
	DefaultStandardDeviation = 15.0
)

const (
	panicNilReference    = "tonescale: WithReference(nil)"
	panicInvalidWidth    = "tonescale: WithClassWidth: width must be finite, > 0 and <= 1200"
	panicInvalidDeviance = "tonescale: WithStandardDeviation: sigma must be finite and > 0"
)

// Option customizes a Synthesizer. Constructors panic on nonsensical values.
type Option func(*Synthesizer)

// WithReference copies the class width of ref so synthesized histograms are
// comparable with it bin for bin.
func WithReference(ref *histogram.Histogram) Option {
	if ref == nil {
		panic(panicNilReference)
	}

	return WithClassWidth(ref.ClassWidth())
}

// WithClassWidth sets the class width in cents.
func WithClassWidth(width float64) Option {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 || width > histogram.OctaveCents {
		panic(panicInvalidWidth)
	}

	return func(s *Synthesizer) { s.classWidth = width }
}

// WithStandardDeviation sets the default Gaussian spread in cents.
func WithStandardDeviation(sigma float64) Option {
	if !validSigma(sigma) {
		panic(panicInvalidDeviance)
	}

	return func(s *Synthesizer) { s.standardDeviation = sigma }
}

func validSigma(sigma float64) bool {
	return !math.IsNaN(sigma) && !math.IsInf(sigma, 0) && sigma > 0
}
