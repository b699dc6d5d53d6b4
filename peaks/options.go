// SPDX-License-Identifier: MIT

package peaks

// DefaultGateDistance is the neighbour distance used by the difference gate.
const DefaultGateDistance = 1

// Internal panic messages.
const (
	panicNilGate         = "peaks: WithGate(nil)"
	panicNilScorer       = "peaks: WithScorer(nil)"
	panicInvalidDistance = "peaks: WithGateDistance: distance must be >= 1"
)

// Option customizes a Detector. Option constructors panic on meaningless
// values (programmer error); Detect itself never panics.
type Option func(*Detector)

// WithGate replaces the cheap local-maximum gate (default DifferenceScore).
// A class whose gate score is exactly 0 gets a combined score of 0.
func WithGate(s Scorer) Option {
	if s == nil {
		panic(panicNilGate)
	}

	return func(d *Detector) { d.gate = s }
}

// WithScorer replaces the windowed score applied to gated classes
// (default LocalHeightScore). It receives windowSize as its parameter.
func WithScorer(s Scorer) Option {
	if s == nil {
		panic(panicNilScorer)
	}

	return func(d *Detector) { d.scorer = s }
}

// WithGateDistance sets the neighbour distance passed to the gate.
func WithGateDistance(distance int) Option {
	if distance < 1 {
		panic(panicInvalidDistance)
	}

	return func(d *Detector) { d.gateDistance = distance }
}
