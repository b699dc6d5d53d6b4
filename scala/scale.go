// SPDX-License-Identifier: MIT

package scala

import (
	"github.com/katalvlaran/tonescale/histogram"
	"github.com/katalvlaran/tonescale/tonescale"
)

const (
	opNew       = "New"
	opParse     = "Parse"
	opReadFile  = "ReadFile"
	opWriteFile = "WriteFile"
	opHistogram = "Histogram"
)

// Scale is a tone-scale definition: a description, pitches in cents and,
// optionally, one name per pitch. Pitches need not be sorted or unique.
// A Scale owns copies of its slices.
type Scale struct {
	description string
	pitches     []float64
	names       []string // nil when the pitches are unnamed
	declared    int
}

// New returns a Scale over copies of pitches and names. names may be nil.
//
// Errors:
//   - ErrNameCountMismatch if names != nil and len(names) != len(pitches).
func New(description string, pitches []float64, names []string) (*Scale, error) {
	if names != nil && len(names) != len(pitches) {
		return nil, scalaErrorf(opNew, ErrNameCountMismatch)
	}
	s := &Scale{
		description: description,
		pitches:     append([]float64{}, pitches...),
		declared:    len(pitches),
	}
	if names != nil {
		s.names = append([]string{}, names...)
	}

	return s, nil
}

// Western returns the 12-tone equal-tempered scale, C through B.
func Western() *Scale {
	return &Scale{
		description: "The western tone scale",
		pitches:     []float64{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100},
		names:       []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
		declared:    12,
	}
}

// Description returns the free-text description.
func (s *Scale) Description() string { return s.description }

// Len returns the number of pitches.
func (s *Scale) Len() int { return len(s.pitches) }

// DeclaredCount returns the pitch count stated in the source text, or -1 if
// it was missing or unreadable. It may differ from Len.
func (s *Scale) DeclaredCount() int { return s.declared }

// Pitches returns a copy of the pitches in cents.
func (s *Scale) Pitches() []float64 {
	return append([]float64{}, s.pitches...)
}

// HasNames reports whether the pitches carry names.
func (s *Scale) HasNames() bool { return s.names != nil }

// Names returns a copy of the pitch names, or nil when unnamed. An unnamed
// pitch in a named scale has the empty name.
func (s *Scale) Names() []string {
	if s.names == nil {
		return nil
	}

	return append([]string{}, s.names...)
}

// Histogram builds the unit-spike tone-scale histogram of s with synth.
// A nil synth uses tonescale defaults.
func (s *Scale) Histogram(synth *tonescale.Synthesizer) (*histogram.Histogram, error) {
	if synth == nil {
		synth = tonescale.New()
	}
	h, err := synth.FromTuning(s.pitches)
	if err != nil {
		return nil, scalaErrorf(opHistogram, err)
	}

	return h, nil
}
