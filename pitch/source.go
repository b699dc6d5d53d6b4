// SPDX-License-Identifier: MIT

package pitch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tonescale/histogram"
)

// DefaultProbability is the weight of an observation without a probability.
const DefaultProbability = 1.0

// Observation is one estimate from a pitch detector.
type Observation struct {
	Time        float64 // seconds
	Frequency   float64 // Hz; <= 0 means unvoiced
	Probability float64 // detector confidence
}

// Source hands out observations one at a time. Next returns io.EOF once the
// stream is exhausted; any other error aborts accumulation.
type Source interface {
	Next() (Observation, error)
}

// SliceSource serves observations from memory.
type SliceSource struct {
	observations []Observation
	pos          int
}

// NewSliceSource returns a Source over obs.
func NewSliceSource(obs ...Observation) *SliceSource {
	return &SliceSource{observations: obs}
}

// Next implements Source.
func (s *SliceSource) Next() (Observation, error) {
	if s.pos >= len(s.observations) {
		return Observation{}, io.EOF
	}
	o := s.observations[s.pos]
	s.pos++

	return o, nil
}

// TextSource reads whitespace-separated rows "time frequency [probability]".
// Blank rows and rows starting with '#' are ignored; rows that do not parse
// are skipped and counted.
type TextSource struct {
	scanner *bufio.Scanner
	line    int
	skipped int
}

// NewTextSource returns a TextSource reading from r.
func NewTextSource(r io.Reader) *TextSource {
	return &TextSource{scanner: bufio.NewScanner(r)}
}

// Skipped returns how many malformed rows were passed over so far.
func (s *TextSource) Skipped() int { return s.skipped }

// Next implements Source.
func (s *TextSource) Next() (Observation, error) {
	for s.scanner.Scan() {
		s.line++
		row := strings.TrimSpace(s.scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		o, err := ParseObservation(row)
		if err != nil {
			s.skipped++
			continue
		}

		return o, nil
	}
	if err := s.scanner.Err(); err != nil {
		return Observation{}, fmt.Errorf("pitch: read line %d: %w", s.line+1, err)
	}

	return Observation{}, io.EOF
}

// ParseObservation parses "time frequency [probability]".
func ParseObservation(row string) (Observation, error) {
	fields := strings.Fields(row)
	if len(fields) < 2 || len(fields) > 3 {
		return Observation{}, fmt.Errorf("%w: %q", ErrMalformedRow, row)
	}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Observation{}, fmt.Errorf("%w: %q", ErrMalformedRow, row)
		}
		values[i] = v
	}
	o := Observation{Time: values[0], Frequency: values[1], Probability: DefaultProbability}
	if len(values) == 3 {
		o.Probability = values[2]
	}

	return o, nil
}

// AccumulateOptions controls how observations are folded into a histogram.
type AccumulateOptions struct {
	// MinProbability drops observations whose probability is not strictly above it.
	MinProbability float64
	// WeightByProbability adds the probability instead of 1 per observation.
	WeightByProbability bool
}

// Accumulate drains src into h, adding the pitch class (relative cents) of
// every voiced observation. It returns how many observations were added.
// Unvoiced (frequency <= 0) and low-probability observations are skipped.
//
// Errors:
//   - ErrNilHistogram; any non-EOF error from src, returned as is.
func Accumulate(h *histogram.Histogram, src Source, opts AccumulateOptions) (int, error) {
	if h == nil {
		return 0, ErrNilHistogram
	}

	added := 0
	for {
		o, err := src.Next()
		if err == io.EOF {
			return added, nil
		}
		if err != nil {
			return added, err
		}
		if o.Probability <= opts.MinProbability {
			continue
		}
		cents, err := HertzToRelativeCent(o.Frequency)
		if err != nil {
			continue
		}
		weight := 1.0
		if opts.WeightByProbability {
			weight = o.Probability
		}
		h.AddWeighted(cents, weight)
		added++
	}
}
