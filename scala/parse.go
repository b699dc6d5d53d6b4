// SPDX-License-Identifier: MIT

package scala

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/tonescale/pitch"
)

// maxLineBytes bounds a single line of a scale file.
const maxLineBytes = 1 << 20

var (
	ratioLine = regexp.MustCompile(`^\s*[0-9]+(/[0-9]+)?`)
	centsLine = regexp.MustCompile(`^\s*[-+]?[0-9]+\.[0-9]*`)
)

// IsRatioLine reports whether line starts (after optional whitespace) with
// digits, optionally followed by "/" and more digits: 81/64, 5, 10/20.
func IsRatioLine(line string) bool {
	return ratioLine.MatchString(line)
}

// IsCentsLine reports whether line starts (after optional whitespace) with an
// optionally signed decimal containing a point: 408.0, 408., -5.0.
func IsCentsLine(line string) bool {
	return centsLine.MatchString(line)
}

// ParsePitch converts a numeric token to cents. A token containing "/" or no
// "." is a ratio numerator[/denominator] (denominator 1 by default); any
// other token is a cents value.
//
// Errors:
//   - ErrMalformedPitch for unparsable numbers or non-positive ratio terms.
func ParsePitch(token string) (float64, error) {
	if strings.Contains(token, "/") || !strings.Contains(token, ".") {
		parts := strings.Split(token, "/")
		numerator, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedPitch, token)
		}
		denominator := 1.0
		if len(parts) > 1 {
			if denominator, err = strconv.ParseFloat(parts[1], 64); err != nil {
				return 0, fmt.Errorf("%w: %q", ErrMalformedPitch, token)
			}
		}
		cents, err := pitch.RatioToCent(numerator, denominator)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrMalformedPitch, token, err)
		}

		return cents, nil
	}

	cents, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPitch, token)
	}

	return cents, nil
}

// Parse reads a scale definition. Comment lines are skipped; of the remaining
// lines the first is the description, the second the declared count and the
// rest candidate pitch lines. Invalid pitch lines are dropped; the returned
// Scale always has names (empty strings for unnamed pitches).
//
// Errors:
//   - read errors from r, wrapped.
func Parse(r io.Reader) (*Scale, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	s := &Scale{declared: -1, pitches: []float64{}, names: []string{}}
	dataLines := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "!") {
			continue
		}
		dataLines++
		switch dataLines {
		case 1:
			s.description = line
		case 2:
			if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				s.declared = n
			}
		default:
			if !IsRatioLine(line) && !IsCentsLine(line) {
				continue
			}
			token, name := splitPitchLine(line)
			cents, err := ParsePitch(token)
			if err != nil {
				continue
			}
			s.pitches = append(s.pitches, cents)
			s.names = append(s.names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, scalaErrorf(opParse, err)
	}

	return s, nil
}

// ReadFile parses the scale definition stored at path.
func ReadFile(path string) (*Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scalaErrorf(opReadFile, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, scalaErrorf(opReadFile, err)
	}

	return s, nil
}

// splitPitchLine splits a trimmed line at its first whitespace into the
// numeric token and the (trimmed) name.
func splitPitchLine(line string) (token, name string) {
	trimmed := strings.TrimSpace(line)
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return trimmed, ""
	}

	return trimmed[:idx], strings.TrimSpace(trimmed[idx:])
}
