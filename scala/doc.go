// SPDX-License-Identifier: MIT

// Package scala reads and writes tone-scale definitions in the Scala (.scl)
// text format.
//
// Format (line oriented):
//
//	! comment lines start with '!' and are ignored everywhere
//	description line (free text)
//	pitch count (informative only)
//	81/64         ratio: numerator[/denominator]
//	408.0 E       cents: must contain a '.'
//	5/4   E\      anything after the number is the pitch name
//
// Lines that are neither a ratio nor a cents value are dropped silently, as
// are lines whose number does not parse. Nothing else is an error: only I/O
// failures are reported.
//
//	s, err := scala.ReadFile("pelog.scl")
//	h, err := s.Histogram(nil) // unit spikes at 1 cent resolution
package scala
