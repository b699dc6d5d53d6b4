// Package tonescale analyzes cyclic pitch-class distributions: histograms
// over the 1200-cent octave built from pitch observations, the peaks that
// stand out in them, and the tone scales those peaks describe.
//
// 🚀 What is in the box?
//
//	A small, dependency-light toolkit that brings together:
//		• Circular histograms: wrap-around binning, smoothing, comparison
//		• Peak detection: pluggable scoring, thresholding, conflict resolution
//		• Tone-scale synthesis: Gaussian bumps from peaks, spikes from tunings
//		• Scala (.scl) files: read and write tone-scale definitions
//
// Under the hood, everything is organized in flat subpackages:
//
//	histogram/ — the circular Histogram and its addressing, smoothing, matching
//	peaks/     — Scorer strategies and the Detector
//	tonescale/ — Synthesizer for reference tone-scale histograms
//	scala/     — Scale definitions and the .scl text format
//	pitch/     — Hz ↔ cents conversion and observation accumulation
//	config/    — YAML analysis configuration
//	cmd/tonescale — command-line pipeline over all of the above
//
// Data flow:
//
//	observations ─► histogram ─► GaussianSmooth ─► peaks.Detect ─► tonescale ─► BestShift
//	                                                     └────────► scala.WriteFile
//
//	go get github.com/katalvlaran/tonescale
package tonescale
