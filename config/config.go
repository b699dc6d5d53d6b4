// SPDX-License-Identifier: MIT

// Package config loads the analysis parameters of the tonescale pipeline
// from YAML. Values absent from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tonescale/histogram"
	"github.com/katalvlaran/tonescale/peaks"
	"github.com/katalvlaran/tonescale/pitch"
	"github.com/katalvlaran/tonescale/tonescale"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete analysis configuration.
type Config struct {
	Histogram HistogramConfig `yaml:"histogram"`
	Peaks     PeaksConfig     `yaml:"peaks"`
	ToneScale ToneScaleConfig `yaml:"tonescale"`
	Input     InputConfig     `yaml:"input"`
}

// HistogramConfig sets the pitch-class histogram resolution and smoothing.
type HistogramConfig struct {
	Classes     int     `yaml:"classes"`
	SmoothSigma float64 `yaml:"smooth_sigma"` // cents; 0 disables smoothing
}

// PeaksConfig holds the detector parameters.
type PeaksConfig struct {
	WindowSize   int     `yaml:"window_size"`
	Threshold    float64 `yaml:"threshold"`
	GateDistance int     `yaml:"gate_distance"`
}

// ToneScaleConfig holds the synthesizer parameters.
type ToneScaleConfig struct {
	StandardDeviation float64 `yaml:"standard_deviation"`
}

// InputConfig controls how observations are folded into the histogram.
type InputConfig struct {
	MinProbability      float64 `yaml:"min_probability"`
	WeightByProbability bool    `yaml:"weight_by_probability"`
}

// Default returns the built-in configuration: one class per cent, light
// smoothing, a 5-class detection window and a threshold of 15.
func Default() Config {
	return Config{
		Histogram: HistogramConfig{Classes: 1200, SmoothSigma: 0.8},
		Peaks:     PeaksConfig{WindowSize: 5, Threshold: 15, GateDistance: peaks.DefaultGateDistance},
		ToneScale: ToneScaleConfig{StandardDeviation: tonescale.DefaultStandardDeviation},
		Input:     InputConfig{MinProbability: 0},
	}
}

// Load reads filename, overlays it on Default and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Histogram.Classes < 1 {
		return fmt.Errorf("%w: histogram.classes must be >= 1, got %d", ErrInvalid, c.Histogram.Classes)
	}
	if c.Histogram.SmoothSigma < 0 {
		return fmt.Errorf("%w: histogram.smooth_sigma must be >= 0, got %v", ErrInvalid, c.Histogram.SmoothSigma)
	}
	if c.Peaks.WindowSize < 1 {
		return fmt.Errorf("%w: peaks.window_size must be >= 1, got %d", ErrInvalid, c.Peaks.WindowSize)
	}
	if c.Peaks.GateDistance < 1 {
		return fmt.Errorf("%w: peaks.gate_distance must be >= 1, got %d", ErrInvalid, c.Peaks.GateDistance)
	}
	if c.ToneScale.StandardDeviation <= 0 {
		return fmt.Errorf("%w: tonescale.standard_deviation must be > 0, got %v", ErrInvalid, c.ToneScale.StandardDeviation)
	}

	return nil
}

// NewHistogram allocates the empty octave histogram described by c.
func (c *Config) NewHistogram() (*histogram.Histogram, error) {
	return histogram.NewOctave(c.Histogram.Classes)
}

// Detector returns the peak detector described by c.
func (c *Config) Detector() *peaks.Detector {
	return peaks.NewDetector(peaks.WithGateDistance(c.Peaks.GateDistance))
}

// Synthesizer returns a tone-scale synthesizer calibrated on ref.
func (c *Config) Synthesizer(ref *histogram.Histogram) *tonescale.Synthesizer {
	return tonescale.New(
		tonescale.WithReference(ref),
		tonescale.WithStandardDeviation(c.ToneScale.StandardDeviation),
	)
}

// AccumulateOptions maps the input section onto pitch.AccumulateOptions.
func (c *Config) AccumulateOptions() pitch.AccumulateOptions {
	return pitch.AccumulateOptions{
		MinProbability:      c.Input.MinProbability,
		WeightByProbability: c.Input.WeightByProbability,
	}
}
