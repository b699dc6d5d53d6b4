// SPDX-License-Identifier: MIT

// Command tonescale builds a pitch-class histogram from pitch observations,
// detects its peaks, matches them against a reference scale and optionally
// stores them as a Scala (.scl) file.
//
// Input rows are "time frequency [probability]", one observation per line,
// as produced by any external pitch tracker.
//
//	tonescale -in song.f0 -config tonescale.yaml -out song.scl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/tonescale/config"
	"github.com/katalvlaran/tonescale/histogram"
	"github.com/katalvlaran/tonescale/peaks"
	"github.com/katalvlaran/tonescale/pitch"
	"github.com/katalvlaran/tonescale/scala"
	"github.com/katalvlaran/tonescale/tonescale"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNoInput = errors.New("missing -in")

// report is the machine-readable result printed with -json.
type report struct {
	Observations int          `json:"observations"`
	Skipped      int          `json:"skipped_rows"`
	Peaks        []peakReport `json:"peaks"`
	Reference    string       `json:"reference"`
	ShiftCents   float64      `json:"shift_cents"`
	Correlation  float64      `json:"correlation"`
}

type peakReport struct {
	Position float64 `json:"position"`
	Height   float64 `json:"height"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("tonescale: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("tonescale", flag.ContinueOnError)
	var (
		inPath     = fs.String("in", "", "Observation file (\"-\" for stdin)")
		configPath = fs.String("config", "", "YAML configuration file (defaults when empty)")
		outPath    = fs.String("out", "", "Write detected peaks as a .scl file")
		refPath    = fs.String("reference", "", "Reference .scl file (12-TET when empty)")
		desc       = fs.String("desc", "Detected tone scale", "Description line of the written scale")
		asJSON     = fs.Bool("json", false, "Print the result as JSON")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errNoInput
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	in := stdin
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	h, err := cfg.NewHistogram()
	if err != nil {
		return err
	}
	src := pitch.NewTextSource(in)
	n, err := pitch.Accumulate(h, src, cfg.AccumulateOptions())
	if err != nil {
		return fmt.Errorf("read observations: %w", err)
	}
	log.Printf("tonescale: %s observations accumulated, %s rows skipped",
		humanize.Comma(int64(n)), humanize.Comma(int64(src.Skipped())))

	if cfg.Histogram.SmoothSigma > 0 {
		if err = h.GaussianSmooth(cfg.Histogram.SmoothSigma); err != nil {
			return err
		}
	}

	found, err := cfg.Detector().Detect(h, cfg.Peaks.WindowSize, cfg.Peaks.Threshold)
	if err != nil {
		return err
	}
	log.Printf("tonescale: %d peaks (window %d, threshold %g)", len(found), cfg.Peaks.WindowSize, cfg.Peaks.Threshold)

	reference := scala.Western()
	if *refPath != "" {
		if reference, err = scala.ReadFile(*refPath); err != nil {
			return err
		}
	}
	synth := cfg.Synthesizer(h)
	shiftCents, correlation, err := match(synth, found, reference)
	if err != nil {
		return err
	}

	if *outPath != "" && len(found) > 0 {
		detected, err := scala.New(*desc, peaks.Positions(found), nil)
		if err != nil {
			return err
		}
		if err = detected.WriteFile(*outPath); err != nil {
			return err
		}
		log.Printf("tonescale: wrote %s", *outPath)
	}

	r := report{
		Observations: n,
		Skipped:      src.Skipped(),
		Peaks:        make([]peakReport, len(found)),
		Reference:    reference.Description(),
		ShiftCents:   shiftCents,
		Correlation:  correlation,
	}
	for i, p := range found {
		r.Peaks[i] = peakReport{Position: p.Position, Height: p.Height}
	}

	return printReport(stdout, r, *asJSON)
}

// match builds smooth, normalized tone-scale histograms of the detected peaks
// and of the reference scale and returns the best circular alignment.
// No peaks yields a zero match.
func match(synth *tonescale.Synthesizer, found []peaks.Peak, reference *scala.Scale) (shiftCents, correlation float64, err error) {
	if len(found) == 0 || reference.Len() == 0 {
		return 0, 0, nil
	}
	detected, err := synth.FromPeakList(found)
	if err != nil {
		return 0, 0, err
	}
	refPitches := reference.Pitches()
	heights := make([]float64, len(refPitches))
	for i := range heights {
		heights[i] = 1
	}
	ref, err := synth.FromPeaks(refPitches, heights, nil, nil)
	if err != nil {
		return 0, 0, err
	}
	detected.Normalize()
	ref.Normalize()

	shift, correlation, err := ref.BestShift(detected)
	if err != nil {
		return 0, 0, err
	}

	return shiftToCents(ref, shift), correlation, nil
}

// shiftToCents maps a class shift to a signed offset in (-600, 600] cents.
func shiftToCents(h *histogram.Histogram, shift int) float64 {
	cents := float64(shift) * h.ClassWidth()
	if cents > histogram.OctaveCents/2 {
		cents -= histogram.OctaveCents
	}

	return cents
}

func printReport(w io.Writer, r report, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	for _, p := range r.Peaks {
		if _, err := fmt.Fprintf(w, "%8.2f %10.3f\n", p.Position, p.Height); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "reference %q: shift %.0f cents, correlation %.3f\n",
		r.Reference, r.ShiftCents, r.Correlation)

	return err
}
