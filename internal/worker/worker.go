package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"clipstruct/internal/captions"
	"clipstruct/internal/ffmpeg"
	"clipstruct/internal/pipeline"
)

// ReportSuffix is appended to the caption file base name for report files.
const ReportSuffix = ".structure.json"

// Options configures a batch run.
type Options struct {
	Inputs []string
	// OutputDir receives the reports. Empty writes each report next to its
	// caption file.
	OutputDir     string
	NoAsync       bool
	MaxConcurrent int
	// ProbeMedia looks for a video next to each caption file and uses its
	// duration. Without it the duration is unknown.
	ProbeMedia bool
	Analyzer   *pipeline.Analyzer
}

// Result is the outcome of one input file.
type Result struct {
	Input  string
	Output string
	Report *pipeline.Report
	Err    error
}

// Run analyzes every input and writes one report per file. A failing file
// does not stop the others; the returned error joins all failures. Results
// are in input order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Analyzer == nil {
		return nil, errors.New("worker: no analyzer configured")
	}
	if len(opts.Inputs) == 0 {
		return nil, errors.New("worker: no input files")
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	slog.Info("starting batch", "files", len(opts.Inputs))

	var results []Result
	if !opts.NoAsync && opts.MaxConcurrent > 1 && len(opts.Inputs) > 1 {
		results = processConcurrent(ctx, opts)
	} else {
		results = processSequential(ctx, opts)
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("%d of %d files failed: %w", len(errs), len(results), errors.Join(errs...))
	}

	slog.Info("batch complete", "files", len(results))
	return results, nil
}

// processFile runs the whole pipeline for one caption file.
func processFile(ctx context.Context, input string, opts Options) Result {
	res := Result{Input: input, Output: OutputPath(input, opts.OutputDir)}

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("%s: %w", filepath.Base(input), err)
		return res
	}

	events, err := captions.Load(input)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", filepath.Base(input), err)
		return res
	}

	duration := 0.0
	if opts.ProbeMedia {
		duration = mediaDuration(ctx, input)
	}

	analysis, err := opts.Analyzer.Analyze(events, duration)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", filepath.Base(input), err)
		return res
	}

	report := pipeline.NewReport(filepath.Base(input), duration, analysis)
	if err := writeReport(res.Output, report); err != nil {
		res.Err = fmt.Errorf("%s: %w", filepath.Base(input), err)
		return res
	}

	res.Report = report
	slog.Info("report saved",
		"input", filepath.Base(input),
		"output", res.Output,
		"segments", len(analysis.Structure))
	return res
}

// mediaDuration returns the duration of a video next to input, or 0 when
// there is none or it cannot be probed.
func mediaDuration(ctx context.Context, input string) float64 {
	media, ok := ffmpeg.FindMedia(input)
	if !ok {
		slog.Debug("no media file next to captions", "input", filepath.Base(input))
		return 0
	}
	if !ffmpeg.Available() {
		slog.Warn("ffprobe not found, video duration unknown", "media", filepath.Base(media))
		return 0
	}

	info := ffmpeg.LogMediaInfo(ctx, media)
	if info == nil {
		return 0
	}
	return info.Duration
}

// OutputPath returns where the report of input is written.
func OutputPath(input, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+ReportSuffix)
}

func writeReport(path string, report *pipeline.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}
