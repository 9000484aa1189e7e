package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"clipstruct/internal/captions"
	"clipstruct/internal/config"
	"clipstruct/internal/ffmpeg"
	"clipstruct/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <captions-file>",
	Short: "Analyze the structure of one caption file",
	Long: `Analyze a caption file (json, json3, srv1, srt or vtt) and print its
structural breakdown. The video duration enables the closing call-to-action
rule; it is taken from --duration, from --media, or from a video file found
next to the captions.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	videoDuration float64
	mediaPath     string
	outputFormat  string
	output        string
	noProbe       bool

	// Segmentation tuning flags.
	mergeGap           float64
	mergeLength        int
	segmentGap         float64
	maxSegmentDuration float64
)

func init() {
	defaults := config.Default()

	analyzeCmd.Flags().Float64VarP(&videoDuration, "duration", "d", 0, "video duration in seconds (0: unknown)")
	analyzeCmd.Flags().StringVar(&mediaPath, "media", "", "video or audio file to probe for the duration")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json, text")
	analyzeCmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&noProbe, "no-probe", false, "do not look for a video next to the captions")

	analyzeCmd.Flags().Float64Var(&mergeGap, "merge-gap", defaults.Segment.MergeGapThreshold, "max pause in seconds for merging short captions")
	analyzeCmd.Flags().IntVar(&mergeLength, "merge-length", defaults.Segment.MergeLengthLimit, "max characters of a merged caption")
	analyzeCmd.Flags().Float64Var(&segmentGap, "segment-gap", defaults.Segment.SegmentGap, "pause in seconds that starts a new segment")
	analyzeCmd.Flags().Float64Var(&maxSegmentDuration, "max-segment-duration", defaults.Segment.MaxSegmentDuration, "max segment length in seconds")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if outputFormat != "json" && outputFormat != "text" {
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySegmentFlags(cmd, &cfg.Segment)

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	events, err := captions.Load(inputPath)
	if err != nil {
		return err
	}
	slog.Info("captions loaded", "file", filepath.Base(inputPath), "captions", len(events))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	duration := resolveDuration(ctx, inputPath)

	analysis, err := analyzer.Analyze(events, duration)
	if err != nil {
		return fmt.Errorf("%s: %w", pipeline.UserMessage(err), err)
	}

	write := func(w io.Writer) error {
		if outputFormat == "text" {
			return pipeline.WriteTimeline(w, analysis.Structure, analysis.StructureStats)
		}
		return pipeline.NewReport(filepath.Base(inputPath), duration, analysis).WriteJSON(w)
	}

	if output == "" {
		return write(os.Stdout)
	}
	if err := writeFile(output, write); err != nil {
		return err
	}

	slog.Info("report saved", "path", output)
	return nil
}

// writeFile creates path and runs write on it. Close errors are returned.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// applySegmentFlags copies explicitly set tuning flags over the config.
func applySegmentFlags(cmd *cobra.Command, s *config.SegmentSettings) {
	flags := cmd.Flags()
	if flags.Changed("merge-gap") && mergeGap > 0 {
		s.MergeGapThreshold = mergeGap
	}
	if flags.Changed("merge-length") && mergeLength > 0 {
		s.MergeLengthLimit = mergeLength
	}
	if flags.Changed("segment-gap") && segmentGap > 0 {
		s.SegmentGap = segmentGap
	}
	if flags.Changed("max-segment-duration") && maxSegmentDuration > 0 {
		s.MaxSegmentDuration = maxSegmentDuration
	}
}

// resolveDuration picks the video duration: --duration, then --media, then a
// media file next to the captions. 0 means unknown.
func resolveDuration(ctx context.Context, captionPath string) float64 {
	if videoDuration > 0 {
		return videoDuration
	}

	media := mediaPath
	if media == "" && !noProbe {
		media, _ = ffmpeg.FindMedia(captionPath)
	}
	if media == "" {
		slog.Info("video duration unknown, closing call-to-action rule disabled")
		return 0
	}

	ext := filepath.Ext(media)
	if !ffmpeg.IsVideoExtension(ext) && !ffmpeg.IsAudioExtension(ext) {
		slog.Warn("not a media file, probing anyway", "media", filepath.Base(media))
	}

	d, err := ffmpeg.ProbeDuration(ctx, media)
	if err != nil {
		slog.Warn("cannot probe video duration", "media", filepath.Base(media), "err", err)
		return 0
	}
	slog.Info("video duration probed", "media", filepath.Base(media), "seconds", fmt.Sprintf("%.1f", d))
	return d
}
