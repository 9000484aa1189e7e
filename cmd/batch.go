package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clipstruct/internal/pipeline"
	"clipstruct/internal/worker"
)

var batchCmd = &cobra.Command{
	Use:   "batch <captions-file>...",
	Short: "Analyze many caption files in parallel",
	Long: `Analyze several caption files and write one <name>.structure.json report
per file. Files are processed concurrently unless --no-async is set; a failing
file does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	outputDir     string
	noAsync       bool
	maxConcurrent int
	batchNoProbe  bool
)

func init() {
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for reports (default: next to each file)")
	batchCmd.Flags().BoolVar(&noAsync, "no-async", false, "process files one at a time")
	batchCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", 0, "max files analyzed at once (default: config max_concurrent)")
	batchCmd.Flags().BoolVar(&batchNoProbe, "no-probe", false, "do not look for videos next to the captions")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if maxConcurrent > 0 {
		cfg.MaxConcurrent = maxConcurrent
	}

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := worker.Run(ctx, worker.Options{
		Inputs:        args,
		OutputDir:     outputDir,
		NoAsync:       noAsync,
		MaxConcurrent: cfg.MaxConcurrent,
		ProbeMedia:    !batchNoProbe,
		Analyzer:      analyzer,
	})

	done := 0
	for _, r := range results {
		if r.Err == nil {
			done++
		}
	}
	slog.Info("batch finished", "succeeded", fmt.Sprintf("%d/%d", done, len(args)))

	return err
}
