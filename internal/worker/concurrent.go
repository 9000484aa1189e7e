package worker

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// processConcurrent analyzes files with bounded parallelism. Each goroutine
// owns one slot of the result slice, so no locking is needed.
func processConcurrent(ctx context.Context, opts Options) []Result {
	slog.Info("starting concurrent processing",
		"files", len(opts.Inputs),
		"max_concurrent", opts.MaxConcurrent)

	results := make([]Result, len(opts.Inputs))

	var g errgroup.Group
	g.SetLimit(opts.MaxConcurrent)

	for i, input := range opts.Inputs {
		g.Go(func() error {
			slog.Debug("starting file", "file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)))
			results[i] = processFile(ctx, input, opts)
			if results[i].Err != nil {
				slog.Warn("file failed", "file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)), "err", results[i].Err)
			}
			return nil
		})
	}

	// Per-file failures are recorded in results.
	_ = g.Wait()
	return results
}
