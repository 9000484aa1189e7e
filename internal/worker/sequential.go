package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// processSequential analyzes files one at a time.
func processSequential(ctx context.Context, opts Options) []Result {
	results := make([]Result, 0, len(opts.Inputs))

	for i, input := range opts.Inputs {
		slog.Info("processing file",
			"file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)),
			"name", filepath.Base(input))

		res := processFile(ctx, input, opts)
		if res.Err != nil {
			slog.Warn("file failed", "name", filepath.Base(input), "err", res.Err)
		}
		results = append(results, res)
	}

	return results
}
