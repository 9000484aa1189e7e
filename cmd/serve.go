package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"clipstruct/internal/api"
	"clipstruct/internal/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve structure analysis over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	addr      string
	rateLimit int
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr)")
	serveCmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "API requests per minute (default: config server.rate_limit_per_min)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if rateLimit > 0 {
		cfg.Server.RateLimitPerMin = rateLimit
	}

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	log := slog.Default()
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewServer(analyzer, log, cfg.Server),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting clipstruct server",
		"addr", cfg.Server.Addr,
		"rate_limit_rpm", cfg.Server.RateLimitPerMin)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
