package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"clipstruct/internal/config"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "clipstruct",
	Short: "Analyze the rhetorical structure of video captions",
	Long: `ClipStruct turns a video's timestamped captions into a structural breakdown:
filler removal, merging of short captions, natural segmentation at pauses and
classification of every segment (hook, background, core point, example,
transition, emotional amplification, call to action) with a short intent.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads --config on top of the defaults, then the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if configPath != "" {
		slog.Debug("config loaded", "path", configPath)
	}
	return cfg, nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (thresholds, word tables, server)")
}
