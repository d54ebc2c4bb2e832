package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/factory"
)

var (
	cfg    *Config
	out    *Output
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordlestrat",
		Short: "Compare fixed and random first-guess strategies for Wordle",
		Long: `wordlestrat analyzes a five-letter word list and runs Monte Carlo
simulations comparing two guessing strategies:

  Felix  always guesses the same word (default "cores")
  Laney  guesses a random word from the list, fixed for each experiment

Each trial scores both guesses against many random targets by counting
letters in the correct position. The per-trial averages are summarized
and drawn as overlapping histograms.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != OutputText && cfg.Output != OutputJSON {
				return fmt.Errorf("invalid output format %q: must be %s or %s", cfg.Output, OutputText, OutputJSON)
			}
			out = NewOutput(cfg.Output, cmd.OutOrStdout())
			logger = cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.WordsPath, "words", "w", cfg.WordsPath, "Word list file (env: WORDLESTRAT_WORDS)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: WORDLESTRAT_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Use a running API server instead of local state (env: WORDLESTRAT_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openApp wires the application from the CLI config, loading the word list when asked.
// With redis storage and no word file the stored list is used.
func openApp(ctx context.Context, loadWords bool) (*factory.App, error) {
	app, err := factory.New(cfg.FactoryConfig(logger))
	if err != nil {
		return nil, err
	}
	if !loadWords {
		return app, nil
	}

	if err := app.LoadWords(ctx, cfg.WordsPath); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// remote returns an API client when a server URL is configured
func remote() (*Client, bool) {
	if cfg.ServerURL == "" {
		return nil, false
	}
	return NewClient(cfg.ServerURL), true
}
