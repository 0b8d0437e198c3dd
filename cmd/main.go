package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recapper/config"
	"recapper/recap"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	fraction     float64
	topTerms     int
	topTermsMode string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "recap",
	Short: "Extractive summaries of articles and text files",
	Long: `recap scores every sentence of a document by the mean TF-IDF weight of
its content words and keeps the best ranked ones, in document order.

Examples:
  recap file notes.txt                    # Italian text file, 30% of sentences
  recap file report.pdf --lang en --json  # English PDF, JSON output
  recap url https://example.com/story     # fetch, detect language, summarize
  recap serve                             # HTTP API on APP_PORT`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))

		if fraction <= 0 || fraction > 1 {
			return &recap.Error{Kind: recap.KindInvalidInput, Op: "flags", Input: fmt.Sprint(fraction), Err: errors.New("--fraction must be in (0, 1]")}
		}
		if _, ok := recap.ParseTopTermsMode(topTermsMode); !ok {
			return &recap.Error{Kind: recap.KindInvalidInput, Op: "flags", Input: topTermsMode, Err: errors.New("--top-terms must be last or aggregate")}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&fraction, "fraction", recap.DefaultFraction, "share of sentences to keep, in (0, 1]")
	rootCmd.PersistentFlags().IntVar(&topTerms, "top", recap.DefaultTopTerms, "number of top terms to report")
	rootCmd.PersistentFlags().StringVar(&topTermsMode, "top-terms", "last", "rank terms by the last sentence (last) or the whole document (aggregate)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")

	rootCmd.AddCommand(fileCmd, urlCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// reportFailure logs err with the offending input and where to ask for help.
func reportFailure(err error) {
	help := ""
	if cfg != nil {
		help = cfg.HelpContact
	}

	if logger == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fields := []zap.Field{zap.Error(err)}
	var recapErr *recap.Error
	if errors.As(err, &recapErr) {
		fields = append(fields,
			zap.String("kind", recapErr.Kind.String()),
			zap.String("input", recapErr.Input),
		)
	}
	if help != "" {
		fields = append(fields, zap.String("help", help))
	}
	logger.Error("recap_failed", fields...)
	_ = logger.Sync()

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if help != "" {
		fmt.Fprintf(os.Stderr, "If the problem persists, contact %s\n", help)
	}
}
