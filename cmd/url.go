package main

import (
	"context"

	"github.com/spf13/cobra"

	"recapper/recap"
)

var (
	renderJS  bool
	showTable bool
)

var urlCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Fetch an article and summarize it",
	Long: `Fetch a web article, detect its language and summarize it. Stop words
are ignored and the best ranked sentence is always kept.

Examples:
  recap url https://example.com/story
  recap url https://example.com/app-page --render --table`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		fetchCtx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
		defer cancel()

		s, err := recap.FromURL(fetchCtx, args[0], a.fetcher(renderJS), a.registry, summarizerOptions(logger)...)
		if err != nil {
			return err
		}
		return summarizeAndPrint(cmd.Context(), cmd.OutOrStdout(), s, showTable)
	},
}

func init() {
	urlCmd.Flags().BoolVar(&renderJS, "render", false, "render the page in headless Chrome before extraction")
	urlCmd.Flags().BoolVar(&showTable, "table", false, "print the full score table")
}
