package main

import (
	"github.com/spf13/cobra"

	"recapper/recap"
)

var fileLang string

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Summarize a local text, HTML or PDF file",
	Long: `Summarize a local document. Every content word counts, stop words
included, and the full score table is printed after the summary.

Examples:
  recap file articolo.txt
  recap file paper.pdf --lang en --fraction 0.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		a, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		doc, err := a.loader().Load(path)
		if err != nil {
			return &recap.Error{Kind: recap.KindInvalidInput, Op: "load", Input: path, Err: err}
		}

		tagger, err := a.registry.Lookup(fileLang)
		if err != nil {
			return &recap.Error{Kind: recap.KindUnsupportedLanguage, Op: "new", Input: fileLang, Err: err}
		}

		s, err := recap.New(doc, tagger, summarizerOptions(logger)...)
		if err != nil {
			return err
		}
		return summarizeAndPrint(cmd.Context(), cmd.OutOrStdout(), s, true)
	},
}

func init() {
	fileCmd.Flags().StringVar(&fileLang, "lang", "it", "language of the document")
}
