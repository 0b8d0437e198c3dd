package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recapper/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the summarizer over HTTP",
	Long: `Start the HTTP API on APP_PORT.

  POST /summarize  {"url": "..."} or {"text": "...", "lang": "it"}
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := api.NewHandler(a.registry, a.fetcher(false), cfg.FetchTimeout, cfg.HelpContact, logger)
		return api.NewServer(handler, cfg.AppPort, logger).Start(ctx)
	},
}
