package main

import (
	"fmt"

	"go.uber.org/zap"

	"recapper/article"
	"recapper/client"
	"recapper/config"
	"recapper/file"
	"recapper/recap"
	"recapper/storage"
	"recapper/text"
)

// app holds the collaborators shared by the subcommands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *text.Registry
	cache    *storage.BoltDBStorage
}

func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if cfg.TaggerURL != "" {
		models, err := config.LoadModels(cfg.ModelsFile)
		if err != nil {
			return nil, err
		}
		a.registry = client.NewRegistry(cfg.TaggerURL, models, cfg.TaggerTimeout)
		logger.Debug("remote_tagger", zap.String("url", cfg.TaggerURL), zap.Int("languages", len(models)))
	} else {
		a.registry = text.NewLocalRegistry()
	}

	if cfg.CachePath != "" {
		a.cache = &storage.BoltDBStorage{DBPath: cfg.CachePath, TTL: cfg.CacheTTL}
		if err := a.cache.Init(); err != nil {
			return nil, fmt.Errorf("failed to open article cache: %w", err)
		}
	}
	return a, nil
}

func (a *app) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache_close_failed", zap.Error(err))
		}
	}
}

func (a *app) fetcher(render bool) *article.Fetcher {
	dcfg := &article.DownloaderConfig{
		UserAgent:      a.cfg.UserAgent,
		ProxyURL:       a.cfg.ProxyURL,
		RequestTimeout: a.cfg.FetchTimeout,
	}

	var downloader article.Downloader = article.NewHTTPDownloader(dcfg, a.logger)
	if render || a.cfg.RenderJS {
		downloader = article.NewBrowserDownloader(dcfg, a.logger)
	}

	var cache article.Cache
	if a.cache != nil {
		cache = a.cache
	}
	return article.NewFetcher(downloader, article.NewExtractor(a.logger), cache, a.logger)
}

func (a *app) loader() *file.Core {
	return file.NewCore(
		file.NewPDFExtractor(),
		file.NewHTMLExtractor(article.NewExtractor(a.logger)),
		a.logger,
	)
}

func summarizerOptions(l *zap.Logger) []recap.Option {
	mode, _ := recap.ParseTopTermsMode(topTermsMode)
	return []recap.Option{recap.WithTopTerms(mode), recap.WithLogger(l)}
}
