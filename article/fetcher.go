package article

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Fetcher validates a URL, downloads it and extracts the article, going
// through the cache when one is configured.
type Fetcher struct {
	downloader Downloader
	extractor  *Extractor
	cache      Cache
	logger     *zap.Logger
}

func NewFetcher(downloader Downloader, extractor *Extractor, cache Cache, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if extractor == nil {
		extractor = NewExtractor(logger)
	}
	return &Fetcher{
		downloader: downloader,
		extractor:  extractor,
		cache:      cache,
		logger:     logger,
	}
}

// Fetch returns ErrInvalidURL for malformed input and a *FetchError for
// everything that fails afterwards.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Article, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	pageURL := u.String()

	if f.cache != nil {
		cached, ok, err := f.cache.Get(pageURL)
		if err != nil {
			f.logger.Warn("cache_read_failed", zap.String("url", pageURL), zap.Error(err))
		} else if ok {
			f.logger.Info("article_cache_hit", zap.String("url", pageURL))
			return cached, nil
		}
	}

	page, err := f.downloader.Download(ctx, pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	a, err := f.extractor.Extract(page)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	a.URL = pageURL
	a.FetchedAt = time.Now()

	if f.cache != nil {
		if err := f.cache.Put(a); err != nil {
			f.logger.Warn("cache_write_failed", zap.String("url", pageURL), zap.Error(err))
		}
	}
	return a, nil
}
