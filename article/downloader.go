package article

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// Page is a downloaded document before extraction.
type Page struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
}

type Downloader interface {
	Download(ctx context.Context, url string) (*Page, error)
}

type DownloaderConfig struct {
	UserAgent      string
	ProxyURL       string
	RequestTimeout time.Duration
}

// DefaultDownloaderConfig returns a default downloader configuration
func DefaultDownloaderConfig() *DownloaderConfig {
	return &DownloaderConfig{
		UserAgent:      "Recapper/1.0",
		RequestTimeout: 30 * time.Second,
	}
}

// HTTPDownloader fetches pages with a single-use colly collector.
type HTTPDownloader struct {
	config *DownloaderConfig
	logger *zap.Logger
}

func NewHTTPDownloader(config *DownloaderConfig, logger *zap.Logger) *HTTPDownloader {
	if config == nil {
		config = DefaultDownloaderConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPDownloader{config: config, logger: logger}
}

func (d *HTTPDownloader) Download(ctx context.Context, pageURL string) (*Page, error) {
	c := colly.NewCollector(
		colly.UserAgent(d.config.UserAgent),
		colly.StdlibContext(ctx),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(d.config.RequestTimeout)
	if d.config.ProxyURL != "" {
		if err := c.SetProxy(d.config.ProxyURL); err != nil {
			return nil, fmt.Errorf("failed to set proxy: %w", err)
		}
	}

	var page *Page
	c.OnResponse(func(r *colly.Response) {
		page = &Page{
			URL:         r.Request.URL.String(),
			Body:        r.Body,
			ContentType: r.Headers.Get("Content-Type"),
			StatusCode:  r.StatusCode,
		}
		d.logger.Info("page_downloaded",
			zap.String("url", page.URL),
			zap.Int("status_code", r.StatusCode),
			zap.Int("body_size", len(r.Body)),
		)
	})
	c.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		d.logger.Warn("download_failed",
			zap.String("url", pageURL),
			zap.Int("status_code", status),
			zap.Error(err),
		)
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to download page: %w", err)
	}
	c.Wait()

	if page == nil {
		return nil, fmt.Errorf("failed to download page: no response")
	}
	if page.StatusCode < http.StatusOK || page.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", page.StatusCode)
	}
	return page, nil
}
