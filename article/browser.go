package article

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// BrowserDownloader renders pages in headless Chrome before handing back the
// DOM, for sites that build their content with JavaScript.
type BrowserDownloader struct {
	logger          *zap.Logger
	ChromedpOptions []chromedp.ExecAllocatorOption
}

func NewBrowserDownloader(config *DownloaderConfig, logger *zap.Logger) *BrowserDownloader {
	if config == nil {
		config = DefaultDownloaderConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.UserAgent(config.UserAgent),
		chromedp.Flag("disable-extensions", true),
	)
	if config.ProxyURL != "" {
		opts = append(opts, chromedp.ProxyServer(config.ProxyURL))
	}

	return &BrowserDownloader{
		logger:          logger,
		ChromedpOptions: opts,
	}
}

func (b *BrowserDownloader) Download(ctx context.Context, pageURL string) (*Page, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.ChromedpOptions...)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var currentURL, domHTML string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Location(&currentURL),
		chromedp.OuterHTML("html", &domHTML),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	b.logger.Info("page_rendered",
		zap.String("url", currentURL),
		zap.Int("body_size", len(domHTML)),
	)

	return &Page{
		URL:         currentURL,
		Body:        []byte(domHTML),
		ContentType: "text/html; charset=utf-8",
		StatusCode:  200,
	}, nil
}
