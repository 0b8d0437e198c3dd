package file

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"recapper/article"
)

// HTMLExtractor runs a saved web page through the article extractor.
type HTMLExtractor struct {
	extractor *article.Extractor
}

func NewHTMLExtractor(extractor *article.Extractor) *HTMLExtractor {
	return &HTMLExtractor{extractor: extractor}
}

func (e *HTMLExtractor) ExtractText(path string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	pageURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()

	a, err := e.extractor.Extract(&article.Page{
		URL:         pageURL,
		Body:        body,
		ContentType: "text/html",
	})
	if err != nil {
		return "", err
	}
	return a.Text, nil
}
