package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var ErrEmptyDocument = errors.New("document contains no text")

// Core picks an extractor by file extension. Anything that is not a PDF or
// an HTML page is read as UTF-8 text.
type Core struct {
	pdfExtractor  TextExtractor
	htmlExtractor TextExtractor
	logger        *zap.Logger
}

func NewCore(pdfExtractor, htmlExtractor TextExtractor, logger *zap.Logger) *Core {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Core{
		pdfExtractor:  pdfExtractor,
		htmlExtractor: htmlExtractor,
		logger:        logger,
	}
}

func (c *Core) Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	extension := strings.ToLower(filepath.Ext(path))

	var text string
	switch {
	case extension == ".pdf" && c.pdfExtractor != nil:
		text, err = c.pdfExtractor.ExtractText(path)
	case (extension == ".html" || extension == ".htm") && c.htmlExtractor != nil:
		text, err = c.htmlExtractor.ExtractText(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	}
	if err != nil {
		return "", err
	}

	c.logger.Info("document_loaded",
		zap.String("file", path),
		zap.String("extension", extension),
		zap.Int64("size", info.Size()),
		zap.Int("text_length", len(text)),
	)

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyDocument)
	}
	return text, nil
}
