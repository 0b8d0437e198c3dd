package article

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

var (
	whitespace     = regexp.MustCompile(`\s+`)
	authorSplitter = regexp.MustCompile(`\s*[;,]\s*|\s+and\s+`)
)

// Extractor turns a downloaded page into an Article. Trafilatura is tried
// first, then readability, then a plain paragraph scrape.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

func (e *Extractor) Extract(page *Page) (*Article, error) {
	parsedURL, err := url.Parse(page.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	a := &Article{URL: page.URL}
	if strings.HasPrefix(strings.ToLower(page.ContentType), "text/plain") {
		a.Text = strings.TrimSpace(string(page.Body))
	} else {
		e.extractWithTrafilatura(page.Body, parsedURL, a)
		if a.Text == "" {
			e.extractWithReadability(page.Body, parsedURL, a)
		}
		if a.Text == "" {
			e.extractWithGoquery(page.Body, a)
		}
	}

	if a.Text == "" {
		return nil, ErrUnsupportedArticle
	}

	a.Language = DetectLanguage(a.Language, a.Text)
	if a.Summary == "" {
		a.Summary = firstSentence(a.Text)
	}

	e.logger.Info("article_extracted",
		zap.String("url", a.URL),
		zap.String("title", a.Title),
		zap.String("language", a.Language),
		zap.Strings("authors", a.Authors),
		zap.Int("word_count", len(strings.Fields(a.Text))),
		zap.Int("text_length", len(a.Text)),
	)
	return a, nil
}

func (e *Extractor) extractWithTrafilatura(body []byte, parsedURL *url.URL, a *Article) {
	result, err := trafilatura.Extract(bytes.NewReader(body), trafilatura.Options{
		OriginalURL:    parsedURL,
		EnableFallback: true,
	})
	if err != nil {
		e.logger.Debug("trafilatura: extraction failed", zap.String("url", a.URL), zap.Error(err))
		return
	}

	htmlSize := 0
	if result.ContentNode != nil {
		if htmlStr, err := RenderNodeToString(result.ContentNode); err == nil {
			htmlSize = len(htmlStr)
		}
	}
	e.logger.Debug("trafilatura_extraction_result",
		zap.String("url", a.URL),
		zap.Int("html_size", htmlSize),
		zap.Int("text_size", len(result.ContentText)),
	)

	a.Text = strings.TrimSpace(result.ContentText)
	a.Title = result.Metadata.Title
	a.Authors = SplitAuthors(result.Metadata.Author)
	a.Language = result.Metadata.Language
	a.Summary = oneLine(result.Metadata.Description)
	a.SiteName = result.Metadata.Sitename
}

func (e *Extractor) extractWithReadability(body []byte, parsedURL *url.URL, a *Article) {
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		e.logger.Debug("readability: extraction failed", zap.String("url", a.URL), zap.Error(err))
		return
	}

	a.Text = strings.TrimSpace(article.TextContent)
	if a.Title == "" {
		a.Title = article.Title
	}
	if len(a.Authors) == 0 {
		a.Authors = SplitAuthors(article.Byline)
	}
	if a.Summary == "" {
		a.Summary = oneLine(article.Excerpt)
	}
	if a.SiteName == "" {
		a.SiteName = article.SiteName
	}
}

func (e *Extractor) extractWithGoquery(body []byte, a *Article) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		e.logger.Debug("goquery: failed to parse document", zap.String("url", a.URL), zap.Error(err))
		return
	}

	doc.Find("script, style, noscript, nav, header, footer, aside, form").Remove()

	var texts []string
	doc.Find("article p, main p, p, h1, h2, h3, li").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 10 {
			texts = append(texts, text)
		}
	})

	a.Text = whitespace.ReplaceAllString(strings.Join(texts, " "), " ")
	if a.Title == "" {
		a.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if len(a.Authors) == 0 {
		if author, ok := doc.Find(`meta[name="author"]`).Attr("content"); ok {
			a.Authors = SplitAuthors(author)
		}
	}
	if a.Language == "" {
		if lang, ok := doc.Find("html").Attr("lang"); ok {
			a.Language = lang
		}
	}
}

// SplitAuthors splits a byline into individual names.
func SplitAuthors(byline string) []string {
	byline = strings.TrimSpace(byline)
	byline = strings.TrimPrefix(byline, "By ")
	byline = strings.TrimPrefix(byline, "by ")
	if byline == "" {
		return nil
	}

	var authors []string
	seen := make(map[string]bool)
	for _, name := range authorSplitter.Split(byline, -1) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		authors = append(authors, name)
	}
	return authors
}

func oneLine(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func firstSentence(text string) string {
	text = oneLine(text)
	if i := strings.Index(text, "."); i >= 0 {
		return text[:i+1]
	}
	return text
}

func RenderNodeToString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
