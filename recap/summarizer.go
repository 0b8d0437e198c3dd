package recap

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"recapper/article"
	"recapper/text"
	"recapper/tfidf"
)

// Row is one sentence of the score table.
type Row struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

// Table holds one row per sentence in document order.
type Table []Row

// ArticleFetcher retrieves and extracts an article from a URL.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*article.Article, error)
}

// Summarizer scores the sentences of a single document and selects the best
// ones. It is not safe for concurrent use.
type Summarizer struct {
	text   string
	tagger text.Tagger
	opts   Options
	source *article.Article

	sentences []string
	table     Table
	matrix    *tfidf.Matrix
	summary   string
}

// New prepares a summarizer for doc. Line breaks are removed from doc.
func New(doc string, tagger text.Tagger, opts ...Option) (*Summarizer, error) {
	if tagger == nil {
		return nil, &Error{Kind: KindInvalidInput, Op: "new", Err: errors.New("no tagger")}
	}
	return &Summarizer{
		text:   text.Normalize(doc),
		tagger: tagger,
		opts:   buildOptions(opts),
	}, nil
}

// FromArticle picks the tagger for the article's language and prepares a
// summarizer with the URL variant options, followed by opts.
func FromArticle(a *article.Article, registry *text.Registry, opts ...Option) (*Summarizer, error) {
	if a == nil {
		return nil, &Error{Kind: KindInvalidInput, Op: "new", Err: errors.New("no article")}
	}
	tagger, err := registry.Lookup(a.Language)
	if err != nil {
		return nil, &Error{Kind: KindUnsupportedLanguage, Op: "new", Input: a.Language, Err: err}
	}

	s, err := New(a.Text, tagger, append([]Option{URLVariant()}, opts...)...)
	if err != nil {
		return nil, err
	}
	s.source = a
	return s, nil
}

// FromURL validates rawURL, fetches the article behind it and calls FromArticle.
func FromURL(ctx context.Context, rawURL string, fetcher ArticleFetcher, registry *text.Registry, opts ...Option) (*Summarizer, error) {
	if _, err := article.ValidateURL(rawURL); err != nil {
		return nil, &Error{Kind: KindInvalidURL, Op: "fetch", Input: rawURL, Err: err}
	}

	a, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if errors.Is(err, article.ErrInvalidURL) {
			return nil, &Error{Kind: KindInvalidURL, Op: "fetch", Input: rawURL, Err: err}
		}
		return nil, &Error{Kind: KindFetch, Op: "fetch", Input: rawURL, Err: err}
	}
	return FromArticle(a, registry, opts...)
}

// Process scores every sentence. Previous results are discarded first, so a
// failed run leaves the summarizer unprocessed.
func (s *Summarizer) Process(ctx context.Context) error {
	start := time.Now()
	s.table = nil
	s.matrix = nil
	s.summary = ""

	s.sentences = text.SplitSentences(s.text)
	features := make([]string, len(s.sentences))
	for i, sentence := range s.sentences {
		tokens, err := s.tagger.Tag(ctx, sentence)
		if err != nil {
			return &Error{Kind: KindProcessing, Op: "process", Input: sentence, Err: err}
		}
		features[i] = text.Features(tokens, s.opts.FilterStopWords)
	}

	matrix, err := s.opts.Vectorizer.FitTransform(features)
	if err != nil {
		return &Error{Kind: KindProcessing, Op: "process", Err: err}
	}

	scores := make([]float64, matrix.Rows())
	for i := range scores {
		scores[i] = matrix.RowMean(i)
	}
	ranks := rankDescending(scores)

	table := make(Table, len(s.sentences))
	for i, sentence := range s.sentences {
		table[i] = Row{Sentence: sentence, Score: scores[i], Rank: ranks[i]}
	}
	s.table = table
	s.matrix = matrix

	s.opts.Logger.Info("process_completed",
		zap.Int("sentences", len(s.sentences)),
		zap.Int("vocabulary_size", len(matrix.Vocabulary())),
		zap.Bool("filter_stop_words", s.opts.FilterStopWords),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// rankDescending assigns 1..n by descending score; ties keep document order.
func rankDescending(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}

// Summarize keeps the round(fraction*N) best ranked sentences, rounding half
// to even, and joins them with newlines in document order.
func (s *Summarizer) Summarize(fraction float64) (string, error) {
	if s.table == nil {
		return "", &Error{Kind: KindNotProcessed, Op: "summarize"}
	}
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return "", &Error{Kind: KindInvalidInput, Op: "summarize", Err: errors.New("fraction must be in (0, 1]")}
	}

	n := int(math.RoundToEven(fraction * float64(len(s.table))))
	topRank := s.table[0].Rank
	for _, row := range s.table {
		topRank = min(topRank, row.Rank)
	}

	selected := make([]string, 0, n+1)
	for _, row := range s.table {
		if row.Rank <= n || (s.opts.KeepTopSentence && row.Rank == topRank) {
			selected = append(selected, row.Sentence)
		}
	}

	s.summary = strings.Join(selected, "\n")
	return s.summary, nil
}

// TopTerms returns the n highest weighted vocabulary terms; n <= 0 means
// DefaultTopTerms.
func (s *Summarizer) TopTerms(n int) ([]string, error) {
	if s.matrix == nil {
		return nil, &Error{Kind: KindNotProcessed, Op: "top terms"}
	}
	if n <= 0 {
		n = DefaultTopTerms
	}

	var weights []float64
	switch s.opts.TopTerms {
	case TopTermsAggregate:
		weights = s.matrix.ColumnSums()
	default:
		weights = s.matrix.Row(s.matrix.Rows() - 1)
	}

	vocabulary := s.matrix.Vocabulary()
	order := tfidf.ArgsortDesc(weights)
	terms := make([]string, 0, min(n, len(order)))
	for _, idx := range order[:min(n, len(order))] {
		terms = append(terms, vocabulary[idx])
	}
	return terms, nil
}

// CompressionRatio is the length of the last summary as a percentage of the
// document length, both counted in characters.
func (s *Summarizer) CompressionRatio() float64 {
	total := utf8.RuneCountInString(s.text)
	if total == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(s.summary)) / float64(total) * 100
}

func (s *Summarizer) Table() Table {
	return append(Table(nil), s.table...)
}

func (s *Summarizer) Sentences() []string {
	return append([]string(nil), s.sentences...)
}

func (s *Summarizer) Vocabulary() []string {
	if s.matrix == nil {
		return nil
	}
	return s.matrix.Vocabulary()
}

func (s *Summarizer) Text() string {
	return s.text
}

func (s *Summarizer) Processed() bool {
	return s.table != nil
}

// Source returns the fetched article for URL-built summarizers, nil otherwise.
func (s *Summarizer) Source() *article.Article {
	return s.source
}

func (s *Summarizer) Authors() []string {
	if s.source == nil {
		return nil
	}
	return s.source.Authors
}

func (s *Summarizer) ReferenceSummary() string {
	if s.source == nil {
		return ""
	}
	return s.source.Summary
}

func (s *Summarizer) Language() string {
	if s.source == nil {
		return ""
	}
	return s.source.Language
}
