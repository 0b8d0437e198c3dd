package recap

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"recapper/article"
	"recapper/text"
	"recapper/tfidf"
)

// wordTagger tags every word as a noun, except for a few function words.
type wordTagger struct {
	err error
}

var closedClass = map[string]string{
	"and": text.POSCConj,
	"the": text.POSDet,
	"of":  text.POSAdp,
}

var stop = map[string]bool{"is": true, "very": true, "the": true}

func (w wordTagger) Tag(ctx context.Context, sentence string) ([]text.Token, error) {
	if w.err != nil {
		return nil, w.err
	}
	var tokens []text.Token
	for _, word := range strings.Fields(sentence) {
		lower := strings.ToLower(word)
		pos := text.POSNoun
		if tag, ok := closedClass[lower]; ok {
			pos = tag
		}
		tokens = append(tokens, text.Token{Text: word, POS: pos, Lemma: lower, IsStop: stop[lower]})
	}
	return tokens, nil
}

func processed(t *testing.T, doc string, opts ...Option) *Summarizer {
	t.Helper()
	s, err := New(doc, wordTagger{}, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Process(context.Background()); err != nil {
		t.Fatalf("unexpected process error: %v", err)
	}
	return s
}

func TestSummarizeExample(t *testing.T) {
	s := processed(t, "Cats sleep. Dogs run fast. Birds fly high and far.")

	summary, err := s.Summarize(DefaultFraction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != " Birds fly high and far" {
		t.Errorf("unexpected summary: %q", summary)
	}

	gotRanks := []int{}
	for _, row := range s.Table() {
		gotRanks = append(gotRanks, row.Rank)
	}
	if !reflect.DeepEqual(gotRanks, []int{3, 2, 1, 4}) {
		t.Errorf("unexpected ranks: %v", gotRanks)
	}

	want := 2.0 / 9.0
	if got := s.Table()[2].Score; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected score %f, got %f", want, got)
	}
}

func TestProcessInvariants(t *testing.T) {
	docs := []string{
		"One sentence only",
		"First. Second one here. Third with more words in it.",
		".Leading period. And trailing.",
		"Same words. Same words. Same words.",
		"Numbers 2024 and 1999. Rome and Paris...",
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			s := processed(t, doc)
			table := s.Table()

			if len(table) != len(strings.Split(doc, ".")) {
				t.Fatalf("expected %d rows, got %d", len(strings.Split(doc, ".")), len(table))
			}

			seen := make(map[int]bool)
			for _, row := range table {
				if row.Rank < 1 || row.Rank > len(table) || seen[row.Rank] {
					t.Fatalf("ranks are not a permutation of 1..%d: %+v", len(table), table)
				}
				seen[row.Rank] = true
			}

			all, err := s.Summarize(1.0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if all != strings.Join(strings.Split(doc, "."), "\n") {
				t.Errorf("expected full document in order, got %q", all)
			}
		})
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	s := processed(t, "Cats sleep. Dogs run fast. Birds fly high and far.")
	first := s.Table()

	if err := s.Process(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, s.Table()) {
		t.Errorf("expected identical tables, got %+v and %+v", first, s.Table())
	}
	if len(s.Sentences()) != 4 {
		t.Errorf("expected sentences to be replaced, got %d", len(s.Sentences()))
	}
}

func TestRankTiesKeepDocumentOrder(t *testing.T) {
	s := processed(t, "aa bb. cc dd. ee ff")
	for i, row := range s.Table() {
		if row.Rank != i+1 {
			t.Errorf("row %d: expected rank %d, got %d", i, i+1, row.Rank)
		}
	}
}

func TestSummarizeCount(t *testing.T) {
	doc := "aa one. bb two two. cc three three three. dd four four four four. ee five five five five five"

	testCases := []struct {
		fraction float64
		want     int
	}{
		{0.2, 1},
		{0.3, 2},
		{0.5, 2}, // 2.5 rounds to even
		{0.9, 4}, // 4.5 rounds to even
		{1.0, 5},
	}

	for _, tc := range testCases {
		s := processed(t, doc)
		summary, err := s.Summarize(tc.fraction)
		if err != nil {
			t.Fatalf("fraction %v: unexpected error: %v", tc.fraction, err)
		}
		if got := len(strings.Split(summary, "\n")); got != tc.want {
			t.Errorf("fraction %v: expected %d sentences, got %d (%q)", tc.fraction, tc.want, got, summary)
		}
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	s := processed(t, "aa one. bb two two. cc three three three. dd four four four four. ee five five five five five")
	summary, err := s.Summarize(0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(summary, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 sentences, got %q", summary)
	}
	if strings.Index(s.Text(), lines[0]) > strings.Index(s.Text(), lines[1]) {
		t.Errorf("summary is not in document order: %q", summary)
	}
}

func TestKeepTopSentence(t *testing.T) {
	doc := "Cats sleep. Dogs run fast. Birds fly high and far."

	plain := processed(t, doc)
	summary, err := plain.Summarize(0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "" {
		t.Errorf("expected empty summary without forced top sentence, got %q", summary)
	}

	forced := processed(t, doc, URLVariant())
	summary, err = forced.Summarize(0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != " Birds fly high and far" {
		t.Errorf("expected top sentence, got %q", summary)
	}

	summary, _ = forced.Summarize(DefaultFraction)
	if summary != " Birds fly high and far" {
		t.Errorf("expected forced inclusion not to duplicate, got %q", summary)
	}
}

func TestStopWordFiltering(t *testing.T) {
	doc := "The sky is very blue. Grass is green"

	withStops := processed(t, doc)
	if !contains(withStops.Vocabulary(), "very") {
		t.Errorf("expected stop words to be scored without filtering: %v", withStops.Vocabulary())
	}
	if contains(withStops.Vocabulary(), "the") {
		t.Errorf("expected determiners to be dropped by tag: %v", withStops.Vocabulary())
	}

	filtered := processed(t, doc, WithStopWordFiltering(true))
	for _, w := range []string{"is", "very"} {
		if contains(filtered.Vocabulary(), w) {
			t.Errorf("expected %q to be filtered: %v", w, filtered.Vocabulary())
		}
	}
}

func TestTopTerms(t *testing.T) {
	doc := "Cats sleep. Dogs run fast"

	last := processed(t, doc)
	terms, err := last.TopTerms(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(terms, []string{"dogs", "fast", "run"}) {
		t.Errorf("unexpected last-row terms: %v", terms)
	}

	aggregate := processed(t, doc, WithTopTerms(TopTermsAggregate))
	terms, err = aggregate.TopTerms(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(terms, []string{"cats", "sleep", "dogs"}) {
		t.Errorf("unexpected aggregate terms: %v", terms)
	}

	terms, _ = last.TopTerms(0)
	if len(terms) != 5 {
		t.Errorf("expected default of %d terms, got %v", DefaultTopTerms, terms)
	}
	terms, _ = last.TopTerms(50)
	if len(terms) != 5 {
		t.Errorf("expected terms capped at vocabulary size, got %v", terms)
	}
}

func TestEmptyDocument(t *testing.T) {
	s, err := New("", wordTagger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = s.Process(context.Background())
	if KindOf(err) != KindProcessing || !errors.Is(err, tfidf.ErrEmptyVocabulary) {
		t.Fatalf("expected processing error on empty vocabulary, got %v", err)
	}
	if got := s.Sentences(); len(got) != 1 || got[0] != "" {
		t.Errorf("expected one empty sentence, got %q", got)
	}

	if _, err := s.Summarize(DefaultFraction); !errors.Is(err, ErrNotProcessed) {
		t.Errorf("expected ErrNotProcessed, got %v", err)
	}
	if _, err := s.TopTerms(5); !errors.Is(err, ErrNotProcessed) {
		t.Errorf("expected ErrNotProcessed, got %v", err)
	}
}

func TestSummarizeErrors(t *testing.T) {
	s, _ := New("Cats sleep.", wordTagger{})
	if _, err := s.Summarize(0.5); KindOf(err) != KindNotProcessed {
		t.Errorf("expected KindNotProcessed, got %v", err)
	}

	s = processed(t, "Cats sleep.")
	for _, f := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := s.Summarize(f); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("fraction %v: expected ErrInvalidInput, got %v", f, err)
		}
	}
}

func TestProcessTaggerFailure(t *testing.T) {
	s := processed(t, "Cats sleep.")
	s.tagger = wordTagger{err: errors.New("model unavailable")}

	err := s.Process(context.Background())
	if !errors.Is(err, ErrProcessing) || !strings.Contains(err.Error(), "model unavailable") {
		t.Fatalf("expected processing error, got %v", err)
	}
	if s.Processed() {
		t.Errorf("expected failed run to clear previous results")
	}
}

func TestNewRequiresTagger(t *testing.T) {
	if _, err := New("text", nil); KindOf(err) != KindInvalidInput {
		t.Errorf("expected KindInvalidInput, got %v", err)
	}
}

func TestNewStripsNewlines(t *testing.T) {
	s := processed(t, "Cats\nsleep.\nDogs run")
	if got := s.Sentences(); got[0] != "Catssleep" || got[1] != "Dogs run" {
		t.Errorf("unexpected sentences: %q", got)
	}
}

func TestNewStripsCRLF(t *testing.T) {
	s := processed(t, "Cats sleep.\r\nDogs run fast.")
	for _, sentence := range s.Sentences() {
		if strings.ContainsAny(sentence, "\r\n") {
			t.Errorf("sentence %q still contains a line break", sentence)
		}
	}
	if got := s.Sentences()[1]; got != "Dogs run fast" {
		t.Errorf("unexpected second sentence: %q", got)
	}
}

func TestCompressionRatio(t *testing.T) {
	s := processed(t, "aaaa bbbb. cc")
	if s.CompressionRatio() != 0 {
		t.Errorf("expected zero ratio before summarizing")
	}
	if _, err := s.Summarize(0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "aaaa bbbb" is 9 of 13 characters.
	want := 9.0 / 13.0 * 100
	if math.Abs(s.CompressionRatio()-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, s.CompressionRatio())
	}
}

func TestInfo(t *testing.T) {
	s := processed(t, "Cats sleep. Dogs run fast. Birds fly high and far.")
	if _, err := s.Summarize(DefaultFraction); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := s.Info(2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.TopTerms) != 2 || report.Table != nil || report.Summary == "" {
		t.Errorf("unexpected report: %+v", report)
	}

	report, _ = s.Info(2, true)
	if len(report.Table) != 4 {
		t.Errorf("expected table in report, got %d rows", len(report.Table))
	}
}

type stubFetcher struct {
	article *article.Article
	err     error
}

func (f stubFetcher) Fetch(ctx context.Context, url string) (*article.Article, error) {
	return f.article, f.err
}

func TestFromURL(t *testing.T) {
	registry := text.NewRegistry()
	registry.Register("en", wordTagger{})

	a := &article.Article{
		URL:      "https://example.com/a",
		Text:     "Cats sleep. Dogs run fast. Birds fly high and far.",
		Language: "en",
		Authors:  []string{"Jane Doe"},
		Summary:  "Animals do things.",
	}

	s, err := FromURL(context.Background(), a.URL, stubFetcher{article: a}, registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s.Authors(), a.Authors) || s.ReferenceSummary() != a.Summary || s.Language() != "en" {
		t.Errorf("expected article metadata to be exposed")
	}
	if !s.opts.FilterStopWords || !s.opts.KeepTopSentence {
		t.Errorf("expected URL variant options")
	}
	if err := s.Process(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromURLErrors(t *testing.T) {
	registry := text.NewRegistry()
	registry.Register("en", wordTagger{})

	testCases := []struct {
		name    string
		url     string
		fetcher stubFetcher
		kind    Kind
	}{
		{"MalformedURL", "notaurl", stubFetcher{}, KindInvalidURL},
		{"FetchFailed", "https://example.com/a", stubFetcher{err: &article.FetchError{URL: "https://example.com/a", Err: article.ErrUnsupportedArticle}}, KindFetch},
		{"Unsupported", "https://example.com/de", stubFetcher{article: &article.Article{Text: "Hallo Welt.", Language: "de"}}, KindUnsupportedLanguage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromURL(context.Background(), tc.url, tc.fetcher, registry)
			if KindOf(err) != tc.kind {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
		})
	}

	_, err := FromArticle(&article.Article{Language: "de"}, registry)
	if !errors.Is(err, ErrUnsupportedLanguage) || !errors.Is(err, text.ErrUnsupportedLanguage) {
		t.Errorf("expected unsupported language sentinels, got %v", err)
	}
	if !strings.Contains(err.Error(), `"de"`) {
		t.Errorf("expected error to name the language, got %q", err.Error())
	}
}

func TestParseTopTermsMode(t *testing.T) {
	if mode, ok := ParseTopTermsMode("aggregate"); !ok || mode != TopTermsAggregate {
		t.Errorf("expected aggregate mode")
	}
	if mode, ok := ParseTopTermsMode(""); !ok || mode != TopTermsLastRow {
		t.Errorf("expected last-row default")
	}
	if _, ok := ParseTopTermsMode("sum"); ok {
		t.Errorf("expected unknown mode to be rejected")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
