package recap

import (
	"go.uber.org/zap"

	"recapper/tfidf"
)

const (
	DefaultFraction = 0.3
	DefaultTopTerms = 5
)

// TopTermsMode selects which weights rank the vocabulary in TopTerms.
type TopTermsMode int

const (
	// TopTermsLastRow ranks terms by the weights of the last sentence only.
	TopTermsLastRow TopTermsMode = iota
	// TopTermsAggregate ranks terms by their weight summed over all sentences.
	TopTermsAggregate
)

func ParseTopTermsMode(s string) (TopTermsMode, bool) {
	switch s {
	case "", "last":
		return TopTermsLastRow, true
	case "aggregate":
		return TopTermsAggregate, true
	}
	return 0, false
}

type Options struct {
	FilterStopWords bool
	KeepTopSentence bool
	TopTerms        TopTermsMode
	Vectorizer      *tfidf.Vectorizer
	Logger          *zap.Logger
}

type Option func(*Options)

// URLVariant drops stop words from the features and always keeps the best
// ranked sentence in the summary.
func URLVariant() Option {
	return func(o *Options) {
		o.FilterStopWords = true
		o.KeepTopSentence = true
	}
}

func WithStopWordFiltering(enabled bool) Option {
	return func(o *Options) { o.FilterStopWords = enabled }
}

func WithTopSentence(enabled bool) Option {
	return func(o *Options) { o.KeepTopSentence = enabled }
}

func WithTopTerms(mode TopTermsMode) Option {
	return func(o *Options) { o.TopTerms = mode }
}

func WithVectorizer(v *tfidf.Vectorizer) Option {
	return func(o *Options) { o.Vectorizer = v }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func buildOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Vectorizer == nil {
		o.Vectorizer = tfidf.NewVectorizer()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
