package text

import (
	"fmt"
	"sort"
	"strings"
)

// SupportedLanguages is the set of languages a model is configured for by default.
var SupportedLanguages = []string{"en", "it", "fr", "es", "pt"}

// Registry maps language codes to taggers.
type Registry struct {
	taggers map[string]Tagger
}

func NewRegistry() *Registry {
	return &Registry{taggers: make(map[string]Tagger)}
}

// NewLocalRegistry registers a LocalTagger for every supported language.
func NewLocalRegistry() *Registry {
	r := NewRegistry()
	for _, lang := range SupportedLanguages {
		r.Register(lang, NewLocalTagger(lang))
	}
	return r
}

func (r *Registry) Register(lang string, tagger Tagger) {
	r.taggers[normalizeLang(lang)] = tagger
}

// Lookup returns the tagger for lang. Region suffixes are ignored, so "pt-BR"
// resolves to "pt".
func (r *Registry) Lookup(lang string) (Tagger, error) {
	tagger, ok := r.taggers[normalizeLang(lang)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return tagger, nil
}

func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.taggers))
	for lang := range r.taggers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
