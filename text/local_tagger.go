package text

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/italian"
	"github.com/blevesearch/snowballstem/portuguese"
	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

type stemFunc func(word string) (string, error)

// kljensen/snowball has no Italian or Portuguese stemmer; those come from
// the generated snowballstem packages.
var stemmers = map[string]stemFunc{
	"en": snowballStemmer("english"),
	"es": snowballStemmer("spanish"),
	"fr": snowballStemmer("french"),
	"it": envStemmer(italian.Stem),
	"pt": envStemmer(portuguese.Stem),
}

func snowballStemmer(language string) stemFunc {
	return func(word string) (string, error) {
		return snowball.Stem(word, language, true)
	}
}

func envStemmer(stem func(*snowballstem.Env) bool) stemFunc {
	return func(word string) (string, error) {
		env := snowballstem.NewEnv(word)
		stem(env)
		return env.Current(), nil
	}
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+|[^\s\p{L}\p{N}]`)

// LocalTagger tags sentences in-process, without a model server. English is
// tagged by prose; other languages get a rule-based tagging where every open
// class word is reported as X. Lemmas are snowball stems for en, es, fr, it
// and pt, and the lowercase word elsewhere.
type LocalTagger struct {
	lang string
}

func NewLocalTagger(lang string) *LocalTagger {
	return &LocalTagger{lang: strings.ToLower(lang)}
}

func (t *LocalTagger) Language() string {
	return t.lang
}

func (t *LocalTagger) Tag(ctx context.Context, sentence string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}
	if t.lang == "en" {
		return t.tagEnglish(sentence)
	}
	return t.tagRules(sentence), nil
}

func (t *LocalTagger) tagEnglish(sentence string) ([]Token, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag sentence: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, pt := range proseTokens {
		tokens = append(tokens, Token{
			Text:   pt.Text,
			POS:    pennToUniversal(pt.Tag),
			Lemma:  t.lemma(pt.Text),
			IsStop: IsStopWord(t.lang, pt.Text),
		})
	}
	return tokens, nil
}

func (t *LocalTagger) tagRules(sentence string) []Token {
	words := wordPattern.FindAllString(sentence, -1)
	tokens := make([]Token, 0, len(words))
	first := true
	for _, w := range words {
		tok := Token{Text: w, Lemma: t.lemma(w), IsStop: IsStopWord(t.lang, w)}
		r := []rune(w)
		switch {
		case !unicode.IsLetter(r[0]) && !unicode.IsNumber(r[0]):
			tok.POS = POSPunct
		case isNumber(w):
			tok.POS = POSNum
		case tok.IsStop:
			tok.POS = POSDet
		case !first && unicode.IsUpper(r[0]):
			tok.POS = POSPropn
		default:
			tok.POS = POSX
		}
		if tok.POS != POSPunct {
			first = false
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (t *LocalTagger) lemma(word string) string {
	lower := strings.ToLower(word)
	stem, ok := stemmers[t.lang]
	if !ok {
		return lower
	}
	stemmed, err := stem(lower)
	if err != nil || stemmed == "" {
		return lower
	}
	return stemmed
}

func isNumber(w string) bool {
	for _, r := range w {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// pennToUniversal maps Penn Treebank tags to coarse universal tags.
func pennToUniversal(tag string) string {
	switch {
	case tag == "NN" || tag == "NNS":
		return POSNoun
	case tag == "NNP" || tag == "NNPS":
		return POSPropn
	case tag == "CD":
		return POSNum
	case tag == "MD":
		return POSAux
	case strings.HasPrefix(tag, "VB"):
		return POSVerb
	case strings.HasPrefix(tag, "JJ"):
		return POSAdj
	case strings.HasPrefix(tag, "RB") || tag == "WRB":
		return POSAdv
	case tag == "IN":
		return POSAdp
	case tag == "DT" || tag == "PDT" || tag == "WDT":
		return POSDet
	case strings.HasPrefix(tag, "PRP") || strings.HasPrefix(tag, "WP") || tag == "EX":
		return POSPron
	case tag == "CC":
		return POSCConj
	case tag == "UH":
		return POSIntj
	case tag == "RP" || tag == "TO" || tag == "POS":
		return POSPart
	case tag == "SYM" || tag == "$" || tag == "#":
		return POSSym
	case tag == "FW" || tag == "LS":
		return POSX
	default:
		return POSPunct
	}
}
