package text

import (
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// Normalize removes line breaks (LF, CRLF and bare CR) from a document. Lines
// are joined without a separator.
func Normalize(doc string) string {
	return lineBreaks.Replace(doc)
}

// SplitSentences splits on every literal '.', keeping empty leading and
// trailing segments so that len(result) == strings.Count(doc, ".")+1.
func SplitSentences(doc string) []string {
	return strings.Split(doc, ".")
}

// Features joins the lowercase lemmas of the content tokens of a sentence.
func Features(tokens []Token, filterStopWords bool) string {
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsContent() {
			continue
		}
		if filterStopWords && tok.IsStop {
			continue
		}
		lemma := strings.ToLower(strings.TrimSpace(tok.Lemma))
		if lemma == "" {
			continue
		}
		words = append(words, lemma)
	}
	return strings.Join(words, " ")
}
