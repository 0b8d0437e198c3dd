package text

import (
	"context"
	"errors"
)

// Coarse universal part-of-speech tags.
const (
	POSAdj   = "ADJ"
	POSAdp   = "ADP"
	POSAdv   = "ADV"
	POSAux   = "AUX"
	POSCConj = "CCONJ"
	POSDet   = "DET"
	POSIntj  = "INTJ"
	POSNoun  = "NOUN"
	POSNum   = "NUM"
	POSPart  = "PART"
	POSPron  = "PRON"
	POSPropn = "PROPN"
	POSPunct = "PUNCT"
	POSSConj = "SCONJ"
	POSSym   = "SYM"
	POSVerb  = "VERB"
	POSX     = "X"
)

var ErrUnsupportedLanguage = errors.New("language not supported")

// Token is a single tagged word of a sentence.
type Token struct {
	Text   string `json:"text"`
	POS    string `json:"pos"`
	Lemma  string `json:"lemma"`
	IsStop bool   `json:"is_stop"`
}

// Tagger turns a sentence into tagged, lemmatized tokens.
type Tagger interface {
	Tag(ctx context.Context, sentence string) ([]Token, error)
}

var contentTags = map[string]bool{
	POSNoun:  true,
	POSNum:   true,
	POSPropn: true,
	POSVerb:  true,
	POSX:     true,
}

// IsContent reports whether the token carries one of the tags that feed scoring.
func (t Token) IsContent() bool {
	return contentTags[t.POS]
}
