// Package tfidf turns an ordered list of documents into a TF-IDF weighted
// document-term matrix.
//
// Weighting follows the usual smoothed scheme: raw term counts, an inverse
// document frequency of ln((1+n)/(1+df))+1 and an L2 normalisation of every
// row. The vocabulary is sorted lexicographically, so column order is stable
// across runs on the same input.
package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain no terms")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type Vectorizer struct {
	// StripAccents removes combining marks after a compatibility decomposition.
	StripAccents bool
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{StripAccents: true}
}

// Tokenize applies the vectorizer's preprocessing and returns the terms of doc.
func (v *Vectorizer) Tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	if v.StripAccents {
		doc = stripAccents(doc)
	}
	return tokenPattern.FindAllString(doc, -1)
}

// FitTransform learns the vocabulary of docs and returns their TF-IDF matrix.
func (v *Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range v.Tokenize(doc) {
			if counts[i][term] == 0 {
				df[term]++
			}
			counts[i][term]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	n := float64(len(docs))
	idf := make([]float64, len(vocabulary))
	for j, term := range vocabulary {
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	values := make([][]float64, len(docs))
	for i := range docs {
		row := make([]float64, len(vocabulary))
		var norm2 float64
		for j, term := range vocabulary {
			if c := counts[i][term]; c > 0 {
				row[j] = float64(c) * idf[j]
				norm2 += row[j] * row[j]
			}
		}
		if norm2 > 0 {
			l2 := math.Sqrt(norm2)
			for j := range row {
				row[j] /= l2
			}
		}
		values[i] = row
	}

	return &Matrix{vocabulary: vocabulary, values: values}, nil
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
