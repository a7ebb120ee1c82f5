// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordfreq counts title terms across a record set. Titles are
// lowercased and split into maximal runs of ASCII letters, so punctuation,
// digits, and hyphens all separate tokens ("SARS-CoV-2" yields "sars" and
// "cov"). Tokens of two letters or fewer and stop words are dropped.
package wordfreq

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// DefaultTop is the number of terms the dashboard charts.
const DefaultTop = 15

var tokenRe = regexp.MustCompile(`[a-z]+`)

var stopWords = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"a", "an", "is", "are", "was", "were", "been", "be", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might",
}

// Analyzer tokenizes titles and counts surviving terms.
type Analyzer struct {
	stopWords map[string]bool
	minLength int
	stem      bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStemming folds each surviving token through the Snowball English
// stemmer, so "patients" and "patient" count as one term.
func WithStemming() Option {
	return func(a *Analyzer) { a.stem = true }
}

// New returns an Analyzer with the fixed stop-word set.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		stopWords: make(map[string]bool, len(stopWords)),
		minLength: 3,
	}
	for _, w := range stopWords {
		a.stopWords[w] = true
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tokenize returns the counted tokens of text in order of appearance.
func (a *Analyzer) Tokenize(text string) []string {
	words := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < a.minLength || a.stopWords[w] {
			continue
		}
		if a.stem {
			w = stem(w)
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// Analyze counts title tokens over the records whose publication year lies
// in window. The window is applied independently of any filter that
// produced records. An empty input yields an empty table.
func (a *Analyzer) Analyze(records []types.Record, window types.Range) Table {
	t := newTable()
	for _, r := range records {
		if !window.Contains(r.PublicationYear) {
			continue
		}
		for _, tok := range a.Tokenize(r.Title) {
			t.add(tok)
		}
	}
	return t
}

var defaultAnalyzer = New()

// Analyze counts title tokens with the default analyzer.
func Analyze(records []types.Record, window types.Range) Table {
	return defaultAnalyzer.Analyze(records, window)
}
