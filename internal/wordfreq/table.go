// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordfreq

import (
	"cmp"
	"maps"
	"slices"
)

// Term is one row of a ranked frequency table.
type Term struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Table maps tokens to occurrence counts and remembers the order in which
// each token was first encountered, which breaks ranking ties.
type Table struct {
	counts map[string]int
	order  []string
}

func newTable() Table {
	return Table{counts: make(map[string]int)}
}

func (t *Table) add(word string) {
	if _, seen := t.counts[word]; !seen {
		t.order = append(t.order, word)
	}
	t.counts[word]++
}

// Len returns the number of distinct tokens.
func (t Table) Len() int { return len(t.order) }

// Count returns the occurrences of word, or 0.
func (t Table) Count(word string) int { return t.counts[word] }

// Counts returns a copy of the token counts.
func (t Table) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	maps.Copy(out, t.counts)
	return out
}

// Top returns the k most frequent terms, descending by count. Terms with
// equal counts keep first-encountered order. A non-positive k returns every
// term.
func (t Table) Top(k int) []Term {
	terms := make([]Term, len(t.order))
	for i, w := range t.order {
		terms[i] = Term{Word: w, Count: t.counts[w]}
	}
	slices.SortStableFunc(terms, func(a, b Term) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if k > 0 && len(terms) > k {
		terms = terms[:k]
	}
	return terms
}
