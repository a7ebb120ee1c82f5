// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus generates the synthetic research-paper corpus and supplies
// it to the rest of the dashboard. Generation is deterministic per seed; the
// Memo provider generates each seed's corpus once and hands out the same
// immutable slice for the life of the process.
package corpus

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Generate returns Size records drawn from a pseudo-random stream seeded
// with seed. Each record consumes the stream in a fixed order (year, title
// terms, journal weights and journal, source, author count, abstract length,
// month, day), so the same seed always reproduces the same corpus.
func Generate(seed int64) []types.Record {
	rng := newRand(seed)
	records := make([]types.Record, Size)
	for i := range records {
		records[i] = nextRecord(rng)
	}
	return records
}

func newRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func nextRecord(rng *rand.Rand) types.Record {
	year := Choose(rng, years, yearWeights)

	var terms [4]string
	for i, list := range titleTerms {
		terms[i] = Uniform(rng, list)
	}
	title := fmt.Sprintf("%s %s: %s %s", terms[0], terms[1], terms[2], terms[3])

	// Journal weights are redrawn for every record, so no journal holds a
	// stable popularity across the corpus.
	journal := Choose(rng, journals, Dirichlet(rng, len(journals)))

	source := Choose(rng, sources, sourceWeights)

	authorCount := Choose(rng, authorCounts, authorWeights)

	abstractLength := max(abstractMin, int(abstractMean+abstractSD*rng.NormFloat64()))

	month := rng.IntN(12) + 1
	day := rng.IntN(maxDay) + 1

	return types.Record{
		Title:           title,
		Authors:         authorList(authorCount),
		Journal:         journal,
		PublishTime:     fmt.Sprintf("%d-%02d-%02d", year, month, day),
		Source:          source,
		AbstractLength:  abstractLength,
		PublicationYear: year,
		AuthorCount:     authorCount,
	}
}

// authorList builds "Author 1; Author 2; ...; Author n".
func authorList(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Author %d", i+1)
	}
	return strings.Join(names, "; ")
}

// CountAuthors returns the number of "; "-separated entries in authors.
// An empty string has no authors.
func CountAuthors(authors string) int {
	if strings.TrimSpace(authors) == "" {
		return 0
	}
	return len(strings.Split(authors, ";"))
}
