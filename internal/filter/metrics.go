// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import "github.com/pdiddy/paper-dashboard/pkg/types"

// Summary holds the headline metrics shown above the charts.
type Summary struct {
	// TotalPapers is the number of records in the view.
	TotalPapers int `json:"total_papers" yaml:"total_papers"`

	// CorpusShare is TotalPapers as a fraction of the full corpus.
	CorpusShare float64 `json:"corpus_share" yaml:"corpus_share"`

	// UniqueJournals is the number of distinct journals in the view.
	UniqueJournals int `json:"unique_journals" yaml:"unique_journals"`

	// JournalShare is UniqueJournals as a fraction of the full corpus's journals.
	JournalShare float64 `json:"journal_share" yaml:"journal_share"`

	// MeanAuthors is the average author count (0 for an empty view).
	MeanAuthors float64 `json:"mean_authors" yaml:"mean_authors"`

	// AuthorRange is the smallest and largest author count in the view.
	AuthorRange types.Range `json:"author_range" yaml:"author_range"`

	// YearSpan is the number of calendar years from the earliest to the
	// latest publication year, inclusive.
	YearSpan int `json:"year_span" yaml:"year_span"`

	// YearRange is the earliest and latest publication year in the view.
	YearRange types.Range `json:"year_range" yaml:"year_range"`

	// MeanAbstractLength is the average abstract length (0 for an empty view).
	MeanAbstractLength float64 `json:"mean_abstract_length" yaml:"mean_abstract_length"`
}

// Summarize computes the headline metrics of v relative to full. Means,
// ranges, and the year span are zero for an empty view.
func Summarize(v, full View) Summary {
	s := Summary{
		TotalPapers:    v.Len(),
		UniqueJournals: distinctJournals(v),
	}
	if full.Len() > 0 {
		s.CorpusShare = float64(v.Len()) / float64(full.Len())
	}
	if all := distinctJournals(full); all > 0 {
		s.JournalShare = float64(s.UniqueJournals) / float64(all)
	}
	if v.Len() == 0 {
		return s
	}

	first := v.At(0)
	s.AuthorRange = types.Range{Lo: first.AuthorCount, Hi: first.AuthorCount}
	s.YearRange = types.Range{Lo: first.PublicationYear, Hi: first.PublicationYear}

	var authors, abstract int
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		authors += r.AuthorCount
		abstract += r.AbstractLength
		s.AuthorRange.Lo = min(s.AuthorRange.Lo, r.AuthorCount)
		s.AuthorRange.Hi = max(s.AuthorRange.Hi, r.AuthorCount)
		s.YearRange.Lo = min(s.YearRange.Lo, r.PublicationYear)
		s.YearRange.Hi = max(s.YearRange.Hi, r.PublicationYear)
	}
	s.YearSpan = s.YearRange.Hi - s.YearRange.Lo + 1

	n := float64(v.Len())
	s.MeanAuthors = float64(authors) / n
	s.MeanAbstractLength = float64(abstract) / n
	return s
}

func distinctJournals(v View) int {
	seen := make(map[string]struct{})
	for i := 0; i < v.Len(); i++ {
		seen[v.At(i).Journal] = struct{}{}
	}
	return len(seen)
}
