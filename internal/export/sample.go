// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns a filtered view into a sorted, size-limited sample
// and serializes it as CSV, JSON, YAML, or a standalone SQLite file for
// download.
package export

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pdiddy/paper-dashboard/internal/filter"
)

// Sort columns offered by the sample table.
const (
	SortYear    = "publication_year"
	SortJournal = "journal"
	SortAuthors = "author_count"
)

// DefaultLimit is the sample size used when none is configured.
const DefaultLimit = 25

// SampleSizes lists the sample sizes the dashboard offers.
var SampleSizes = []int{10, 25, 50, 100}

// Row is one exported paper. Its fields are the download columns.
type Row struct {
	Title           string `json:"title" yaml:"title"`
	Authors         string `json:"authors" yaml:"authors"`
	Journal         string `json:"journal" yaml:"journal"`
	PublicationYear int    `json:"publication_year" yaml:"publication_year"`
	Source          string `json:"source_x" yaml:"source_x"`
	AuthorCount     int    `json:"author_count" yaml:"author_count"`
}

// Columns is the header row of every tabular export.
var Columns = []string{"title", "authors", "journal", "publication_year", "source_x", "author_count"}

// SampleOptions controls how a view is ordered and cut.
type SampleOptions struct {
	// SortBy is one of SortYear, SortJournal, SortAuthors. Empty means SortYear.
	SortBy string

	// Ascending sorts smallest first; the default is descending.
	Ascending bool

	// Limit caps the number of rows. Zero or negative keeps every row.
	Limit int
}

// Sample returns the view's rows sorted by opts.SortBy (stable, so equal
// keys keep view order) and cut to opts.Limit.
func Sample(v filter.View, opts SampleOptions) ([]Row, error) {
	compare, err := comparator(opts.SortBy)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, v.Len())
	for i := range rows {
		r := v.At(i)
		rows[i] = Row{
			Title:           r.Title,
			Authors:         r.Authors,
			Journal:         r.Journal,
			PublicationYear: r.PublicationYear,
			Source:          r.Source,
			AuthorCount:     r.AuthorCount,
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if opts.Ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})

	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	return rows, nil
}

func comparator(sortBy string) (func(a, b Row) int, error) {
	switch sortBy {
	case "", SortYear:
		return func(a, b Row) int { return cmp.Compare(a.PublicationYear, b.PublicationYear) }, nil
	case SortJournal:
		return func(a, b Row) int { return cmp.Compare(a.Journal, b.Journal) }, nil
	case SortAuthors:
		return func(a, b Row) int { return cmp.Compare(a.AuthorCount, b.AuthorCount) }, nil
	default:
		return nil, fmt.Errorf("unsupported sort column %q: use %s, %s, or %s", sortBy, SortYear, SortJournal, SortAuthors)
	}
}
