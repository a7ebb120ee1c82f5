// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// DefaultTopJournals is the journal table size the dashboard shows.
const DefaultTopJournals = 10

// GroupCount is one row of a count-by-category table.
type GroupCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Aggregates holds the four count tables the dashboard charts.
type Aggregates struct {
	ByYear        []GroupCount `json:"by_year" yaml:"by_year"`
	TopJournals   []GroupCount `json:"top_journals" yaml:"top_journals"`
	ByAuthorCount []GroupCount `json:"by_author_count" yaml:"by_author_count"`
	BySource      []GroupCount `json:"by_source" yaml:"by_source"`
}

// Aggregate computes every count table over v. A non-positive topJournals
// uses DefaultTopJournals.
func Aggregate(v View, topJournals int) Aggregates {
	if topJournals <= 0 {
		topJournals = DefaultTopJournals
	}
	return Aggregates{
		ByYear:        ByYear(v),
		TopJournals:   TopJournals(v, topJournals),
		ByAuthorCount: ByAuthorCount(v),
		BySource:      BySource(v),
	}
}

// ByYear counts records per publication year, ascending by year.
func ByYear(v View) []GroupCount {
	return countSortedByKey(v, func(r types.Record) int { return r.PublicationYear })
}

// ByAuthorCount counts records per author count, ascending by count.
func ByAuthorCount(v View) []GroupCount {
	return countSortedByKey(v, func(r types.Record) int { return r.AuthorCount })
}

// TopJournals returns the n journals with the most records, descending by
// count. Journals with equal counts keep the order in which they first
// appear in v. A non-positive n returns every journal.
func TopJournals(v View, n int) []GroupCount {
	groups := countByValue(v, func(r types.Record) string { return r.Journal })
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// BySource counts records per source, descending by count with ties in
// first-seen order.
func BySource(v View) []GroupCount {
	return countByValue(v, func(r types.Record) string { return r.Source })
}

// countFirstSeen groups v by key, returning keys in first-seen order.
func countFirstSeen[K comparable](v View, key func(types.Record) K) ([]K, map[K]int) {
	counts := make(map[K]int)
	var order []K
	for i := 0; i < v.Len(); i++ {
		k := key(v.At(i))
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	return order, counts
}

func countByValue(v View, key func(types.Record) string) []GroupCount {
	order, counts := countFirstSeen(v, key)
	groups := make([]GroupCount, len(order))
	for i, k := range order {
		groups[i] = GroupCount{Key: k, Count: counts[k]}
	}
	slices.SortStableFunc(groups, func(a, b GroupCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return groups
}

func countSortedByKey(v View, key func(types.Record) int) []GroupCount {
	order, counts := countFirstSeen(v, key)
	slices.Sort(order)
	groups := make([]GroupCount, len(order))
	for i, k := range order {
		groups[i] = GroupCount{Key: strconv.Itoa(k), Count: counts[k]}
	}
	return groups
}

// Journals returns the distinct journals of v in alphabetical order.
func Journals(v View) []string {
	order, _ := countFirstSeen(v, func(r types.Record) string { return r.Journal })
	slices.Sort(order)
	return order
}

// Sources returns the distinct sources of v in first-seen order.
func Sources(v View) []string {
	order, _ := countFirstSeen(v, func(r types.Record) string { return r.Source })
	return order
}
