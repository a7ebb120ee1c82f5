// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-dashboard/internal/corpus"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// --- fixtures ---

func rec(title, journal, source string, year, authors int) types.Record {
	return types.Record{
		Title:           title,
		Journal:         journal,
		Source:          source,
		PublicationYear: year,
		AuthorCount:     authors,
		AbstractLength:  1000 + authors*100,
	}
}

func fixture() []types.Record {
	return []types.Record{
		rec("p0", "Nature", "PMC", 2019, 1),
		rec("p1", "Cell", "WHO", 2020, 3),
		rec("p2", "Nature", "arXiv", 2021, 5),
		rec("p3", "Science", "PMC", 2022, 2),
		rec("p4", "Cell", "PMC", 2023, 8),
		rec("p5", "Nature", "medRxiv", 2024, 4),
	}
}

func titles(v View) []string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = v.At(i).Title
	}
	return out
}

func criteria(ylo, yhi, alo, ahi int, source string, journals ...string) Criteria {
	return Criteria{
		Years:    types.Range{Lo: ylo, Hi: yhi},
		Authors:  types.Range{Lo: alo, Hi: ahi},
		Source:   source,
		Journals: journals,
	}
}

// --- Apply ---

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"unconstrained", Unconstrained(), []string{"p0", "p1", "p2", "p3", "p4", "p5"}},
		{"year window", criteria(2020, 2022, 1, 8, types.SourceAll), []string{"p1", "p2", "p3"}},
		{"single year", criteria(2023, 2023, 1, 8, ""), []string{"p4"}},
		{"author window", criteria(2019, 2024, 3, 5, types.SourceAll), []string{"p1", "p2", "p5"}},
		{"journal set", criteria(2019, 2024, 1, 8, types.SourceAll, "Cell", "Science"), []string{"p1", "p3", "p4"}},
		{"source", criteria(2019, 2024, 1, 8, "PMC"), []string{"p0", "p3", "p4"}},
		{"all predicates", criteria(2019, 2023, 1, 8, "PMC", "Nature", "Cell"), []string{"p0", "p4"}},
		{"journal match is exact", criteria(2019, 2024, 1, 8, types.SourceAll, "nature"), []string{}},
		{"inverted year range", criteria(2025, 2019, 1, 8, types.SourceAll), []string{}},
		{"inverted author range", criteria(2019, 2024, 8, 1, types.SourceAll), []string{}},
		{"out of domain", criteria(1990, 2000, 1, 8, types.SourceAll), []string{}},
		{"unknown source", criteria(2019, 2024, 1, 8, "Elsevier"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Records(fixture(), tt.c)
			if diff := cmp.Diff(tt.want, titles(got)); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyInvertedRangeOnCorpus(t *testing.T) {
	v := Records(corpus.Generate(42), criteria(2025, 2019, 1, 8, types.SourceAll))
	assert.Equal(t, 0, v.Len())
	assert.NotNil(t, v.Records())
	assert.Empty(t, v.Records())
}

func TestApplyProperties(t *testing.T) {
	records := corpus.Generate(42)
	cases := []Criteria{
		criteria(2020, 2023, 1, 8, types.SourceAll),
		criteria(2021, 2021, 2, 4, "PMC"),
		criteria(2019, 2024, 1, 8, "WHO", "Nature", "Cell", "eLife"),
		criteria(2022, 2024, 6, 8, "arXiv", "JAMA"),
	}
	for _, c := range cases {
		v := Records(records, c)
		require.LessOrEqual(t, v.Len(), len(records))

		// Subsequence of the parent with every record satisfying the predicate.
		prev := -1
		for i, idx := range v.Indices() {
			assert.Greater(t, idx, prev, "order must be preserved")
			prev = idx
			assert.Equal(t, records[idx], v.At(i))
			assert.True(t, c.Match(v.At(i)))
		}

		// Nothing that satisfies the predicate is dropped.
		want := 0
		for _, r := range records {
			if c.Match(r) {
				want++
			}
		}
		assert.Equal(t, want, v.Len())

		// Idempotence.
		again := Apply(v, c)
		assert.Equal(t, v.Indices(), again.Indices())
		assert.Equal(t, v.Records(), again.Records())
	}
}

func TestIsUnconstrained(t *testing.T) {
	assert.True(t, Unconstrained().IsUnconstrained())

	c := Unconstrained()
	c.Source = ""
	assert.True(t, c.IsUnconstrained())

	c = Unconstrained()
	c.Journals = []string{"Cell"}
	assert.False(t, c.IsUnconstrained())

	assert.False(t, criteria(2019, 2024, 1, 8, types.SourceAll).IsUnconstrained())
}

func TestViewRecordsCopies(t *testing.T) {
	records := fixture()
	v := Full(records)
	out := v.Records()
	out[0].Title = "changed"
	assert.Equal(t, "p0", records[0].Title)
}

// --- aggregates ---

func TestTopJournalsTiesKeepFirstSeenOrder(t *testing.T) {
	var records []types.Record
	add := func(journal string, n int) {
		for range n {
			records = append(records, rec("x", journal, "PMC", 2020, 1))
		}
	}
	add("Science", 1)
	add("Nature", 5)
	add("Cell", 5)
	add("Science", 2)

	got := TopJournals(Full(records), 10)
	want := []GroupCount{{"Nature", 5}, {"Cell", 5}, {"Science", 3}}
	assert.Equal(t, want, got)
}

func TestTopJournalsInterleavedTies(t *testing.T) {
	records := []types.Record{
		rec("a", "Cell", "PMC", 2020, 1),
		rec("b", "Nature", "PMC", 2020, 1),
		rec("c", "Nature", "PMC", 2020, 1),
		rec("d", "Cell", "PMC", 2020, 1),
	}
	got := TopJournals(Full(records), 0)
	assert.Equal(t, []GroupCount{{"Cell", 2}, {"Nature", 2}}, got)
}

func TestTopJournalsLimit(t *testing.T) {
	v := Full(corpus.Generate(42))
	got := TopJournals(v, 10)
	require.Len(t, got, 10)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
	}
	assert.Len(t, TopJournals(v, 0), 18)
}

func TestByYearAndAuthorCountAscending(t *testing.T) {
	records := []types.Record{
		rec("a", "Cell", "PMC", 2023, 4),
		rec("b", "Cell", "PMC", 2019, 2),
		rec("c", "Cell", "PMC", 2023, 2),
		rec("d", "Cell", "PMC", 2021, 8),
	}
	v := Full(records)
	assert.Equal(t, []GroupCount{{"2019", 1}, {"2021", 1}, {"2023", 2}}, ByYear(v))
	assert.Equal(t, []GroupCount{{"2", 2}, {"4", 1}, {"8", 1}}, ByAuthorCount(v))
}

func TestBySourceDescending(t *testing.T) {
	got := BySource(Full(fixture()))
	want := []GroupCount{{"PMC", 3}, {"WHO", 1}, {"arXiv", 1}, {"medRxiv", 1}}
	assert.Equal(t, want, got)
}

func TestAggregateEmptyView(t *testing.T) {
	v := Records(fixture(), criteria(2030, 2031, 1, 8, types.SourceAll))
	agg := Aggregate(v, 0)
	assert.Empty(t, agg.ByYear)
	assert.Empty(t, agg.TopJournals)
	assert.Empty(t, agg.ByAuthorCount)
	assert.Empty(t, agg.BySource)
}

func TestAggregateTotalsMatchView(t *testing.T) {
	v := Records(corpus.Generate(42), criteria(2020, 2023, 1, 8, types.SourceAll))
	agg := Aggregate(v, 0)
	for name, table := range map[string][]GroupCount{
		"year":    agg.ByYear,
		"authors": agg.ByAuthorCount,
		"source":  agg.BySource,
	} {
		total := 0
		for _, g := range table {
			total += g.Count
		}
		assert.Equal(t, v.Len(), total, name)
	}
	assert.Len(t, agg.TopJournals, DefaultTopJournals)
}

func TestJournalsAndSources(t *testing.T) {
	v := Full(fixture())
	assert.Equal(t, []string{"Cell", "Nature", "Science"}, Journals(v))
	assert.Equal(t, []string{"PMC", "WHO", "arXiv", "medRxiv"}, Sources(v))
}

// --- summary ---

func TestSummarize(t *testing.T) {
	full := Full(fixture())
	v := Records(fixture(), criteria(2019, 2024, 1, 8, "PMC"))

	s := Summarize(v, full)
	assert.Equal(t, 3, s.TotalPapers)
	assert.InDelta(t, 0.5, s.CorpusShare, 1e-9)
	assert.Equal(t, 3, s.UniqueJournals)
	assert.InDelta(t, 1.0, s.JournalShare, 1e-9)
	assert.InDelta(t, (1.0+2+8)/3, s.MeanAuthors, 1e-9)
	assert.InDelta(t, (1100.0+1200+1800)/3, s.MeanAbstractLength, 1e-9)
	assert.Equal(t, types.Range{Lo: 1, Hi: 8}, s.AuthorRange)
	assert.Equal(t, types.Range{Lo: 2019, Hi: 2023}, s.YearRange)
	assert.Equal(t, 5, s.YearSpan)

	single := Summarize(Records(fixture(), criteria(2021, 2021, 1, 8, types.SourceAll)), full)
	assert.Equal(t, 1, single.YearSpan)
	assert.Equal(t, types.Range{Lo: 2021, Hi: 2021}, single.YearRange)
	assert.Equal(t, types.Range{Lo: 5, Hi: 5}, single.AuthorRange)
}

func TestSummarizeEmpty(t *testing.T) {
	full := Full(fixture())
	empty := Records(fixture(), criteria(2025, 2019, 1, 8, types.SourceAll))
	s := Summarize(empty, full)
	assert.Equal(t, Summary{}, s)
	assert.Zero(t, s.YearSpan)
	assert.Zero(t, s.YearRange)
	assert.Zero(t, s.AuthorRange)
	assert.Equal(t, Summary{}, Summarize(Full(nil), Full(nil)))
}
