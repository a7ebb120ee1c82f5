// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/corpus"
	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

func fixture() corpus.Static {
	return corpus.Static{
		{Title: "SARS-CoV-2 COVID-19: viral pandemic", Journal: "Nature", Source: "PMC", PublicationYear: 2020, AuthorCount: 2, AbstractLength: 900},
		{Title: "COVID-19 infection: clinical study", Journal: "Cell", Source: "WHO", PublicationYear: 2021, AuthorCount: 4, AbstractLength: 1500},
		{Title: "viral vaccine: molecular analysis", Journal: "Nature", Source: "PMC", PublicationYear: 2024, AuthorCount: 1, AbstractLength: 700},
	}
}

func testService(t *testing.T, p corpus.Provider) *Service {
	t.Helper()
	return NewService(p, types.DefaultConfig(), zap.NewNop())
}

func TestSnapshot(t *testing.T) {
	s := testService(t, fixture())

	snap, err := s.Snapshot(context.Background(), Request{Criteria: s.DefaultCriteria()})
	require.NoError(t, err)

	assert.True(t, snap.Filtered)
	assert.False(t, snap.Empty)
	assert.Empty(t, snap.Notice)
	assert.Equal(t, 2, snap.Summary.TotalPapers)
	assert.Equal(t, 2, snap.Summary.YearSpan)
	assert.Equal(t, types.Range{Lo: 2020, Hi: 2021}, snap.Summary.YearRange)
	assert.Equal(t, types.Range{Lo: 2, Hi: 4}, snap.Summary.AuthorRange)
	assert.Equal(t, []filter.GroupCount{{Key: "2020", Count: 1}, {Key: "2021", Count: 1}}, snap.Aggregates.ByYear)
	assert.Equal(t, []filter.GroupCount{{Key: "Nature", Count: 1}, {Key: "Cell", Count: 1}}, snap.Aggregates.TopJournals)

	require.NotEmpty(t, snap.Words)
	assert.Equal(t, "covid", snap.Words[0].Word)
	assert.Equal(t, 2, snap.Words[0].Count)
	for _, w := range snap.Words {
		assert.NotEqual(t, "vaccine", w.Word, "2024 title is outside the window")
	}
}

func TestSnapshotEmpty(t *testing.T) {
	s := testService(t, fixture())
	c := s.DefaultCriteria()
	c.Years = types.Range{Lo: 2025, Hi: 2019}

	snap, err := s.Snapshot(context.Background(), Request{Criteria: c})
	require.NoError(t, err)
	assert.True(t, snap.Filtered)
	assert.True(t, snap.Empty)
	assert.Equal(t, EmptyNotice, snap.Notice)
	assert.Zero(t, snap.Summary.TotalPapers)
	assert.Empty(t, snap.Words)
}

func TestSnapshotUnconstrained(t *testing.T) {
	s := testService(t, fixture())

	snap, err := s.Snapshot(context.Background(), Request{Criteria: filter.Unconstrained()})
	require.NoError(t, err)
	assert.False(t, snap.Filtered)
	assert.False(t, snap.Empty)
	assert.Equal(t, 3, snap.Summary.TotalPapers)
	assert.Equal(t, 5, snap.Summary.YearSpan)

	empty := testService(t, corpus.Static{})
	snap, err = empty.Snapshot(context.Background(), Request{Criteria: filter.Unconstrained()})
	require.NoError(t, err)
	assert.False(t, snap.Filtered, "no filters applied")
	assert.True(t, snap.Empty, "nothing to match")
}

func TestSnapshotTopLimits(t *testing.T) {
	s := testService(t, corpus.NewMemo(nil).Seeded(42))

	snap, err := s.Snapshot(context.Background(), Request{
		Criteria:    filter.Unconstrained(),
		TopJournals: 5,
		TopWords:    3,
	})
	require.NoError(t, err)
	assert.Len(t, snap.Aggregates.TopJournals, 5)
	assert.Len(t, snap.Words, 3)
	assert.Equal(t, corpus.Size, snap.Summary.TotalPapers)
	assert.InDelta(t, 1.0, snap.Summary.CorpusShare, 1e-9)
}

func TestSnapshotStemming(t *testing.T) {
	s := testService(t, corpus.Static{
		{Title: "patients: patient study", PublicationYear: 2021, AuthorCount: 1},
	})
	snap, err := s.Snapshot(context.Background(), Request{Criteria: s.DefaultCriteria(), Stem: true})
	require.NoError(t, err)
	require.NotEmpty(t, snap.Words)
	assert.Equal(t, "patient", snap.Words[0].Word)
	assert.Equal(t, 2, snap.Words[0].Count)
}

func TestSnapshotProviderError(t *testing.T) {
	s := testService(t, fixture())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Snapshot(ctx, Request{Criteria: s.DefaultCriteria()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample(t *testing.T) {
	s := testService(t, fixture())
	rows, err := s.Sample(context.Background(), filter.Unconstrained(), export.SampleOptions{SortBy: export.SortAuthors, Limit: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].AuthorCount)
	assert.Equal(t, 2, rows[1].AuthorCount)
}

func TestOptions(t *testing.T) {
	s := testService(t, fixture())
	opts, err := s.Options(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Cell", "Nature"}, opts.Journals)
	assert.Equal(t, []string{"All", "PMC", "WHO"}, opts.Sources)
	assert.Equal(t, types.Range{Lo: 2020, Hi: 2024}, opts.Years)
	assert.Equal(t, types.Range{Lo: 1, Hi: 4}, opts.Authors)
	assert.Equal(t, types.Range{Lo: 2020, Hi: 2023}, opts.Defaults.Years)
	assert.Equal(t, types.Range{Lo: 1, Hi: 8}, opts.Defaults.Authors, "defaults match DefaultCriteria")
	assert.Equal(t, s.DefaultCriteria().Authors, opts.Defaults.Authors)
	assert.Equal(t, 15, opts.Defaults.TopWords)
	assert.Equal(t, []int{10, 25, 50, 100}, opts.SampleSizes)
}

func TestOptionsDefaultsFillGaps(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Export.SortBy = ""
	cfg.Export.Limit = 0
	cfg.Filter.TopJournals = 0
	cfg.Words.Top = 0
	s := NewService(fixture(), cfg, nil)

	opts, err := s.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, export.SortYear, opts.Defaults.SortBy)
	assert.Equal(t, export.DefaultLimit, opts.Defaults.SampleSize)
	assert.Equal(t, filter.DefaultTopJournals, opts.Defaults.TopJournals)
	assert.Equal(t, 15, opts.Defaults.TopWords)
	assert.Equal(t, types.SourceAll, opts.Defaults.Source)
}

func TestOptionsEmptyCorpus(t *testing.T) {
	s := testService(t, corpus.Static{})
	opts, err := s.Options(context.Background())
	require.NoError(t, err)
	assert.True(t, opts.Years.IsEmpty())
	assert.Equal(t, []string{"All"}, opts.Sources)
}

func TestDefaultSample(t *testing.T) {
	s := NewService(corpus.Static{}, types.DashboardConfig{}, nil)
	assert.Equal(t, export.SampleOptions{SortBy: export.SortYear, Limit: export.DefaultLimit}, s.DefaultSample())

	cfg := types.DefaultConfig()
	cfg.Export.SortBy = export.SortJournal
	cfg.Export.Ascending = true
	cfg.Export.Limit = 50
	s = NewService(corpus.Static{}, cfg, nil)
	assert.Equal(t, export.SampleOptions{SortBy: export.SortJournal, Ascending: true, Limit: 50}, s.DefaultSample())
}
