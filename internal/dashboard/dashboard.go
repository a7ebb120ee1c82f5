// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard composes the corpus, filter, and word-frequency stages
// into the snapshot a presentation layer renders after every control
// change. Each call recomputes from the memoized corpus; nothing derived
// is cached.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/corpus"
	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/internal/wordfreq"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// EmptyNotice is shown when the filters match no records.
const EmptyNotice = "No records match the current filters; relax the filters and try again."

// Request holds one set of dashboard controls.
type Request struct {
	Criteria filter.Criteria

	// TopJournals sizes the journal table (0 = configured default).
	TopJournals int

	// TopWords sizes the word table (0 = configured default).
	TopWords int

	// Stem folds title terms through the Snowball stemmer.
	Stem bool
}

// Snapshot is everything the dashboard shows for one Request.
type Snapshot struct {
	Criteria filter.Criteria `json:"criteria" yaml:"criteria"`

	// Filtered is false when the criteria cannot reject any record, which
	// tells "no filters applied" apart from "filters matched nothing".
	Filtered bool `json:"filtered" yaml:"filtered"`

	Empty      bool              `json:"empty" yaml:"empty"`
	Notice     string            `json:"notice,omitempty" yaml:"notice,omitempty"`
	Summary    filter.Summary    `json:"summary" yaml:"summary"`
	Aggregates filter.Aggregates `json:"aggregates" yaml:"aggregates"`
	Words      []wordfreq.Term   `json:"words" yaml:"words"`
}

// Options describes the controls the presentation layer should offer.
type Options struct {
	Journals    []string    `json:"journals" yaml:"journals"`
	Sources     []string    `json:"sources" yaml:"sources"`
	Years       types.Range `json:"years" yaml:"years"`
	Authors     types.Range `json:"authors" yaml:"authors"`
	SampleSizes []int       `json:"sample_sizes" yaml:"sample_sizes"`
	SortColumns []string    `json:"sort_columns" yaml:"sort_columns"`
	Defaults    Defaults    `json:"defaults" yaml:"defaults"`
}

// Defaults holds the initial control values.
type Defaults struct {
	Years       types.Range `json:"years" yaml:"years"`
	Authors     types.Range `json:"authors" yaml:"authors"`
	Source      string      `json:"source" yaml:"source"`
	TopJournals int         `json:"top_journals" yaml:"top_journals"`
	TopWords    int         `json:"top_words" yaml:"top_words"`
	SampleSize  int         `json:"sample_size" yaml:"sample_size"`
	SortBy      string      `json:"sort_by" yaml:"sort_by"`
}

// Service answers dashboard requests from a corpus provider.
type Service struct {
	provider corpus.Provider
	cfg      types.DashboardConfig
	logger   *zap.Logger
}

// NewService returns a Service. A nil logger discards log output.
func NewService(provider corpus.Provider, cfg types.DashboardConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// DefaultCriteria returns the configured initial filter controls.
func (s *Service) DefaultCriteria() filter.Criteria {
	f := s.cfg.Filter
	return filter.Criteria{
		Years:   types.Range{Lo: f.YearFrom, Hi: f.YearTo},
		Source:  types.SourceAll,
		Authors: types.Range{Lo: f.AuthorsMin, Hi: f.AuthorsMax},
	}
}

// DefaultSample returns the configured sample table controls.
func (s *Service) DefaultSample() export.SampleOptions {
	e := s.cfg.Export
	opts := export.SampleOptions{SortBy: e.SortBy, Ascending: e.Ascending, Limit: e.Limit}
	if opts.SortBy == "" {
		opts.SortBy = export.SortYear
	}
	if opts.Limit == 0 {
		opts.Limit = export.DefaultLimit
	}
	return opts
}

// View returns the full corpus view and the view filtered by c.
func (s *Service) View(ctx context.Context, c filter.Criteria) (full, filtered filter.View, err error) {
	records, err := s.provider.Corpus(ctx)
	if err != nil {
		return filter.View{}, filter.View{}, fmt.Errorf("loading corpus: %w", err)
	}
	full = filter.Full(records)
	return full, filter.Apply(full, c), nil
}

// Snapshot filters the corpus and derives every dashboard table.
func (s *Service) Snapshot(ctx context.Context, req Request) (Snapshot, error) {
	start := time.Now()

	full, v, err := s.View(ctx, req.Criteria)
	if err != nil {
		return Snapshot{}, err
	}

	topJournals := s.topJournals(req.TopJournals)
	topWords := s.topWords(req.TopWords)

	var opts []wordfreq.Option
	if req.Stem {
		opts = append(opts, wordfreq.WithStemming())
	}
	words := wordfreq.New(opts...).Analyze(v.Records(), req.Criteria.Years)

	snap := Snapshot{
		Criteria:   req.Criteria,
		Filtered:   !req.Criteria.IsUnconstrained(),
		Empty:      v.Len() == 0,
		Summary:    filter.Summarize(v, full),
		Aggregates: filter.Aggregate(v, topJournals),
		Words:      words.Top(topWords),
	}
	if snap.Empty {
		snap.Notice = EmptyNotice
	}

	s.logger.Debug("computed snapshot",
		zap.Int("matched", v.Len()),
		zap.Int("corpus", full.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return snap, nil
}

// Sample filters the corpus and returns the sorted, limited sample rows.
func (s *Service) Sample(ctx context.Context, c filter.Criteria, opts export.SampleOptions) ([]export.Row, error) {
	_, v, err := s.View(ctx, c)
	if err != nil {
		return nil, err
	}
	return export.Sample(v, opts)
}

// Options derives the control choices from the corpus.
func (s *Service) Options(ctx context.Context) (Options, error) {
	records, err := s.provider.Corpus(ctx)
	if err != nil {
		return Options{}, fmt.Errorf("loading corpus: %w", err)
	}
	full := filter.Full(records)

	opts := Options{
		Journals:    filter.Journals(full),
		Sources:     append([]string{types.SourceAll}, filter.Sources(full)...),
		Years:       bounds(records, func(r types.Record) int { return r.PublicationYear }),
		Authors:     bounds(records, func(r types.Record) int { return r.AuthorCount }),
		SampleSizes: export.SampleSizes,
		SortColumns: []string{export.SortYear, export.SortJournal, export.SortAuthors},
	}

	def := s.DefaultCriteria()
	sample := s.DefaultSample()
	opts.Defaults = Defaults{
		Years:       def.Years,
		Authors:     def.Authors,
		Source:      def.Source,
		TopJournals: s.topJournals(0),
		TopWords:    s.topWords(0),
		SampleSize:  sample.Limit,
		SortBy:      sample.SortBy,
	}
	return opts, nil
}

// topJournals resolves a requested journal table size, falling back to the
// configured size and then to filter.DefaultTopJournals.
func (s *Service) topJournals(n int) int {
	if n <= 0 {
		n = s.cfg.Filter.TopJournals
	}
	if n <= 0 {
		n = filter.DefaultTopJournals
	}
	return n
}

// topWords resolves a requested word table size the same way.
func (s *Service) topWords(n int) int {
	if n <= 0 {
		n = s.cfg.Words.Top
	}
	if n <= 0 {
		n = wordfreq.DefaultTop
	}
	return n
}

// bounds returns the smallest and largest value of field across records,
// or an empty range when there are none.
func bounds(records []types.Record, field func(types.Record) int) types.Range {
	if len(records) == 0 {
		return types.Range{Lo: 1, Hi: 0}
	}
	r := types.Range{Lo: field(records[0]), Hi: field(records[0])}
	for _, rec := range records[1:] {
		v := field(rec)
		r.Lo = min(r.Lo, v)
		r.Hi = max(r.Hi, v)
	}
	return r
}
