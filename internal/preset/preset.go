// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preset saves and restores dashboard control state. A preset is a
// YAML file the user can reload later to reproduce a view without
// re-entering every filter.
package preset

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Preset is the on-disk representation of the dashboard controls.
type Preset struct {
	Name    string       `yaml:"name,omitempty"`
	Seed    int64        `yaml:"seed"`
	Filters FilterParams `yaml:"filters"`
	Words   WordParams   `yaml:"words"`
	Sample  SampleParams `yaml:"sample"`
	SavedAt time.Time    `yaml:"saved_at"`
}

// FilterParams stores the filter controls in a serializable form.
type FilterParams struct {
	YearFrom   int      `yaml:"year_from"`
	YearTo     int      `yaml:"year_to"`
	Journals   []string `yaml:"journals,omitempty"`
	Source     string   `yaml:"source,omitempty"`
	AuthorsMin int      `yaml:"authors_min"`
	AuthorsMax int      `yaml:"authors_max"`
}

// WordParams stores the word-frequency controls.
type WordParams struct {
	Top  int  `yaml:"top"`
	Stem bool `yaml:"stem,omitempty"`
}

// SampleParams stores the sample table controls.
type SampleParams struct {
	SortBy    string `yaml:"sort_by"`
	Ascending bool   `yaml:"ascending,omitempty"`
	Limit     int    `yaml:"limit"`
}

// FromCriteria builds FilterParams from filter criteria.
func FromCriteria(c filter.Criteria) FilterParams {
	return FilterParams{
		YearFrom:   c.Years.Lo,
		YearTo:     c.Years.Hi,
		Journals:   c.Journals,
		Source:     c.Source,
		AuthorsMin: c.Authors.Lo,
		AuthorsMax: c.Authors.Hi,
	}
}

// Criteria converts stored FilterParams back into filter criteria. An
// empty source selects every source. A range whose bounds are both omitted
// takes the bounds from def, so a hand-written preset that leaves out
// authors_min and authors_max does not decode to the range [0,0].
func (p FilterParams) Criteria(def types.FilterConfig) filter.Criteria {
	source := p.Source
	if source == "" {
		source = types.SourceAll
	}
	years := types.Range{Lo: p.YearFrom, Hi: p.YearTo}
	if years == (types.Range{}) {
		years = types.Range{Lo: def.YearFrom, Hi: def.YearTo}
	}
	authors := types.Range{Lo: p.AuthorsMin, Hi: p.AuthorsMax}
	if authors == (types.Range{}) {
		authors = types.Range{Lo: def.AuthorsMin, Hi: def.AuthorsMax}
	}
	return filter.Criteria{
		Years:    years,
		Journals: p.Journals,
		Source:   source,
		Authors:  authors,
	}
}

// Default returns the preset matching the configured initial controls.
func Default(cfg types.DashboardConfig) Preset {
	return Preset{
		Seed: cfg.Corpus.Seed,
		Filters: FilterParams{
			YearFrom:   cfg.Filter.YearFrom,
			YearTo:     cfg.Filter.YearTo,
			Source:     types.SourceAll,
			AuthorsMin: cfg.Filter.AuthorsMin,
			AuthorsMax: cfg.Filter.AuthorsMax,
		},
		Words: WordParams{Top: cfg.Words.Top, Stem: cfg.Words.Stem},
		Sample: SampleParams{
			SortBy:    cfg.Export.SortBy,
			Ascending: cfg.Export.Ascending,
			Limit:     cfg.Export.Limit,
		},
	}
}

// Save writes p to path, stamping SavedAt.
func Save(path string, p Preset) error {
	p.SavedAt = time.Now().UTC()
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a previously saved preset.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}
	return &p, nil
}
