// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/internal/preset"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// addFilterFlags registers the dashboard filter controls on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("from", 0, "first publication year (default from config)")
	cmd.Flags().Int("to", 0, "last publication year (default from config)")
	cmd.Flags().StringSlice("journal", nil, "restrict to these journals (repeatable; empty = all)")
	cmd.Flags().String("source", types.SourceAll, "restrict to one source, or All")
	cmd.Flags().Int("authors-min", 0, "minimum author count (default from config)")
	cmd.Flags().Int("authors-max", 0, "maximum author count (default from config)")
	cmd.Flags().String("preset", "", "load controls from a saved preset file")
}

// addSampleFlags registers the sample table controls on cmd.
func addSampleFlags(cmd *cobra.Command) {
	cmd.Flags().String("sort", "", "sort column: publication_year, journal, author_count")
	cmd.Flags().Bool("asc", false, "sort ascending instead of descending")
	cmd.Flags().Int("limit", 0, "number of sample rows (default from config)")
}

// loadPreset reads the --preset file when one is given.
func loadPreset(flags *pflag.FlagSet) (*preset.Preset, error) {
	path, _ := flags.GetString("preset")
	if path == "" {
		return nil, nil
	}
	return preset.Load(path)
}

// criteriaFromFlags resolves the filter controls. Precedence, lowest to
// highest: config defaults, preset file, explicitly set flags.
func criteriaFromFlags(flags *pflag.FlagSet, c types.DashboardConfig, p *preset.Preset) filter.Criteria {
	crit := filter.Criteria{
		Years:   types.Range{Lo: c.Filter.YearFrom, Hi: c.Filter.YearTo},
		Source:  types.SourceAll,
		Authors: types.Range{Lo: c.Filter.AuthorsMin, Hi: c.Filter.AuthorsMax},
	}
	if p != nil {
		crit = p.Filters.Criteria(c.Filter)
	}

	if flags.Changed("from") {
		crit.Years.Lo, _ = flags.GetInt("from")
	}
	if flags.Changed("to") {
		crit.Years.Hi, _ = flags.GetInt("to")
	}
	if flags.Changed("journal") {
		crit.Journals, _ = flags.GetStringSlice("journal")
	}
	if flags.Changed("source") {
		crit.Source, _ = flags.GetString("source")
	}
	if flags.Changed("authors-min") {
		crit.Authors.Lo, _ = flags.GetInt("authors-min")
	}
	if flags.Changed("authors-max") {
		crit.Authors.Hi, _ = flags.GetInt("authors-max")
	}
	return crit
}

// sampleFromFlags resolves the sample controls with the same precedence
// as criteriaFromFlags.
func sampleFromFlags(flags *pflag.FlagSet, base export.SampleOptions, p *preset.Preset) (export.SampleOptions, error) {
	opts := base
	if p != nil {
		if p.Sample.SortBy != "" {
			opts.SortBy = p.Sample.SortBy
		}
		opts.Ascending = p.Sample.Ascending
		if p.Sample.Limit > 0 {
			opts.Limit = p.Sample.Limit
		}
	}

	if flags.Changed("sort") {
		opts.SortBy, _ = flags.GetString("sort")
	}
	if flags.Changed("asc") {
		opts.Ascending, _ = flags.GetBool("asc")
	}
	if flags.Changed("limit") {
		opts.Limit, _ = flags.GetInt("limit")
	}
	if opts.Limit <= 0 {
		return opts, fmt.Errorf("limit must be positive, got %d", opts.Limit)
	}
	return opts, nil
}

// newService builds a dashboard service over the memoized corpus for the
// configured seed. A preset seed overrides the config unless --seed is set.
func newService(cmd *cobra.Command, p *preset.Preset) *dashboard.Service {
	seed := cfg.Corpus.Seed
	if p != nil && !cmd.Flags().Changed("seed") {
		seed = p.Seed
	}
	c := cfg
	c.Corpus.Seed = seed
	return dashboard.NewService(memo.Seeded(seed), c, logger)
}
