// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter the corpus and show the dashboard tables",
	Long: `Filter applies the year, journal, source, and author-count filters to the
corpus and prints the summary metrics, publications by year, top journals,
author-count distribution, source mix, and top title words for the matching
records. Use --sample to append the sorted sample table.`,
	RunE: runFilter,
}

func init() {
	addFilterFlags(filterCmd)
	addSampleFlags(filterCmd)
	filterCmd.Flags().Int("top-journals", 0, "number of journals in the journal table (default from config)")
	filterCmd.Flags().Int("top-words", 0, "number of title words (default from config)")
	filterCmd.Flags().Bool("stem", false, "fold title words through the Snowball stemmer")
	filterCmd.Flags().Bool("sample", false, "also print the sample table")
	filterCmd.Flags().Bool("json", false, "output the snapshot as JSON")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	p, err := loadPreset(cmd.Flags())
	if err != nil {
		return err
	}
	svc := newService(cmd, p)

	req := dashboard.Request{Criteria: criteriaFromFlags(cmd.Flags(), cfg, p)}
	req.TopJournals, _ = cmd.Flags().GetInt("top-journals")
	req.TopWords, req.Stem = cfg.Words.Top, cfg.Words.Stem
	if p != nil {
		req.TopWords, req.Stem = p.Words.Top, p.Words.Stem
	}
	if cmd.Flags().Changed("top-words") {
		req.TopWords, _ = cmd.Flags().GetInt("top-words")
	}
	if cmd.Flags().Changed("stem") {
		req.Stem, _ = cmd.Flags().GetBool("stem")
	}

	ctx := context.Background()
	snap, err := svc.Snapshot(ctx, req)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return writeJSON(os.Stdout, snap)
	}

	if snap.Empty {
		printNotice(os.Stdout, snap.Notice)
		return nil
	}
	printSummary(os.Stdout, snap.Summary)
	printAggregates(os.Stdout, snap.Aggregates)
	printTerms(os.Stdout, "Top title words", snap.Words)

	showSample, _ := cmd.Flags().GetBool("sample")
	if !showSample {
		return nil
	}
	opts, err := sampleFromFlags(cmd.Flags(), svc.DefaultSample(), p)
	if err != nil {
		return err
	}
	rows, err := svc.Sample(ctx, req.Criteria, opts)
	if err != nil {
		return err
	}
	printRows(os.Stdout, rows)
	return nil
}
