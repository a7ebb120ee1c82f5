// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the most frequent title words for the filtered records",
	Long: `Words tokenizes the titles of the filtered records into lowercase letter
runs, drops stop words and words of two letters or fewer, and prints the
most frequent terms. Ties keep first-seen order.`,
	RunE: runWords,
}

func init() {
	addFilterFlags(wordsCmd)
	wordsCmd.Flags().Int("top", 0, "number of terms (default from config)")
	wordsCmd.Flags().Bool("stem", false, "fold terms through the Snowball stemmer")
	wordsCmd.Flags().Bool("json", false, "output terms as JSON")

	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	p, err := loadPreset(cmd.Flags())
	if err != nil {
		return err
	}
	svc := newService(cmd, p)

	req := dashboard.Request{Criteria: criteriaFromFlags(cmd.Flags(), cfg, p)}
	req.TopWords, req.Stem = cfg.Words.Top, cfg.Words.Stem
	if p != nil {
		req.TopWords, req.Stem = p.Words.Top, p.Words.Stem
	}
	if cmd.Flags().Changed("top") {
		req.TopWords, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("stem") {
		req.Stem, _ = cmd.Flags().GetBool("stem")
	}

	snap, err := svc.Snapshot(context.Background(), req)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return writeJSON(os.Stdout, snap.Words)
	}
	if snap.Empty {
		printNotice(os.Stdout, snap.Notice)
		return nil
	}
	printTerms(os.Stdout, "Top title words", snap.Words)
	return nil
}
