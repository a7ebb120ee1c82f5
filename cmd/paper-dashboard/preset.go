// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/preset"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Save and show dashboard control presets",
	Long: `Preset stores the dashboard controls (seed, filters, word and sample
settings) in a YAML file. Pass the file to filter, words, or export with
--preset to reproduce the same view later.`,
}

// --- save subcommand ---

var presetSaveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Write the current controls to a preset file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	base, err := loadPreset(cmd.Flags())
	if err != nil {
		return err
	}

	p := preset.Default(cfg)
	if base != nil {
		p = *base
	}
	if cmd.Flags().Changed("seed") || base == nil {
		p.Seed = cfg.Corpus.Seed
	}
	p.Filters = preset.FromCriteria(criteriaFromFlags(cmd.Flags(), cfg, base))

	defaults := export.SampleOptions{SortBy: p.Sample.SortBy, Ascending: p.Sample.Ascending, Limit: p.Sample.Limit}
	opts, err := sampleFromFlags(cmd.Flags(), defaults, nil)
	if err != nil {
		return err
	}
	p.Sample = preset.SampleParams{SortBy: opts.SortBy, Ascending: opts.Ascending, Limit: opts.Limit}

	if cmd.Flags().Changed("top") {
		p.Words.Top, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("stem") {
		p.Words.Stem, _ = cmd.Flags().GetBool("stem")
	}
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		p.Name = name
	}

	if err := preset.Save(args[0], p); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved preset to %s\n", args[0])
	return nil
}

// --- show subcommand ---

var presetShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Print the controls stored in a preset file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.Load(args[0])
		if err != nil {
			return err
		}
		printPreset(p)
		return nil
	},
}

func printPreset(p *preset.Preset) {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	journals := "all"
	if len(p.Filters.Journals) > 0 {
		journals = strings.Join(p.Filters.Journals, ", ")
	}
	c := p.Filters.Criteria(cfg.Filter)

	printHeading(os.Stdout, "Preset "+name)
	fmt.Fprintln(os.Stdout, labelStyle.Render("Seed")+valueStyle.Render(fmt.Sprint(p.Seed)))
	fmt.Fprintln(os.Stdout, labelStyle.Render("Years")+valueStyle.Render(fmt.Sprintf("%d-%d", c.Years.Lo, c.Years.Hi)))
	fmt.Fprintln(os.Stdout, labelStyle.Render("Journals")+valueStyle.Render(journals))
	fmt.Fprintln(os.Stdout, labelStyle.Render("Source")+valueStyle.Render(c.Source))
	fmt.Fprintln(os.Stdout, labelStyle.Render("Authors")+valueStyle.Render(fmt.Sprintf("%d-%d", c.Authors.Lo, c.Authors.Hi)))
	fmt.Fprintln(os.Stdout, labelStyle.Render("Top words")+valueStyle.Render(fmt.Sprintf("%d (stem: %t)", p.Words.Top, p.Words.Stem)))
	order := "descending"
	if p.Sample.Ascending {
		order = "ascending"
	}
	fmt.Fprintln(os.Stdout, labelStyle.Render("Sample")+valueStyle.Render(fmt.Sprintf("%d rows by %s, %s", p.Sample.Limit, p.Sample.SortBy, order)))
	if !p.SavedAt.IsZero() {
		fmt.Fprintln(os.Stdout, dimStyle.Render("saved "+p.SavedAt.Format("2006-01-02 15:04:05 MST")))
	}
}

func init() {
	addFilterFlags(presetSaveCmd)
	addSampleFlags(presetSaveCmd)
	presetSaveCmd.Flags().Int("top", 0, "number of title words")
	presetSaveCmd.Flags().Bool("stem", false, "fold title words through the Snowball stemmer")
	presetSaveCmd.Flags().String("name", "", "preset name")

	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetShowCmd)
	rootCmd.AddCommand(presetCmd)
}
