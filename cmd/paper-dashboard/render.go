// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/internal/wordfreq"
)

const barWidth = 30

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(28)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
}

func printNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, noticeStyle.Render(msg))
}

func printSummary(w io.Writer, s filter.Summary) {
	printHeading(w, "Summary")
	rows := []struct {
		label, value string
	}{
		{"Total papers", fmt.Sprintf("%d (%.1f%% of total)", s.TotalPapers, 100*s.CorpusShare)},
		{"Unique journals", fmt.Sprintf("%d (%.1f%% of total)", s.UniqueJournals, 100*s.JournalShare)},
		{"Average authors", fmt.Sprintf("%.1f (range: %d-%d)", s.MeanAuthors, s.AuthorRange.Lo, s.AuthorRange.Hi)},
		{"Year span", fmt.Sprintf("%d years (%d-%d)", s.YearSpan, s.YearRange.Lo, s.YearRange.Hi)},
		{"Average abstract length", fmt.Sprintf("%.0f chars", s.MeanAbstractLength)},
	}
	for _, r := range rows {
		fmt.Fprintln(w, labelStyle.Render(r.label)+valueStyle.Render(r.value))
	}
}

// printCounts renders a grouped count table as a horizontal bar chart.
func printCounts(w io.Writer, title string, counts []filter.GroupCount) {
	printHeading(w, title)
	if len(counts) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(none)"))
		return
	}
	peak := 0
	for _, c := range counts {
		if c.Count > peak {
			peak = c.Count
		}
	}
	for _, c := range counts {
		fmt.Fprintln(w, labelStyle.Render(truncate(c.Key, 26))+bar(c.Count, peak)+" "+valueStyle.Render(fmt.Sprint(c.Count)))
	}
}

func printTerms(w io.Writer, title string, terms []wordfreq.Term) {
	counts := make([]filter.GroupCount, len(terms))
	for i, t := range terms {
		counts[i] = filter.GroupCount{Key: t.Word, Count: t.Count}
	}
	printCounts(w, title, counts)
}

func printAggregates(w io.Writer, a filter.Aggregates) {
	printCounts(w, "Publications by year", a.ByYear)
	printCounts(w, "Top journals", a.TopJournals)
	printCounts(w, "Author count distribution", a.ByAuthorCount)
	printCounts(w, "Papers by source", a.BySource)
}

func printRows(w io.Writer, rows []export.Row) {
	printHeading(w, "Sample")
	fmt.Fprintf(w, "%-50s  %-28s  %-4s  %-6s  %s\n", "Title", "Journal", "Year", "Source", "Authors")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range rows {
		fmt.Fprintf(w, "%-50s  %-28s  %-4d  %-6s  %d\n",
			truncate(r.Title, 50), truncate(r.Journal, 28), r.PublicationYear, r.Source, r.AuthorCount)
	}
	fmt.Fprintf(w, "\n%d rows\n", len(rows))
}

func bar(n, peak int) string {
	if peak <= 0 {
		return ""
	}
	width := n * barWidth / peak
	if width == 0 && n > 0 {
		width = 1
	}
	return barStyle.Render(strings.Repeat("█", width))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
