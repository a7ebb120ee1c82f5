// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Extension returns the file extension used for format.
func Extension(format types.ExportFormat) string {
	if format == types.FormatSQLite {
		return "db"
	}
	return string(format)
}

// FileName returns the download name for a sample drawn from the given
// year window, e.g. "cord19_filtered_2020_2023.csv".
func FileName(years types.Range, format types.ExportFormat) string {
	return fmt.Sprintf("cord19_filtered_%d_%d.%s", years.Lo, years.Hi, Extension(format))
}

// Write encodes rows to w. SQLite is file-based; use Exporter.Export for it.
func Write(w io.Writer, rows []Row, format types.ExportFormat) error {
	switch format {
	case types.FormatCSV, "":
		return WriteCSV(w, rows)
	case types.FormatJSON:
		return WriteJSON(w, rows)
	case types.FormatYAML:
		return WriteYAML(w, rows)
	case types.FormatSQLite:
		return fmt.Errorf("sqlite export requires a file path")
	default:
		return fmt.Errorf("unsupported format %q: use csv, json, yaml, or sqlite", format)
	}
}

// WriteCSV writes a header row followed by one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Title,
			r.Authors,
			r.Journal,
			strconv.Itoa(r.PublicationYear),
			r.Source,
			strconv.Itoa(r.AuthorCount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// WriteYAML writes rows as a YAML sequence.
func WriteYAML(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
