// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Exporter writes samples into the configured export directory.
type Exporter struct {
	cfg    types.ExportConfig
	logger *zap.Logger
}

// NewExporter returns an Exporter for cfg. Missing settings fall back to
// csv, publication_year descending, and DefaultLimit rows.
func NewExporter(cfg types.ExportConfig, logger *zap.Logger) *Exporter {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatCSV
	}
	if cfg.SortBy == "" {
		cfg.SortBy = SortYear
	}
	if cfg.Limit == 0 {
		cfg.Limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{cfg: cfg, logger: logger}
}

// Options returns the sample options derived from the exporter config.
func (e *Exporter) Options() SampleOptions {
	return SampleOptions{SortBy: e.cfg.SortBy, Ascending: e.cfg.Ascending, Limit: e.cfg.Limit}
}

// Export samples v and writes it to Dir/FileName(years, Format). It
// returns the written path.
func (e *Exporter) Export(ctx context.Context, v filter.View, years types.Range) (string, error) {
	rows, err := Sample(v, e.Options())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(e.cfg.Dir, FileName(years, e.cfg.Format))

	if err := WriteFile(ctx, path, rows, e.cfg.Format); err != nil {
		return "", err
	}
	e.logger.Info("exported sample",
		zap.String("path", path),
		zap.String("format", string(e.cfg.Format)),
		zap.Int("rows", len(rows)),
	)
	return path, nil
}

// WriteFile writes rows to path in format, replacing any existing file.
func WriteFile(ctx context.Context, path string, rows []Row, format types.ExportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if format == types.FormatSQLite {
		return writeSQLite(ctx, path, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, rows, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSQLite(ctx context.Context, path string, rows []Row) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale export: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			authors TEXT,
			journal TEXT,
			publication_year INTEGER,
			source_x TEXT,
			author_count INTEGER
		)`); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (title, authors, journal, publication_year, source_x, author_count)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx,
			r.Title, r.Authors, r.Journal, r.PublicationYear, r.Source, r.AuthorCount,
		); err != nil {
			return fmt.Errorf("inserting row %q: %w", r.Title, err)
		}
	}

	return tx.Commit()
}
