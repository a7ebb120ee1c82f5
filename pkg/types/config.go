// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CorpusConfig holds settings for the dataset generator.
type CorpusConfig struct {
	// Seed drives the pseudo-random stream. The same seed always yields
	// the same corpus (default 42).
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// FilterConfig holds the initial control state shown by the dashboard.
type FilterConfig struct {
	// YearFrom and YearTo bound the default publication year window.
	YearFrom int `json:"year_from" yaml:"year_from" mapstructure:"year_from"`
	YearTo   int `json:"year_to" yaml:"year_to" mapstructure:"year_to"`

	// AuthorsMin and AuthorsMax bound the default author count window.
	AuthorsMin int `json:"authors_min" yaml:"authors_min" mapstructure:"authors_min"`
	AuthorsMax int `json:"authors_max" yaml:"authors_max" mapstructure:"authors_max"`

	// TopJournals is the number of journals in the journal aggregate (default 10).
	TopJournals int `json:"top_journals" yaml:"top_journals" mapstructure:"top_journals"`
}

// WordsConfig holds settings for the title word-frequency analysis.
type WordsConfig struct {
	// Top is the number of terms shown (default 15).
	Top int `json:"top" yaml:"top" mapstructure:"top"`

	// Stem folds terms through the Snowball English stemmer.
	Stem bool `json:"stem" yaml:"stem" mapstructure:"stem"`
}

// ExportFormat selects the sample export encoding.
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"
	FormatJSON   ExportFormat = "json"
	FormatYAML   ExportFormat = "yaml"
	FormatSQLite ExportFormat = "sqlite"
)

// ExportConfig holds settings for sample exports.
type ExportConfig struct {
	// Dir is the directory export files are written to (default "exports").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Format selects csv, json, yaml, or sqlite (default csv).
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// SortBy is the sample sort column (default publication_year).
	SortBy string `json:"sort_by" yaml:"sort_by" mapstructure:"sort_by"`

	// Ascending flips the default descending sample order.
	Ascending bool `json:"ascending" yaml:"ascending" mapstructure:"ascending"`

	// Limit caps the number of sample rows (default 25).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ReadTimeout and WriteTimeout bound each request.
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown after the context ends.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// RPM caps API requests per minute across all clients (0 = unlimited).
	RPM int `json:"rpm" yaml:"rpm" mapstructure:"rpm"`

	// Burst is the number of requests allowed above the steady RPM rate.
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Encoding is "json" or "console" (default json).
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`
}

// DashboardConfig groups all stage configurations.
type DashboardConfig struct {
	Corpus CorpusConfig `json:"corpus" yaml:"corpus" mapstructure:"corpus"`
	Filter FilterConfig `json:"filter" yaml:"filter" mapstructure:"filter"`
	Words  WordsConfig  `json:"words" yaml:"words" mapstructure:"words"`
	Export ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings the dashboard starts with when no
// config file or environment overrides are present.
func DefaultConfig() DashboardConfig {
	return DashboardConfig{
		Corpus: CorpusConfig{Seed: 42},
		Filter: FilterConfig{
			YearFrom:    2020,
			YearTo:      2023,
			AuthorsMin:  1,
			AuthorsMax:  8,
			TopJournals: 10,
		},
		Words: WordsConfig{Top: 15},
		Export: ExportConfig{
			Dir:    "exports",
			Format: FormatCSV,
			SortBy: "publication_year",
			Limit:  25,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			RPM:             600,
			Burst:           20,
		},
		Log: LogConfig{Level: "info", Encoding: "json"},
	}
}
