// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/internal/filter"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

type errorBody struct {
	Error string `json:"error"`
}

type recordsBody struct {
	Count   int          `json:"count"`
	Empty   bool         `json:"empty"`
	Notice  string       `json:"notice,omitempty"`
	Records []export.Row `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.svc.Options(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, opts)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := s.criteria(q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	topJournals, err := intParam(q, "top_journals", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	topWords, err := intParam(q, "top", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	stem, err := boolParam(q, "stem")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.svc.Snapshot(r.Context(), dashboard.Request{
		Criteria:    c,
		TopJournals: topJournals,
		TopWords:    topWords,
		Stem:        stem,
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, opts, err := s.sampleRequest(q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	rows, err := s.svc.Sample(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if rows == nil {
		rows = []export.Row{}
	}
	body := recordsBody{Count: len(rows), Empty: len(rows) == 0, Records: rows}
	if body.Empty {
		body.Notice = dashboard.EmptyNotice
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, opts, err := s.sampleRequest(q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	format := types.ExportFormat(q.Get("format"))
	var contentType string
	switch format {
	case "", types.FormatCSV:
		format, contentType = types.FormatCSV, "text/csv"
	case types.FormatJSON:
		contentType = "application/json"
	case types.FormatYAML:
		contentType = "application/yaml"
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported format %q: use csv, json, or yaml", format))
		return
	}

	rows, err := s.svc.Sample(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, rows, format); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(c.Years, format)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// criteria reads the filter controls from the query string, falling back
// to the configured defaults for absent parameters.
func (s *Server) criteria(q url.Values) (filter.Criteria, error) {
	c := s.svc.DefaultCriteria()

	var err error
	if c.Years.Lo, err = intParam(q, "year_from", c.Years.Lo); err != nil {
		return c, err
	}
	if c.Years.Hi, err = intParam(q, "year_to", c.Years.Hi); err != nil {
		return c, err
	}
	if c.Authors.Lo, err = intParam(q, "authors_min", c.Authors.Lo); err != nil {
		return c, err
	}
	if c.Authors.Hi, err = intParam(q, "authors_max", c.Authors.Hi); err != nil {
		return c, err
	}
	if journals := q["journal"]; len(journals) > 0 {
		c.Journals = journals
	}
	if source := q.Get("source"); source != "" {
		c.Source = source
	}
	return c, nil
}

func (s *Server) sampleRequest(q url.Values) (filter.Criteria, export.SampleOptions, error) {
	c, err := s.criteria(q)
	if err != nil {
		return c, export.SampleOptions{}, err
	}

	def := s.svc.DefaultSample()
	limit, err := intParam(q, "limit", def.Limit)
	if err != nil {
		return c, export.SampleOptions{}, err
	}
	opts := export.SampleOptions{SortBy: def.SortBy, Ascending: def.Ascending, Limit: limit}
	if sortBy := q.Get("sort"); sortBy != "" {
		opts.SortBy = sortBy
	}
	switch order := q.Get("order"); order {
	case "":
	case "asc":
		opts.Ascending = true
	case "desc":
		opts.Ascending = false
	default:
		return c, opts, fmt.Errorf("invalid order %q: use asc or desc", order)
	}
	switch opts.SortBy {
	case export.SortYear, export.SortJournal, export.SortAuthors:
	default:
		return c, opts, fmt.Errorf("invalid sort %q: use %s, %s, or %s", opts.SortBy, export.SortYear, export.SortJournal, export.SortAuthors)
	}
	return c, opts, nil
}

func intParam(q url.Values, key string, fallback int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, raw)
	}
	return v, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be a boolean", key, raw)
	}
	return v, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}
