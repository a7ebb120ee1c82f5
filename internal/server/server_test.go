// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/corpus"
	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- test helpers ---

func fixture() corpus.Static {
	return corpus.Static{
		{Title: "SARS-CoV-2 COVID-19: viral pandemic", Authors: "Author 1; Author 2", Journal: "Nature", Source: "PMC", PublicationYear: 2020, AuthorCount: 2, AbstractLength: 900},
		{Title: "COVID-19 infection: clinical study", Authors: "Author 1", Journal: "Cell", Source: "WHO", PublicationYear: 2021, AuthorCount: 1, AbstractLength: 1500},
		{Title: "viral vaccine: molecular analysis", Authors: "Author 1; Author 2; Author 3", Journal: "Nature", Source: "PMC", PublicationYear: 2022, AuthorCount: 3, AbstractLength: 700},
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := types.DefaultConfig()
	svc := dashboard.NewService(fixture(), cfg, zap.NewNop())
	return New(svc, cfg.Server, zap.NewNop())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// --- endpoints ---

func TestHealth(t *testing.T) {
	rec := get(t, testServer(t), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestOptions(t *testing.T) {
	rec := get(t, testServer(t), "/api/options")
	require.Equal(t, http.StatusOK, rec.Code)

	opts := decode[dashboard.Options](t, rec)
	assert.Equal(t, []string{"Cell", "Nature"}, opts.Journals)
	assert.Equal(t, []string{"All", "PMC", "WHO"}, opts.Sources)
	assert.Equal(t, types.Range{Lo: 2020, Hi: 2022}, opts.Years)
}

func TestDashboard(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantEmpty bool
	}{
		{"defaults", "/api/dashboard", 3, false},
		{"year window", "/api/dashboard?year_from=2021&year_to=2021", 1, false},
		{"journal", "/api/dashboard?journal=Nature", 2, false},
		{"two journals", "/api/dashboard?journal=Nature&journal=Cell", 3, false},
		{"source", "/api/dashboard?source=WHO", 1, false},
		{"source all", "/api/dashboard?source=All", 3, false},
		{"authors", "/api/dashboard?authors_min=2&authors_max=3", 2, false},
		{"inverted range", "/api/dashboard?year_from=2025&year_to=2019", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			snap := decode[dashboard.Snapshot](t, rec)
			assert.Equal(t, tt.wantTotal, snap.Summary.TotalPapers)
			assert.Equal(t, tt.wantEmpty, snap.Empty)
			if tt.wantEmpty {
				assert.Equal(t, dashboard.EmptyNotice, snap.Notice)
			}
		})
	}
}

func TestDashboardWords(t *testing.T) {
	rec := get(t, testServer(t), "/api/dashboard?top=2")
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[dashboard.Snapshot](t, rec)
	require.Len(t, snap.Words, 2)
	assert.Equal(t, "covid", snap.Words[0].Word)
	assert.Equal(t, "viral", snap.Words[1].Word)
}

func TestBadParameters(t *testing.T) {
	s := testServer(t)
	for _, target := range []string{
		"/api/dashboard?year_from=abc",
		"/api/dashboard?authors_max=1.5",
		"/api/dashboard?top=x",
		"/api/dashboard?stem=maybe",
		"/api/records?limit=ten",
		"/api/records?sort=title",
		"/api/records?order=sideways",
		"/api/export?format=sqlite",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, s, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[map[string]string](t, rec)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRecords(t *testing.T) {
	rec := get(t, testServer(t), "/api/records?sort=author_count&order=asc&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[recordsBody](t, rec)
	assert.Equal(t, 2, body.Count)
	assert.False(t, body.Empty)
	require.Len(t, body.Records, 2)
	assert.Equal(t, 1, body.Records[0].AuthorCount)
	assert.Equal(t, 2, body.Records[1].AuthorCount)
}

func TestRecordsEmpty(t *testing.T) {
	rec := get(t, testServer(t), "/api/records?source=arXiv")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[recordsBody](t, rec)
	assert.True(t, body.Empty)
	assert.Equal(t, dashboard.EmptyNotice, body.Notice)
	assert.NotNil(t, body.Records)
	assert.Contains(t, rec.Body.String(), `"records": []`)
}

func TestExportCSV(t *testing.T) {
	rec := get(t, testServer(t), "/api/export?year_from=2020&year_to=2022")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="cord19_filtered_2020_2022.csv"`, rec.Header().Get("Content-Disposition"))

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, export.Columns, rows[0])
	assert.Equal(t, "2022", rows[1][3], "default order is year descending")
}

func TestExportJSON(t *testing.T) {
	rec := get(t, testServer(t), "/api/export?format=json&limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	rows := decode[[]export.Row](t, rec)
	assert.Len(t, rows, 1)
}

func TestNotFound(t *testing.T) {
	rec := get(t, testServer(t), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- lifecycle ---

func TestServeShutsDownOnCancel(t *testing.T) {
	s := testServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRateLimit(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Server.RPM = 1
	cfg.Server.Burst = 2
	s := New(dashboard.NewService(fixture(), cfg, zap.NewNop()), cfg.Server, zap.NewNop())

	assert.Equal(t, http.StatusOK, get(t, s, "/api/options").Code)
	assert.Equal(t, http.StatusOK, get(t, s, "/api/options").Code)

	rec := get(t, s, "/api/options")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, get(t, s, "/api/health").Code, "health is not limited")
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Server.RPM = 0
	s := New(dashboard.NewService(fixture(), cfg, zap.NewNop()), cfg.Server, zap.NewNop())
	assert.Nil(t, s.limiter)
	for range 50 {
		require.Equal(t, http.StatusOK, get(t, s, "/api/options").Code)
	}
}
