package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/Bitlatte/auraspaces/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	b, err := site.NewBuilder(catalog.Default(), site.Options{
		BaseURL:   "https://x.test",
		OutputDir: dir,
		Logger:    logger,
		Now:       func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	_, err = b.Build()
	require.NoError(t, err)

	return New(dir, logger)
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		contains string
	}{
		{"home", http.MethodGet, "/", http.StatusOK, "AuraSpaces | Interior Design Studio"},
		{"city", http.MethodGet, "/interior-design/pune", http.StatusOK, "Interior Design in Pune | AuraSpaces"},
		{"city trailing slash", http.MethodGet, "/interior-design/nagpur/", http.StatusOK, "Interior Design in Nagpur | AuraSpaces"},
		{"unknown city", http.MethodGet, "/interior-design/mumbai", http.StatusNotFound, "Page not found"},
		{"case sensitive slug", http.MethodGet, "/interior-design/Pune", http.StatusNotFound, "Page not found"},
		{"unknown path", http.MethodGet, "/about", http.StatusNotFound, "Page not found"},
		{"nested city path", http.MethodGet, "/interior-design/pune/extra", http.StatusNotFound, "Page not found"},
		{"sitemap", http.MethodGet, "/sitemap.xml", http.StatusOK, "<loc>https://x.test/interior-design/nashik</loc>"},
		{"stylesheet", http.MethodGet, "/static/styles.css", http.StatusOK, "--accent"},
		{"missing asset", http.MethodGet, "/static/app.js", http.StatusNotFound, "Page not found"},
		{"post", http.MethodPost, "/", http.StatusMethodNotAllowed, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, srv, tc.method, tc.target)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestContentTypes(t *testing.T) {
	srv := setupServer(t)

	assert.Contains(t, do(t, srv, http.MethodGet, "/").Header().Get("Content-Type"), "text/html")
	assert.Contains(t, do(t, srv, http.MethodGet, "/sitemap.xml").Header().Get("Content-Type"), "xml")
	assert.Contains(t, do(t, srv, http.MethodGet, "/static/styles.css").Header().Get("Content-Type"), "text/css")
	assert.Contains(t, do(t, srv, http.MethodGet, "/interior-design/mumbai").Header().Get("Content-Type"), "text/html")
}

func TestHeadNotFoundHasNoBody(t *testing.T) {
	srv := setupServer(t)
	rec := do(t, srv, http.MethodHead, "/interior-design/mumbai")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestNotFoundWithoutBuiltPage(t *testing.T) {
	srv := New(t.TempDir(), nil)
	rec := do(t, srv, http.MethodGet, "/interior-design/pune")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics(t *testing.T) {
	srv := setupServer(t)
	do(t, srv, http.MethodGet, "/")
	do(t, srv, http.MethodGet, "/interior-design/pune")
	do(t, srv, http.MethodGet, "/interior-design/nashik")
	do(t, srv, http.MethodGet, "/interior-design/mumbai")

	rec := do(t, srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, line := range []string{
		`auraspaces_page_requests_total{route="home"} 1`,
		`auraspaces_page_requests_total{route="city"} 2`,
		`auraspaces_page_requests_total{route="not_found"} 1`,
	} {
		assert.True(t, strings.Contains(body, line), "missing %q in\n%s", line, body)
	}
}
