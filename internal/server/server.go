// Package server serves a built site directory over HTTP.
package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/Bitlatte/auraspaces/internal/site"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route kinds used as the metrics label.
const (
	RouteHome     = "home"
	RouteCity     = "city"
	RouteSitemap  = "sitemap"
	RouteStatic   = "static"
	RouteNotFound = "not_found"
)

// Server maps the public routes onto files produced by site.Builder.
type Server struct {
	dir      string
	logger   *slog.Logger
	mux      *http.ServeMux
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New returns a handler for the output directory dir.
func New(dir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auraspaces",
		Name:      "page_requests_total",
		Help:      "Page requests served, by route kind.",
	}, []string{"route"})
	registry.MustRegister(requests)

	s := &Server{
		dir:      dir,
		logger:   logger,
		mux:      http.NewServeMux(),
		registry: registry,
		requests: requests,
	}

	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET "+catalog.CityPathPrefix+"{slug}", s.handleCity)
	s.mux.HandleFunc("GET "+catalog.CityPathPrefix+"{slug}/{$}", s.handleCity)
	s.mux.HandleFunc("GET /"+site.SitemapFile, s.handleSitemap)
	s.mux.HandleFunc("GET /"+site.StaticDir+"/", s.handleStatic)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/", s.handleFallback)

	return s
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Debug("request served",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start).String())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, RouteHome, site.IndexFile)
}

func (s *Server) handleCity(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := catalog.ValidateSlug(slug); err != nil {
		s.notFound(w, r)
		return
	}
	s.serveFile(w, r, RouteCity, filepath.Join(site.CityDir, slug, site.IndexFile))
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, RouteSitemap, site.SitemapFile)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if !site.StaticAsset(r.URL.Path) {
		s.notFound(w, r)
		return
	}
	rel := filepath.FromSlash(path.Clean(r.URL.Path)[1:])
	s.serveFile(w, r, RouteStatic, rel)
}

func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	s.notFound(w, r)
}

// serveFile serves rel from the output directory, or the not-found page when
// it does not exist.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, route, rel string) {
	f, err := os.Open(filepath.Join(s.dir, rel))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("failed to open page", "path", rel, "error", err)
		}
		s.notFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		s.notFound(w, r)
		return
	}

	s.requests.WithLabelValues(route).Inc()
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// notFound writes the built 404 page with status 404.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues(RouteNotFound).Inc()

	body, err := os.ReadFile(filepath.Join(s.dir, site.NotFoundFile))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
