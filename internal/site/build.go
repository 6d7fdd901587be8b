package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/Bitlatte/auraspaces/internal/sitemap"

	"github.com/natefinch/atomic"
)

//go:embed static
var staticFS embed.FS

// Output layout, relative to the output directory.
const (
	IndexFile    = "index.html"
	NotFoundFile = "404.html"
	SitemapFile  = "sitemap.xml"
	StaticDir    = "static"
	CityDir      = "interior-design"
)

const filePerm = 0o644

// Options configures a Builder.
type Options struct {
	BaseURL   string
	OutputDir string
	SiteTitle string
	Logger    *slog.Logger
	// Now stamps the sitemap. Defaults to time.Now.
	Now func() time.Time
}

// Builder writes every page of the site to an output directory.
type Builder struct {
	cat       *catalog.Catalog
	renderer  *Renderer
	baseURL   string
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// Report summarises a build.
type Report struct {
	Routes   []string
	Files    int
	Pruned   []string
	Duration time.Duration
}

// NewBuilder prepares a builder for cat.
func NewBuilder(cat *catalog.Catalog, opts Options) (*Builder, error) {
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	renderer, err := NewRenderer(cat, opts.BaseURL, opts.SiteTitle)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Builder{
		cat:       cat,
		renderer:  renderer,
		baseURL:   opts.BaseURL,
		outputDir: opts.OutputDir,
		logger:    logger,
		now:       now,
	}, nil
}

// Build renders the home page, one page per catalog route, the not-found page
// and the sitemap. Files are replaced atomically so a server reading the
// output directory during a rebuild never sees a partial page. City pages
// left over from a previous catalog are removed.
func (b *Builder) Build() (Report, error) {
	start := time.Now()
	report := Report{}
	b.logger.Info("starting build", "output_dir", b.outputDir, "base_url", b.baseURL, "cities", b.cat.Len())

	if err := os.MkdirAll(b.outputDir, os.ModePerm); err != nil {
		return report, fmt.Errorf("failed to create output directory '%s': %w", b.outputDir, err)
	}

	n, err := b.copyStatic()
	if err != nil {
		return report, fmt.Errorf("failed to copy static assets: %w", err)
	}
	report.Files += n

	var buf bytes.Buffer
	if err := b.renderer.Home(&buf); err != nil {
		return report, err
	}
	if err := b.write(IndexFile, buf.Bytes()); err != nil {
		return report, err
	}
	report.Files++

	for _, slug := range b.cat.Routes() {
		buf.Reset()
		if err := b.renderer.City(&buf, slug); err != nil {
			return report, fmt.Errorf("failed to render city %q: %w", slug, err)
		}
		if err := b.write(filepath.Join(CityDir, slug, IndexFile), buf.Bytes()); err != nil {
			return report, err
		}
		report.Routes = append(report.Routes, slug)
		report.Files++
		b.logger.Debug("generated city page", "slug", slug, "path", catalog.CityPath(slug))
	}

	buf.Reset()
	if err := b.renderer.NotFound(&buf); err != nil {
		return report, err
	}
	if err := b.write(NotFoundFile, buf.Bytes()); err != nil {
		return report, err
	}
	report.Files++

	buf.Reset()
	if err := sitemap.WriteXML(&buf, sitemap.Build(b.cat, b.baseURL, b.now())); err != nil {
		return report, err
	}
	if err := b.write(SitemapFile, buf.Bytes()); err != nil {
		return report, err
	}
	report.Files++

	pruned, err := b.prune(report.Routes)
	if err != nil {
		return report, err
	}
	report.Pruned = pruned

	report.Duration = time.Since(start)
	b.logger.Info("build complete",
		"routes", len(report.Routes),
		"files", report.Files,
		"pruned", len(report.Pruned),
		"duration", report.Duration.String())
	return report, nil
}

func (b *Builder) write(rel string, data []byte) error {
	dst := filepath.Join(b.outputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", dst, err)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write '%s': %w", dst, err)
	}
	if err := os.Chmod(dst, filePerm); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", dst, err)
	}
	return nil
}

// copyStatic mirrors the embedded static tree into the output directory.
func (b *Builder) copyStatic() (int, error) {
	count := 0
	err := fs.WalkDir(staticFS, StaticDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := staticFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read embedded asset %s: %w", p, err)
		}
		if err := b.write(filepath.FromSlash(p), data); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

// prune removes city directories whose slug is no longer in the catalog.
func (b *Builder) prune(routes []string) ([]string, error) {
	keep := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		keep[r] = struct{}{}
	}

	dir := filepath.Join(b.outputDir, CityDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list '%s': %w", dir, err)
	}

	var pruned []string
	for _, e := range entries {
		if _, ok := keep[e.Name()]; ok {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return pruned, fmt.Errorf("failed to remove stale page '%s': %w", e.Name(), err)
		}
		pruned = append(pruned, e.Name())
		b.logger.Info("removed stale city page", "slug", e.Name())
	}
	return pruned, nil
}

// StaticAsset reports whether urlPath names a file under the static prefix.
func StaticAsset(urlPath string) bool {
	clean := path.Clean(urlPath)
	return strings.HasPrefix(clean, "/"+StaticDir+"/")
}
