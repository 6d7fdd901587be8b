package catalog

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	servicesFile = "services.yaml"
	citiesDir    = "cities"
)

// cityFrontmatter is the YAML header of a content/cities/*.md file.
type cityFrontmatter struct {
	Slug          string   `yaml:"slug"`
	Name          string   `yaml:"name"`
	Highlight     string   `yaml:"highlight"`
	StartingPrice string   `yaml:"startingPrice"`
	Phone         string   `yaml:"phone"`
	Areas         []string `yaml:"areas"`
	Rating        string   `yaml:"rating"`
	Order         int      `yaml:"order"`
	Updated       string   `yaml:"updated"`
}

type servicesDoc struct {
	Services []string `yaml:"services"`
}

var updatedFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadDir builds a catalog from a content directory laid out as
//
//	services.yaml        optional, "services: [...]"
//	cities/<slug>.md     front matter record, Markdown body as intro
//
// Cities are ordered by their "order" key, then by file name.
func LoadDir(dir string) (*Catalog, error) {
	services, err := loadServices(filepath.Join(dir, servicesFile))
	if err != nil {
		return nil, err
	}

	cityDir := filepath.Join(dir, citiesDir)
	entries, err := os.ReadDir(cityDir)
	if err != nil {
		return nil, fmt.Errorf("read cities directory '%s': %w", cityDir, err)
	}

	type ordered struct {
		city  City
		order int
		file  string
	}
	var loaded []ordered
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		path := filepath.Join(cityDir, entry.Name())
		city, order, err := loadCityFile(path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ordered{city: city, order: order, file: entry.Name()})
	}

	slices.SortStableFunc(loaded, func(a, b ordered) int {
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.file, b.file)
	})

	cities := make([]City, len(loaded))
	for i, l := range loaded {
		cities[i] = l.city
	}
	return New(cities, services)
}

func loadServices(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return slices.Clone(DefaultServices), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read services file '%s': %w", path, err)
	}

	var doc servicesDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse services file '%s': %w", path, err)
	}
	return doc.Services, nil
}

func loadCityFile(path string) (City, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return City{}, 0, fmt.Errorf("read city file '%s': %w", path, err)
	}

	var fm cityFrontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &fm)
	if err != nil {
		return City{}, 0, fmt.Errorf("parse front matter of '%s': %w", path, err)
	}

	slug := fm.Slug
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := fm.Name
	if name == "" {
		name = titleFromSlug(slug)
	}

	var updated time.Time
	if fm.Updated != "" {
		updated, err = parseUpdated(fm.Updated)
		if err != nil {
			return City{}, 0, fmt.Errorf("city file '%s': %w", path, err)
		}
	}

	return City{
		Slug:          slug,
		Name:          name,
		Highlight:     fm.Highlight,
		StartingPrice: fm.StartingPrice,
		Phone:         fm.Phone,
		Areas:         fm.Areas,
		Rating:        fm.Rating,
		Intro:         strings.TrimSpace(string(body)),
		UpdatedAt:     updated,
	}, fm.Order, nil
}

func titleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}

func parseUpdated(value string) (time.Time, error) {
	for _, layout := range updatedFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised updated date %q, use YYYY-MM-DD or RFC3339", value)
}
