// Package catalog holds the city table every page, metadata block and sitemap
// entry is generated from.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// CityPathPrefix is the URL prefix of every city landing page.
const CityPathPrefix = "/interior-design/"

var (
	// ErrNotFound is returned by Resolve when no city has the requested slug.
	ErrNotFound = errors.New("city not found")
	// ErrInvalidSlug reports a slug that cannot be used verbatim in a URL path.
	ErrInvalidSlug = errors.New("invalid city slug")
	// ErrDuplicateSlug reports two cities sharing a slug.
	ErrDuplicateSlug = errors.New("duplicate city slug")
)

// City is a single landing-page record. Every field except Intro and UpdatedAt
// is display text and is never parsed.
type City struct {
	Slug          string
	Name          string
	Highlight     string
	StartingPrice string
	Phone         string
	Areas         []string
	Rating        string

	// Intro is optional Markdown shown in place of the default hero copy.
	Intro string
	// UpdatedAt is the last edit of the record. Zero when unknown.
	UpdatedAt time.Time
}

// TopAreas returns at most n areas in display order.
func (c City) TopAreas(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(c.Areas) {
		n = len(c.Areas)
	}
	return slices.Clone(c.Areas[:n])
}

// Path is the URL path of the city's landing page.
func (c City) Path() string {
	return CityPath(c.Slug)
}

func (c City) clone() City {
	c.Areas = slices.Clone(c.Areas)
	if c.Areas == nil {
		c.Areas = []string{}
	}
	return c
}

// CityPath builds the landing-page path for slug.
func CityPath(slug string) string {
	return CityPathPrefix + slug
}

// Catalog is an immutable, ordered set of cities and services. It is safe for
// concurrent use since nothing mutates it after New returns.
type Catalog struct {
	cities   []City
	services []string
}

// New validates the records and returns a catalog holding copies of them.
func New(cities []City, services []string) (*Catalog, error) {
	seen := make(map[string]struct{}, len(cities))
	owned := make([]City, 0, len(cities))
	for i, c := range cities {
		if err := ValidateSlug(c.Slug); err != nil {
			return nil, fmt.Errorf("city #%d (%q): %w", i, c.Name, err)
		}
		if _, dup := seen[c.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, c.Slug)
		}
		seen[c.Slug] = struct{}{}
		owned = append(owned, c.clone())
	}

	svc := slices.Clone(services)
	if svc == nil {
		svc = []string{}
	}
	return &Catalog{cities: owned, services: svc}, nil
}

// MustNew is New for tables defined in code; it panics on invalid input.
func MustNew(cities []City, services []string) *Catalog {
	c, err := New(cities, services)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidateSlug checks that slug is non-empty, lowercase and path safe.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSlug)
	}
	if slug != strings.ToLower(slug) {
		return fmt.Errorf("%w: %q is not lowercase", ErrInvalidSlug, slug)
	}
	if strings.ContainsAny(slug, "/\\?#%& \t\r\n") || slug == "." || slug == ".." {
		return fmt.Errorf("%w: %q contains path characters", ErrInvalidSlug, slug)
	}
	return nil
}

// Cities returns the city records in catalog order.
func (c *Catalog) Cities() []City {
	out := make([]City, len(c.cities))
	for i, city := range c.cities {
		out[i] = city.clone()
	}
	return out
}

// Services returns the service names in display order.
func (c *Catalog) Services() []string {
	return slices.Clone(c.services)
}

// Len is the number of cities.
func (c *Catalog) Len() int {
	return len(c.cities)
}

// Routes returns one route key per city, in catalog order. Every key resolves.
func (c *Catalog) Routes() []string {
	routes := make([]string, len(c.cities))
	for i, city := range c.cities {
		routes[i] = city.Slug
	}
	return routes
}

// Resolve finds the city whose slug equals slug exactly. The match is case
// sensitive; an unknown slug yields an error wrapping ErrNotFound.
func (c *Catalog) Resolve(slug string) (City, error) {
	for _, city := range c.cities {
		if city.Slug == slug {
			return city.clone(), nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}
