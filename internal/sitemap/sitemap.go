// Package sitemap lists the site's public URLs for search engines.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Bitlatte/auraspaces/internal/catalog"
)

const (
	// ChangeWeekly is the change frequency reported for every entry.
	ChangeWeekly = "weekly"

	// HomePriority is the priority of the home entry.
	HomePriority = 1.0
	// CityPriority is the priority of each city landing page.
	CityPriority = 0.8
)

// Entry is one sitemap URL.
type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// Build returns the home entry followed by one entry per city in catalog
// order. Entries are stamped with now unless the city records its own
// UpdatedAt.
func Build(cat *catalog.Catalog, baseURL string, now time.Time) []Entry {
	cities := cat.Cities()
	entries := make([]Entry, 0, len(cities)+1)
	entries = append(entries, Entry{
		URL:             baseURL,
		LastModified:    now,
		ChangeFrequency: ChangeWeekly,
		Priority:        HomePriority,
	})

	root := strings.TrimSuffix(baseURL, "/")
	for _, city := range cities {
		modified := now
		if !city.UpdatedAt.IsZero() {
			modified = city.UpdatedAt
		}
		entries = append(entries, Entry{
			URL:             root + city.Path(),
			LastModified:    modified,
			ChangeFrequency: ChangeWeekly,
			Priority:        CityPriority,
		})
	}
	return entries
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML encodes entries as a sitemaps.org urlset document.
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]url, len(entries)),
	}
	for i, e := range entries {
		u := url{
			Loc:        e.URL,
			ChangeFreq: e.ChangeFrequency,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		set.URLs[i] = u
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}
