package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func TestBuildShape(t *testing.T) {
	cat := catalog.Default()
	entries := Build(cat, "https://auraspaces.example", now)

	require.Len(t, entries, cat.Len()+1)
	assert.Equal(t, "https://auraspaces.example", entries[0].URL)
	assert.Equal(t, 1.0, entries[0].Priority)
	for i, e := range entries[1:] {
		assert.Equal(t, 0.8, e.Priority)
		assert.Equal(t, "weekly", e.ChangeFrequency)
		assert.Equal(t, "https://auraspaces.example/interior-design/"+cat.Routes()[i], e.URL)
	}
}

func TestBuildSingleCity(t *testing.T) {
	cat := catalog.MustNew([]catalog.City{{Slug: "nashik", Name: "Nashik", StartingPrice: "₹4.5L"}}, nil)

	entries := Build(cat, "https://x.test", now)
	assert.Equal(t, []Entry{
		{URL: "https://x.test", LastModified: now, ChangeFrequency: "weekly", Priority: 1.0},
		{URL: "https://x.test/interior-design/nashik", LastModified: now, ChangeFrequency: "weekly", Priority: 0.8},
	}, entries)
}

func TestBuildTrailingSlash(t *testing.T) {
	cat := catalog.MustNew([]catalog.City{{Slug: "pune"}}, nil)
	entries := Build(cat, "https://x.test/", now)
	assert.Equal(t, "https://x.test/", entries[0].URL)
	assert.Equal(t, "https://x.test/interior-design/pune", entries[1].URL)
}

func TestBuildUsesRecordedUpdate(t *testing.T) {
	edited := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cat := catalog.MustNew([]catalog.City{
		{Slug: "pune", UpdatedAt: edited},
		{Slug: "nagpur"},
	}, nil)

	entries := Build(cat, "https://x.test", now)
	assert.Equal(t, now, entries[0].LastModified)
	assert.Equal(t, edited, entries[1].LastModified)
	assert.Equal(t, now, entries[2].LastModified)
}

func TestBuildIdempotent(t *testing.T) {
	cat := catalog.Default()
	assert.Equal(t, Build(cat, "https://x.test", now), Build(cat, "https://x.test", now))
}

func TestWriteXML(t *testing.T) {
	cat := catalog.MustNew([]catalog.City{{Slug: "nashik"}}, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, Build(cat, "https://x.test", now)))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	var decoded struct {
		URLs []struct {
			Loc        string `xml:"loc"`
			LastMod    string `xml:"lastmod"`
			ChangeFreq string `xml:"changefreq"`
			Priority   string `xml:"priority"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.URLs, 2)
	assert.Equal(t, "https://x.test", decoded.URLs[0].Loc)
	assert.Equal(t, "1.0", decoded.URLs[0].Priority)
	assert.Equal(t, "2026-10-16T09:30:00Z", decoded.URLs[0].LastMod)
	assert.Equal(t, "https://x.test/interior-design/nashik", decoded.URLs[1].Loc)
	assert.Equal(t, "0.8", decoded.URLs[1].Priority)
	assert.Equal(t, "weekly", decoded.URLs[1].ChangeFreq)
}
