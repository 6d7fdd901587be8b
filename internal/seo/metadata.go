// Package seo builds the per-page metadata and schema.org structured data for
// the studio's landing pages.
package seo

import (
	"fmt"

	"github.com/Bitlatte/auraspaces/internal/catalog"
)

// Brand is appended to city page titles.
const Brand = "AuraSpaces"

const (
	fallbackTitle       = "Interior Design Studio"
	fallbackDescription = "Premium interior design services."

	homeTitle       = Brand + " | Interior Design Studio"
	homeDescription = "Premium interior design studio delivering modular kitchens, luxury interiors, and turnkey execution across Maharashtra."
)

// OpenGraph holds the social preview fields.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
}

// Metadata is everything a page head needs.
type Metadata struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// ForCity builds the metadata of a city landing page. A nil city yields the
// generic studio metadata so that a missing record still renders a stable head.
func ForCity(city *catalog.City) Metadata {
	if city == nil {
		return Metadata{
			Title:       fallbackTitle,
			Description: fallbackDescription,
		}
	}

	return Metadata{
		Title:       fmt.Sprintf("Interior Design in %s | %s", city.Name, Brand),
		Description: fmt.Sprintf("Interior design services in %s for residential and commercial projects. Packages from %s.", city.Name, city.StartingPrice),
		OG: OpenGraph{
			Title:       "Interior Design in " + city.Name,
			Description: city.Highlight,
		},
	}
}

// Home is the metadata of the landing page. A non-empty title overrides the
// default one.
func Home(title string) Metadata {
	if title == "" {
		title = homeTitle
	}
	return Metadata{
		Title:       title,
		Description: homeDescription,
		OG: OpenGraph{
			Title:       title,
			Description: homeDescription,
		},
	}
}

// WithCanonical returns a copy of m pointing at url as the canonical and
// og:url address.
func (m Metadata) WithCanonical(url string) Metadata {
	m.Canonical = url
	m.OG.URL = url
	return m
}
