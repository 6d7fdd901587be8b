package model

import (
	"html/template"

	"github.com/Bitlatte/auraspaces/internal/seo"
)

// PageData is shared by every layout.
type PageData struct {
	Meta           seo.Metadata
	StructuredData template.JS
	Lang           string
}

// HomePage is the view model of "/".
type HomePage struct {
	PageData
	CityOptions  []Option
	Services     []Card
	Cities       []CityCard
	Reasons      []Card
	FooterCities string
	FooterPhone  string
}

// CityPage is the view model of a city landing page.
type CityPage struct {
	PageData
	Name           string
	Intro          template.HTML
	StartingPrice  string
	Phone          string
	ServiceOptions []Option
	Services       []Card
	Proof          []Card
	OtherCities    []CityCard
}

// NotFoundPage is rendered for unknown routes.
type NotFoundPage struct {
	PageData
	Cities []CityCard
}
