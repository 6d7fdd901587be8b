package model

import (
	"strings"

	"github.com/Bitlatte/auraspaces/internal/catalog"
)

// previewAreas is how many neighborhoods a city card lists.
const previewAreas = 3

// CityCard is a link to a city landing page as shown in grids and cross-links.
type CityCard struct {
	Slug          string
	Name          string
	Path          string
	Highlight     string
	StartingPrice string
	TopAreas      string
}

// NewCityCard summarises city for a card.
func NewCityCard(city catalog.City) CityCard {
	return CityCard{
		Slug:          city.Slug,
		Name:          city.Name,
		Path:          city.Path(),
		Highlight:     city.Highlight,
		StartingPrice: city.StartingPrice,
		TopAreas:      strings.Join(city.TopAreas(previewAreas), ", "),
	}
}

// Option is an entry in a form select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CityOptions feeds the home consultation form. The first city is selected.
func CityOptions(cities []catalog.City) []Option {
	opts := make([]Option, len(cities))
	for i, c := range cities {
		opts[i] = Option{Value: c.Slug, Label: c.Name, Selected: i == 0}
	}
	return opts
}

// ServiceOptions feeds the city quote form. The first service is selected.
func ServiceOptions(services []string) []Option {
	opts := make([]Option, len(services))
	for i, s := range services {
		opts[i] = Option{Value: s, Label: s, Selected: i == 0}
	}
	return opts
}

// Card is a titled blurb.
type Card struct {
	Title string
	Body  string
}
