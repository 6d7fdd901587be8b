// Package site renders the studio's pages and materializes them to disk.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/Bitlatte/auraspaces/internal/model"
	"github.com/Bitlatte/auraspaces/internal/seo"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	baseLayout       = "base.gohtml"
	homeTemplate     = "home.gohtml"
	cityTemplate     = "city.gohtml"
	notFoundTemplate = "notfound.gohtml"

	projectsDelivered = 120

	homeServiceBlurb = "Dedicated project manager, in-house execution, and weekly milestone updates."
	cityServiceBlurb = "City-specific material sourcing, smart space planning, and local project coordination."
	proofBlurb       = "Verified project documentation and client walkthroughs available on request."
	reasonBlurb      = "We combine local expertise with national-grade design systems to deliver predictable outcomes."
)

var reasons = []string{
	"Dedicated CRM for every lead",
	"On-site measurements in 48 hours",
	"Transparent pricing & timelines",
	"High-end material library",
}

// Renderer turns catalog records into complete HTML documents.
type Renderer struct {
	cat       *catalog.Catalog
	baseURL   string
	siteTitle string
	md        goldmark.Markdown
	pages     map[string]*template.Template
}

// NewRenderer parses the embedded layouts. Each page template is parsed on its
// own clone of the base layout so that every page can define "content".
func NewRenderer(cat *catalog.Catalog, baseURL, siteTitle string) (*Renderer, error) {
	base, err := template.New(baseLayout).ParseFS(templateFS, "templates/"+baseLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base layout: %w", err)
	}

	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{homeTemplate, cityTemplate, notFoundTemplate} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = clone
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	return &Renderer{
		cat:       cat,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		siteTitle: siteTitle,
		md:        md,
		pages:     pages,
	}, nil
}

func (r *Renderer) execute(w io.Writer, page string, data any) error {
	var buf bytes.Buffer
	if err := r.pages[page].ExecuteTemplate(&buf, baseLayout, data); err != nil {
		return fmt.Errorf("failed to execute %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) url(path string) string {
	return r.baseURL + path
}

// Home renders "/".
func (r *Renderer) Home(w io.Writer) error {
	cities := r.cat.Cities()

	cards := make([]model.CityCard, len(cities))
	names := make([]string, len(cities))
	for i, c := range cities {
		cards[i] = model.NewCityCard(c)
		names[i] = c.Name
	}
	phone := ""
	if len(cities) > 0 {
		phone = cities[0].Phone
	}

	reasonCards := make([]model.Card, len(reasons))
	for i, title := range reasons {
		reasonCards[i] = model.Card{Title: title, Body: reasonBlurb}
	}

	data := model.HomePage{
		PageData: model.PageData{
			Meta: seo.Home(r.siteTitle).WithCanonical(r.url("/")),
			Lang: "en",
		},
		CityOptions:  model.CityOptions(cities),
		Services:     serviceCards(r.cat.Services(), homeServiceBlurb),
		Cities:       cards,
		Reasons:      reasonCards,
		FooterCities: strings.Join(names, ", "),
		FooterPhone:  phone,
	}
	return r.execute(w, homeTemplate, data)
}

// City renders the landing page of slug. An unknown slug returns an error
// wrapping catalog.ErrNotFound and writes nothing.
func (r *Renderer) City(w io.Writer, slug string) error {
	city, err := r.cat.Resolve(slug)
	if err != nil {
		return err
	}

	ld, err := seo.LocalBusinessFor(city).JSON()
	if err != nil {
		return err
	}

	var intro template.HTML
	if city.Intro != "" {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(city.Intro), &buf); err != nil {
			return fmt.Errorf("failed to convert intro of %s: %w", slug, err)
		}
		intro = template.HTML(buf.String())
	}

	var others []model.CityCard
	for _, c := range r.cat.Cities() {
		if c.Slug != city.Slug {
			others = append(others, model.NewCityCard(c))
		}
	}

	proof := []model.Card{
		{Title: fmt.Sprintf("%d+ projects delivered in %s", projectsDelivered, city.Name), Body: proofBlurb},
		{Title: city.Rating + "★ average rating on Google", Body: proofBlurb},
		{Title: "Dedicated on-site design manager", Body: proofBlurb},
	}

	data := model.CityPage{
		PageData: model.PageData{
			Meta:           seo.ForCity(&city).WithCanonical(r.url(city.Path())),
			StructuredData: template.JS(ld),
			Lang:           "en",
		},
		Name:           city.Name,
		Intro:          intro,
		StartingPrice:  city.StartingPrice,
		Phone:          city.Phone,
		ServiceOptions: model.ServiceOptions(r.cat.Services()),
		Services:       serviceCards(r.cat.Services(), cityServiceBlurb),
		Proof:          proof,
		OtherCities:    others,
	}
	return r.execute(w, cityTemplate, data)
}

// NotFound renders the page served for unknown routes.
func (r *Renderer) NotFound(w io.Writer) error {
	cities := r.cat.Cities()
	cards := make([]model.CityCard, len(cities))
	for i, c := range cities {
		cards[i] = model.NewCityCard(c)
	}

	data := model.NotFoundPage{
		PageData: model.PageData{
			Meta: seo.ForCity(nil),
			Lang: "en",
		},
		Cities: cards,
	}
	return r.execute(w, notFoundTemplate, data)
}

func serviceCards(services []string, blurb string) []model.Card {
	cards := make([]model.Card, len(services))
	for i, s := range services {
		cards[i] = model.Card{Title: s, Body: blurb}
	}
	return cards
}
