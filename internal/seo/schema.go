package seo

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Bitlatte/auraspaces/internal/catalog"
)

// ReviewCount is the review total published with every city's rating.
const ReviewCount = 120

// PostalAddress is the schema.org address of a studio.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressCountry  string `json:"addressCountry"`
}

// AggregateRating is the schema.org rating summary.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount int    `json:"reviewCount"`
}

// LocalBusiness is the JSON-LD object embedded in city pages.
type LocalBusiness struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	Address         PostalAddress   `json:"address"`
	Telephone       string          `json:"telephone"`
	AggregateRating AggregateRating `json:"aggregateRating"`
	AreaServed      []string        `json:"areaServed"`
}

// LocalBusinessFor describes the studio serving city.
func LocalBusinessFor(city catalog.City) LocalBusiness {
	areas := slices.Clone(city.Areas)
	if areas == nil {
		areas = []string{}
	}

	return LocalBusiness{
		Context: "https://schema.org",
		Type:    "LocalBusiness",
		Name:    Brand + " Interior Design - " + city.Name,
		Address: PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: city.Name,
			AddressCountry:  "IN",
		},
		Telephone: city.Phone,
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: city.Rating,
			ReviewCount: ReviewCount,
		},
		AreaServed: areas,
	}
}

// JSON encodes the object on a single line. HTML-significant characters are
// escaped so the result can sit inside a script element.
func (lb LocalBusiness) JSON() (string, error) {
	b, err := json.Marshal(lb)
	if err != nil {
		return "", fmt.Errorf("encode local business: %w", err)
	}
	return string(b), nil
}
