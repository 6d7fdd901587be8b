package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nashikOnly(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New([]City{{
		Slug:          "nashik",
		Name:          "Nashik",
		Highlight:     "Luxury home interiors with vastu-ready planning.",
		StartingPrice: "₹4.5L",
		Phone:         "+91 90000 12345",
		Areas:         []string{"Gangapur Road", "College Road", "Cidco", "Indira Nagar"},
		Rating:        "4.9",
	}}, []string{"Modular kitchens"})
	require.NoError(t, err)
	return cat
}

func TestEveryRouteResolves(t *testing.T) {
	cat := Default()
	routes := cat.Routes()
	require.Len(t, routes, cat.Len())

	for _, slug := range routes {
		city, err := cat.Resolve(slug)
		require.NoError(t, err, "route %q", slug)
		assert.Equal(t, slug, city.Slug)
	}
}

func TestRoutesFollowCatalogOrder(t *testing.T) {
	assert.Equal(t, []string{"nashik", "pune", "nagpur"}, Default().Routes())
}

func TestResolveUnknownSlug(t *testing.T) {
	cat := Default()
	for _, slug := range []string{"mumbai", "", "Nashik", "NASHIK", " nashik", "nashik/", "interior-design/nashik"} {
		_, err := cat.Resolve(slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestResolveSingleCityScenario(t *testing.T) {
	cat := nashikOnly(t)

	city, err := cat.Resolve("nashik")
	require.NoError(t, err)
	assert.Equal(t, "Nashik", city.Name)
	assert.Equal(t, "₹4.5L", city.StartingPrice)

	_, err = cat.Resolve("mumbai")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewRejectsBadSlugs(t *testing.T) {
	tests := map[string]struct {
		cities []City
		want   error
	}{
		"empty":     {[]City{{Slug: ""}}, ErrInvalidSlug},
		"uppercase": {[]City{{Slug: "Pune"}}, ErrInvalidSlug},
		"slash":     {[]City{{Slug: "pune/west"}}, ErrInvalidSlug},
		"space":     {[]City{{Slug: "navi mumbai"}}, ErrInvalidSlug},
		"dotdot":    {[]City{{Slug: ".."}}, ErrInvalidSlug},
		"duplicate": {[]City{{Slug: "pune"}, {Slug: "pune"}}, ErrDuplicateSlug},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.cities, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	areas := []string{"Kothrud", "Baner"}
	cat, err := New([]City{{Slug: "pune", Name: "Pune", Areas: areas}}, []string{"Turnkey execution"})
	require.NoError(t, err)

	areas[0] = "changed"
	cities := cat.Cities()
	cities[0].Name = "changed"
	cities[0].Areas[1] = "changed"
	services := cat.Services()
	services[0] = "changed"
	resolved, err := cat.Resolve("pune")
	require.NoError(t, err)
	resolved.Areas[0] = "changed"

	again, err := cat.Resolve("pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", again.Name)
	assert.Equal(t, []string{"Kothrud", "Baner"}, again.Areas)
	assert.Equal(t, []string{"Turnkey execution"}, cat.Services())
}

func TestListingIsDeterministic(t *testing.T) {
	cat := Default()
	assert.Equal(t, cat.Cities(), cat.Cities())
	assert.Equal(t, cat.Services(), cat.Services())
	assert.Equal(t, DefaultServices, cat.Services())
}

func TestTopAreas(t *testing.T) {
	city := City{Areas: []string{"Civil Lines", "Dharampeth", "Manish Nagar", "Trimurti Nagar"}}
	assert.Equal(t, []string{"Civil Lines", "Dharampeth", "Manish Nagar"}, city.TopAreas(3))
	assert.Equal(t, []string{"Civil Lines"}, City{Areas: []string{"Civil Lines"}}.TopAreas(3))
	assert.Empty(t, city.TopAreas(0))
}

func TestCityPath(t *testing.T) {
	assert.Equal(t, "/interior-design/nagpur", CityPath("nagpur"))
	assert.Equal(t, "/interior-design/pune", City{Slug: "pune"}.Path())
}
