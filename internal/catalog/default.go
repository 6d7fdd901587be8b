package catalog

// DefaultServices are offered in every city.
var DefaultServices = []string{
	"Residential interiors",
	"Commercial design",
	"Modular kitchens",
	"3D visualisation",
	"Turnkey execution",
}

var defaultCities = []City{
	{
		Slug:          "nashik",
		Name:          "Nashik",
		Highlight:     "Luxury home interiors with vastu-ready planning.",
		StartingPrice: "₹4.5L",
		Phone:         "+91 90000 12345",
		Areas:         []string{"Gangapur Road", "College Road", "Cidco", "Indira Nagar"},
		Rating:        "4.9",
	},
	{
		Slug:          "pune",
		Name:          "Pune",
		Highlight:     "Modern minimal design for premium apartments.",
		StartingPrice: "₹5.2L",
		Phone:         "+91 90000 12346",
		Areas:         []string{"Koregaon Park", "Kothrud", "Baner", "Hinjewadi"},
		Rating:        "4.8",
	},
	{
		Slug:          "nagpur",
		Name:          "Nagpur",
		Highlight:     "Smart storage solutions for growing families.",
		StartingPrice: "₹4.1L",
		Phone:         "+91 90000 12347",
		Areas:         []string{"Civil Lines", "Dharampeth", "Manish Nagar", "Trimurti Nagar"},
		Rating:        "4.8",
	},
}

// Default returns the studio's built-in catalog.
func Default() *Catalog {
	return MustNew(defaultCities, DefaultServices)
}
