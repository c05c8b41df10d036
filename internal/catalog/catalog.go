// Package catalog is the compiled-in restaurant content: identity, menu and
// locations. Nothing here is computed or editable at runtime.
package catalog

const (
	RestaurantName = "MiCasa"
	Tagline        = "The award winning Catalonyan fine dining Restaurant & Bar"
	MenuIntro      = "Experience the finest Spanish specialties, reimagined for a modern palate."
	LocationsIntro = "Here you will later see addresses, maps and opening hours."
)

// MenuItem is one dish card.
type MenuItem struct {
	Name        string
	Description string
	Price       string
}

// Location is a labelled map pin.
type Location struct {
	Label     string
	Latitude  float64
	Longitude float64
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Region is the visible map window around Center.
type Region struct {
	Center         Coordinate
	LatitudeDelta  float64
	LongitudeDelta float64
}

// Bounds returns the south-west and north-east corners.
func (r Region) Bounds() (sw, ne Coordinate) {
	halfLat, halfLon := r.LatitudeDelta/2, r.LongitudeDelta/2
	sw = Coordinate{Latitude: r.Center.Latitude - halfLat, Longitude: r.Center.Longitude - halfLon}
	ne = Coordinate{Latitude: r.Center.Latitude + halfLat, Longitude: r.Center.Longitude + halfLon}
	return sw, ne
}

// Contains reports whether the point falls inside the region, edges included.
func (r Region) Contains(lat, lon float64) bool {
	sw, ne := r.Bounds()
	return lat >= sw.Latitude && lat <= ne.Latitude && lon >= sw.Longitude && lon <= ne.Longitude
}

var menu = []MenuItem{
	{
		Name:        "Pulpo a la Gallega",
		Description: "Galician-style octopus, tender and smoky, served with saffron potatoes, smoked paprika oil, and Maldon salt.",
		Price:       "€29",
	},
	{
		Name:        "Paella de Mariscos",
		Description: "Classic seafood paella with Mediterranean prawns, calamari, mussels, and bomba rice infused with saffron.",
		Price:       "€34",
	},
	{
		Name:        "Cochinillo Asado",
		Description: "Crispy slow-roasted suckling pig with apple purée and sherry reduction.",
		Price:       "€38",
	},
	{
		Name:        "Chuleta de Buey",
		Description: "Aged rib steak, fire-grilled, served with pimientos de padrón and rosemary salt.",
		Price:       "€44",
	},
	{
		Name:        "Gazpacho Andaluz",
		Description: "Chilled Andalusian tomato soup with green olive oil and sourdough crisps.",
		Price:       "€14",
	},
	{
		Name:        "Crema Catalana",
		Description: "Traditional Catalan cream with caramelized sugar crust and Valencia orange zest.",
		Price:       "€12",
	},
}

var locations = []Location{
	{Label: "Plaça Catalunya", Latitude: 41.387, Longitude: 2.170},
	{Label: "Sagrada Família", Latitude: 41.403, Longitude: 2.174},
	{Label: "Barceloneta", Latitude: 41.380, Longitude: 2.185},
}

var mapRegion = Region{
	Center:         Coordinate{Latitude: 41.390, Longitude: 2.176},
	LatitudeDelta:  0.04,
	LongitudeDelta: 0.03,
}

// Menu returns the dishes in display order.
func Menu() []MenuItem { return append([]MenuItem(nil), menu...) }

// Locations returns the map pins.
func Locations() []Location { return append([]Location(nil), locations...) }

// MapRegion is the initial window of the locations map.
func MapRegion() Region { return mapRegion }
