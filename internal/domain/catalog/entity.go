// internal/domain/catalog/entity.go
package catalog

// ProductType classifies a bookable product
type ProductType string

const (
	TypeCar           ProductType = "car"
	TypeAccommodation ProductType = "accommodation"
	TypeTour          ProductType = "tour"
	TypeGuide         ProductType = "guide"
)

// Product represents a catalog entry. Products are defined at process
// start and never mutated.
type Product struct {
	ID             string      `json:"id"`
	Type           ProductType `json:"type"`
	Name           string      `json:"name"`
	Price          float64     `json:"price"` // Base price per unit (per day for cars and guides)
	Image          string      `json:"image"`
	GuideSpecialty string      `json:"guideSpecialty,omitempty"`
}

// Destination represents a safari destination shown on the destinations
// directory pages
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Guide represents a tour guide profile. The bookable guide product
// carries the same id prefixed with "guide-".
type Guide struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Specialty  string   `json:"specialty"`
	Location   string   `json:"location"`
	Image      string   `json:"image"`
	Languages  []string `json:"languages"`
	Experience int      `json:"experience"` // Years of guiding
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Price      float64  `json:"price"` // Per day
	Bio        string   `json:"bio"`
}
