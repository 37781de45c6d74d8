// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/safari-backend/internal/domain/catalog"
)

// Item is one line in the cart. A line is keyed by
// (id, startDate, endDate, numberOfPeople): adding the same key again
// merges into the existing line instead of appending a new one.
type Item struct {
	ID             string              `json:"id"`
	Type           catalog.ProductType `json:"type"`
	Name           string              `json:"name"`
	Price          float64             `json:"price"` // Effective unit price; may differ from catalog when custom pricing applies
	Image          string              `json:"image"`
	Quantity       int                 `json:"quantity"`
	StartDate      string              `json:"startDate,omitempty"`
	EndDate        string              `json:"endDate,omitempty"`
	NumberOfPeople int                 `json:"numberOfPeople,omitempty"`
	Days           int                 `json:"days,omitempty"`
	CustomName     string              `json:"customName,omitempty"`
	GuideSpecialty string              `json:"guideSpecialty,omitempty"`
}

// matchesKey reports whether the line matches the merge key of an add
func (i *Item) matchesKey(productID, startDate, endDate string, numberOfPeople int) bool {
	return i.ID == productID &&
		i.StartDate == startDate &&
		i.EndDate == endDate &&
		i.NumberOfPeople == numberOfPeople
}

// Cart is the persisted snapshot: ordered line items plus a derived
// total. Total is always recomputed from the items, never mutated
// independently.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{Items: []Item{}}
}

// recalculate recomputes the derived total as sum(price x quantity)
func (c *Cart) recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
}

// IsEmpty reports whether the cart holds no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Summary is a derived read-only view of the cart used by the header
// badge and the checkout sidebar
type Summary struct {
	TotalItems        int                            `json:"totalItems"` // Quantity-weighted
	TotalPrice        float64                        `json:"totalPrice"`
	ItemsByType       map[catalog.ProductType][]Item `json:"itemsByType"`
	HasCars           bool                           `json:"hasCars"`
	HasAccommodations bool                           `json:"hasAccommodations"`
	HasTours          bool                           `json:"hasTours"`
	HasGuides         bool                           `json:"hasGuides"`
}

// Summarize groups the cart by product type. Pure function of the
// cart's current state.
func (c *Cart) Summarize() Summary {
	s := Summary{
		TotalPrice:  c.Total,
		ItemsByType: make(map[catalog.ProductType][]Item),
	}
	for _, item := range c.Items {
		s.TotalItems += item.Quantity
		s.ItemsByType[item.Type] = append(s.ItemsByType[item.Type], item)
		switch item.Type {
		case catalog.TypeCar:
			s.HasCars = true
		case catalog.TypeAccommodation:
			s.HasAccommodations = true
		case catalog.TypeTour:
			s.HasTours = true
		case catalog.TypeGuide:
			s.HasGuides = true
		}
	}
	return s
}
