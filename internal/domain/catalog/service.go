// internal/domain/catalog/service.go
package catalog

import "errors"

// ErrNotFound is returned when a product, destination or guide id is unknown
var ErrNotFound = errors.New("not found")

// Service exposes read-only catalog lookups
type Service struct{}

// NewService creates a new catalog service
func NewService() *Service {
	return &Service{}
}

// Get resolves a product by id
func (s *Service) Get(id string) (*Product, error) {
	p, ok := products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List returns all products in display order
func (s *Service) List() []Product {
	out := make([]Product, 0, len(productOrder))
	for _, id := range productOrder {
		out = append(out, products[id])
	}
	return out
}

// ListByType returns all products of the given type in display order
func (s *Service) ListByType(t ProductType) []Product {
	var out []Product
	for _, id := range productOrder {
		if p := products[id]; p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// Destinations returns the destination directory
func (s *Service) Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Destination resolves a destination by id
func (s *Service) Destination(id string) (*Destination, error) {
	for i := range destinations {
		if destinations[i].ID == id {
			d := destinations[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

// Guides returns the tour guide directory
func (s *Service) Guides() []Guide {
	out := make([]Guide, len(guides))
	copy(out, guides)
	return out
}

// Guide resolves a guide profile by id
func (s *Service) Guide(id string) (*Guide, error) {
	for i := range guides {
		if guides[i].ID == id {
			g := guides[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}
