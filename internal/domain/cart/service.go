// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/your-org/safari-backend/internal/domain/catalog"
)

// Service owns the cart's merge and recompute logic on top of a
// SessionStore. Every mutation reads the snapshot, applies the change,
// recomputes the total and writes the snapshot back before returning;
// concurrent mutations of the same session resolve as last write wins.
type Service struct {
	store   SessionStore
	catalog *catalog.Service
}

// NewService creates a new cart service
func NewService(store SessionStore, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// Override carries booking-specific values supplied by the caller at
// add time. A non-zero TotalPrice replaces the catalog unit price on
// the line (custom pricing); a non-empty CustomName replaces the
// display name.
type Override struct {
	NumberOfPeople int     `json:"numberOfPeople" binding:"omitempty,min=1"`
	TotalPrice     float64 `json:"totalPrice" binding:"omitempty,min=0"`
	Days           int     `json:"days" binding:"omitempty,min=1"`
	CustomName     string  `json:"customName"`
}

// AddItemRequest represents an add-to-cart call
type AddItemRequest struct {
	ProductID string    `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Override  *Override `json:"override"`
}

// Get returns the current cart for the session
func (s *Service) Get(ctx context.Context, token string) (*Cart, error) {
	return s.store.Load(ctx, token)
}

// AddItem resolves the product, merges the line into the cart and
// persists the new snapshot. Two adds with the same
// (productId, startDate, endDate, numberOfPeople) key accumulate
// quantity on one line; on a merge every newly supplied mutable field
// overwrites the stored one, so the last write wins.
func (s *Service) AddItem(ctx context.Context, token string, req *AddItemRequest) (*Cart, error) {
	product, err := s.catalog.Get(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", req.ProductID, err)
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var people, days int
	var customPrice float64
	var customName string
	if req.Override != nil {
		people = req.Override.NumberOfPeople
		days = req.Override.Days
		customPrice = req.Override.TotalPrice
		customName = req.Override.CustomName
	}

	price := product.Price
	if customPrice > 0 {
		price = customPrice
	}
	displayName := product.Name
	if customName != "" {
		displayName = customName
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if !c.Items[i].matchesKey(req.ProductID, req.StartDate, req.EndDate, people) {
			continue
		}
		line := &c.Items[i]
		line.Quantity += quantity
		if req.StartDate != "" {
			line.StartDate = req.StartDate
		}
		if req.EndDate != "" {
			line.EndDate = req.EndDate
		}
		if people > 0 {
			line.NumberOfPeople = people
		}
		if days > 0 {
			line.Days = days
		}
		if customName != "" {
			line.CustomName = customName
			line.Name = customName
		}
		line.Price = price
		merged = true
		break
	}

	if !merged {
		c.Items = append(c.Items, Item{
			ID:             product.ID,
			Type:           product.Type,
			Name:           displayName,
			Price:          price,
			Image:          product.Image,
			Quantity:       quantity,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			NumberOfPeople: people,
			Days:           days,
			CustomName:     customName,
			GuideSpecialty: product.GuideSpecialty,
		})
	}

	c.recalculate()
	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem deletes every line whose product id matches. Removal is
// not scoped by the booking key: the storefront never lets one product
// appear under two different bookings and be removed individually.
func (s *Service) RemoveItem(ctx context.Context, token, productID string) (*Cart, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept

	c.recalculate()
	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets the quantity on the first line matching the
// product id. A quantity below one removes the product instead.
func (s *Service) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return s.RemoveItem(ctx, token, productID)
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			c.recalculate()
			if err := s.store.Save(ctx, token, c); err != nil {
				return nil, err
			}
			break
		}
	}
	return c, nil
}

// Clear discards the persisted snapshot entirely. The next load yields
// a fresh empty cart.
func (s *Service) Clear(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// Summarize returns the derived read-only view of the session's cart
func (s *Service) Summarize(ctx context.Context, token string) (*Summary, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	summary := c.Summarize()
	return &summary, nil
}
