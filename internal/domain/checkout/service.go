// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/safari-backend/internal/domain/cart"
	"github.com/your-org/safari-backend/internal/domain/payment"
	"github.com/your-org/safari-backend/internal/domain/pricing"
)

// ErrEmptyCart signals a checkout attempt on a cart with no items. The
// client treats it as a redirect back to the cart view, not an error
// message.
var ErrEmptyCart = errors.New("your cart is empty")

// Service drives the order flow: validate the cart, authorize the
// payment, fabricate an order reference and clear the cart.
type Service struct {
	carts    *cart.Service
	payments payment.Authorizer
}

// NewService creates a new checkout service. A nil authorizer falls
// back to the always-approve default.
func NewService(carts *cart.Service, authorizer payment.Authorizer) *Service {
	if authorizer == nil {
		authorizer = payment.AlwaysApprove()
	}
	return &Service{carts: carts, payments: authorizer}
}

// Summary is the read-only checkout review: the cart plus the
// display-time tax and discount arithmetic
type Summary struct {
	Cart   *cart.Cart             `json:"cart"`
	Totals pricing.CheckoutTotals `json:"totals"`
}

// OrderConfirmation is returned on successful checkout
type OrderConfirmation struct {
	OrderID   string                 `json:"orderId"`
	ItemCount int                    `json:"itemCount"`
	Totals    pricing.CheckoutTotals `json:"totals"`
	CreatedAt time.Time              `json:"createdAt"`
}

// GetSummary returns the checkout review for the session's cart
func (s *Service) GetSummary(ctx context.Context, token string) (*Summary, error) {
	c, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Summary{Cart: c, Totals: pricing.Totals(c.Total)}, nil
}

// Process runs the checkout state machine. The cart must be non-empty;
// any failure before the final clear leaves the cart untouched. The
// order reference is a short random token, unique on a best-effort
// basis only.
func (s *Service) Process(ctx context.Context, token string, details *payment.Details) (*OrderConfirmation, error) {
	c, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := pricing.Totals(c.Total)

	if err := s.payments.Authorize(ctx, details, totals.GrandTotal); err != nil {
		return nil, fmt.Errorf("payment declined: %w", err)
	}

	confirmation := &OrderConfirmation{
		OrderID:   newOrderID(),
		Totals:    totals,
		CreatedAt: time.Now().UTC(),
	}
	for _, item := range c.Items {
		confirmation.ItemCount += item.Quantity
	}

	if err := s.carts.Clear(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}
	return confirmation, nil
}

// newOrderID fabricates an 8-character order reference
func newOrderID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
