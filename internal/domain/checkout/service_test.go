// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/safari-backend/internal/domain/cart"
	"github.com/your-org/safari-backend/internal/domain/catalog"
	"github.com/your-org/safari-backend/internal/domain/payment"
)

type decliningAuthorizer struct{}

func (decliningAuthorizer) Authorize(_ context.Context, _ *payment.Details, _ float64) error {
	return errors.New("card declined")
}

func newTestCartService() *cart.Service {
	return cart.NewService(cart.NewMemoryStore(time.Hour), catalog.NewService())
}

func testDetails() *payment.Details {
	return &payment.Details{
		CardName:   "John Doe",
		CardNumber: "4242424242424242",
		Expiry:     "12/28",
		CVC:        "123",
	}
}

func TestProcessEmptyCart(t *testing.T) {
	svc := NewService(newTestCartService(), nil)

	_, err := svc.Process(context.Background(), "s1", testDetails())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestProcessSuccess(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService()
	svc := NewService(carts, nil)

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ProductID: "safari-jeep", Quantity: 2})
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "s1", &cart.AddItemRequest{ProductID: "luxury-lodge"})
	require.NoError(t, err)

	confirmation, err := svc.Process(ctx, "s1", testDetails())
	require.NoError(t, err)

	assert.Len(t, confirmation.OrderID, 8)
	assert.Equal(t, 3, confirmation.ItemCount)
	assert.InDelta(t, 590.0, confirmation.Totals.Subtotal, 0.001)
	assert.InDelta(t, 59.0, confirmation.Totals.Taxes, 0.001)
	assert.Zero(t, confirmation.Totals.Discount)
	assert.False(t, confirmation.CreatedAt.IsZero())

	// Cart is cleared after a successful order
	c, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestProcessAppliesVolumeDiscount(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService()
	svc := NewService(carts, nil)

	// 3 x 500 = 1500, over the discount threshold
	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ProductID: "serengeti-tour", Quantity: 3})
	require.NoError(t, err)

	confirmation, err := svc.Process(ctx, "s1", testDetails())
	require.NoError(t, err)

	assert.InDelta(t, 150.0, confirmation.Totals.Taxes, 0.001)
	assert.InDelta(t, 150.0, confirmation.Totals.Discount, 0.001)
	assert.InDelta(t, 1500.0, confirmation.Totals.GrandTotal, 0.001)
}

func TestProcessDeclinedPaymentKeepsCart(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService()
	svc := NewService(carts, decliningAuthorizer{})

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ProductID: "safari-jeep"})
	require.NoError(t, err)

	_, err = svc.Process(ctx, "s1", testDetails())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment declined")

	c, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService()
	svc := NewService(carts, nil)

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{ProductID: "serengeti-tour", Quantity: 2})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, "s1")
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, summary.Totals.Subtotal, 0.001)
	assert.InDelta(t, 100.0, summary.Totals.Discount, 0.001)
	assert.InDelta(t, 1000.0, summary.Totals.GrandTotal, 0.001)
	assert.Len(t, summary.Cart.Items, 1)
}
