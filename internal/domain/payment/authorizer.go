// internal/domain/payment/authorizer.go
package payment

import "context"

// Details carries the payment form fields collected at checkout. No
// gateway is wired up; the fields exist so the checkout seam stays
// realistic and testable.
type Details struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// Authorizer is the pluggable payment capability. Implementations
// return nil when the charge is approved.
type Authorizer interface {
	Authorize(ctx context.Context, details *Details, amount float64) error
}

// alwaysApprove approves every charge. It is the default authorizer:
// the storefront collects card fields but never settles them.
type alwaysApprove struct{}

func (alwaysApprove) Authorize(context.Context, *Details, float64) error {
	return nil
}

// AlwaysApprove returns the default no-op authorizer
func AlwaysApprove() Authorizer {
	return alwaysApprove{}
}
