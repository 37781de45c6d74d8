// internal/domain/pricing/rules.go
package pricing

import (
	"fmt"
	"math"
	"time"
)

const (
	// BaseCapacity is the number of people included in a vehicle's base rate
	BaseCapacity = 2

	// ExtraPersonPerDay is the surcharge for each person above BaseCapacity
	ExtraPersonPerDay = 25.0

	// TaxRate is applied to the cart subtotal at checkout display time
	TaxRate = 0.10

	// DiscountRate is the volume discount applied at or above DiscountThreshold
	DiscountRate = 0.10

	// DiscountThreshold is the subtotal at which the volume discount kicks in
	DiscountThreshold = 1000.0
)

const dateLayout = "2006-01-02"

// Days returns the number of rental days covered by a date range,
// rounding partial days up and never returning less than one day.
func Days(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalQuote is the precomputed total for a variable-capacity rental.
// The whole multi-day, multi-person cost is folded into the line's unit
// price; the cart line keeps quantity 1.
type RentalQuote struct {
	UnitPrice      float64 `json:"unitPrice"`      // Catalog base rate per day
	ExtraPerDay    float64 `json:"extraPerDay"`    // Surcharge per day for people above base capacity
	DailyRate      float64 `json:"dailyRate"`      // UnitPrice + ExtraPerDay
	Days           int     `json:"days"`           //
	NumberOfPeople int     `json:"numberOfPeople"` //
	Total          float64 `json:"total"`          // DailyRate x Days
}

// QuoteRental computes the custom price for a vehicle rental:
// (base rate + $25 per person above two, per day) x days.
func QuoteRental(unitPrice float64, numberOfPeople, days int) RentalQuote {
	extra := float64(maxInt(0, numberOfPeople-BaseCapacity)) * ExtraPersonPerDay
	daily := unitPrice + extra
	return RentalQuote{
		UnitPrice:      unitPrice,
		ExtraPerDay:    extra,
		DailyRate:      daily,
		Days:           days,
		NumberOfPeople: numberOfPeople,
		Total:          daily * float64(days),
	}
}

// CheckoutTotals is the cart-level arithmetic shown on the cart and
// checkout screens. It is computed at display time and never persisted
// into the cart's running total.
type CheckoutTotals struct {
	Subtotal   float64 `json:"subtotal"`
	Taxes      float64 `json:"taxes"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
}

// Totals applies the tax and volume-discount rules to a cart subtotal.
//
// At the discount threshold the 10% discount exactly cancels the 10%
// tax, so a 1000 cart costs less out of pocket than a 999 one. That
// reads like an unintended interaction between the two rules, but it is
// the arithmetic the storefront has always shown; flagged for product
// review, preserved here.
func Totals(subtotal float64) CheckoutTotals {
	t := CheckoutTotals{
		Subtotal: subtotal,
		Taxes:    subtotal * TaxRate,
	}
	if subtotal >= DiscountThreshold {
		t.Discount = subtotal * DiscountRate
	}
	t.GrandTotal = t.Subtotal + t.Taxes - t.Discount
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
