// internal/domain/pricing/rules_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      int
		wantErr   bool
	}{
		{name: "three day range", startDate: "2026-06-01", endDate: "2026-06-04", want: 3},
		{name: "one day range", startDate: "2026-06-01", endDate: "2026-06-02", want: 1},
		{name: "same day clamps to one", startDate: "2026-06-01", endDate: "2026-06-01", want: 1},
		{name: "invalid start date", startDate: "June 1st", endDate: "2026-06-04", wantErr: true},
		{name: "invalid end date", startDate: "2026-06-01", endDate: "not-a-date", wantErr: true},
		{name: "inverted range", startDate: "2026-06-04", endDate: "2026-06-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Days(tt.startDate, tt.endDate)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteRental(t *testing.T) {
	t.Run("surcharge above base capacity", func(t *testing.T) {
		// 120 base + 2 extra people x 25 = 170/day, 3 days = 510
		quote := QuoteRental(120, 4, 3)

		assert.Equal(t, 50.0, quote.ExtraPerDay)
		assert.Equal(t, 170.0, quote.DailyRate)
		assert.Equal(t, 510.0, quote.Total)
	})

	t.Run("no surcharge at base capacity", func(t *testing.T) {
		quote := QuoteRental(150, 2, 2)

		assert.Equal(t, 0.0, quote.ExtraPerDay)
		assert.Equal(t, 300.0, quote.Total)
	})

	t.Run("no negative surcharge below base capacity", func(t *testing.T) {
		quote := QuoteRental(150, 1, 2)

		assert.Equal(t, 0.0, quote.ExtraPerDay)
		assert.Equal(t, 300.0, quote.Total)
	})
}

func TestTotals(t *testing.T) {
	t.Run("below threshold pays tax only", func(t *testing.T) {
		totals := Totals(999)

		assert.InDelta(t, 999.0, totals.Subtotal, 0.001)
		assert.InDelta(t, 99.90, totals.Taxes, 0.001)
		assert.Zero(t, totals.Discount)
		assert.InDelta(t, 1098.90, totals.GrandTotal, 0.001)
	})

	t.Run("at threshold discount cancels tax", func(t *testing.T) {
		totals := Totals(1000)

		assert.InDelta(t, 100.0, totals.Taxes, 0.001)
		assert.InDelta(t, 100.0, totals.Discount, 0.001)
		assert.InDelta(t, 1000.0, totals.GrandTotal, 0.001)
	})

	t.Run("above threshold", func(t *testing.T) {
		totals := Totals(2000)

		assert.InDelta(t, 200.0, totals.Taxes, 0.001)
		assert.InDelta(t, 200.0, totals.Discount, 0.001)
		assert.InDelta(t, 2000.0, totals.GrandTotal, 0.001)
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := Totals(0)

		assert.Zero(t, totals.Taxes)
		assert.Zero(t, totals.Discount)
		assert.Zero(t, totals.GrandTotal)
	})
}
