// internal/interfaces/http/handlers/booking_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookCarEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/bookings/car", `{
		"pickupLocation": "Nairobi",
		"carType": "Safari Jeep",
		"startDate": "2026-06-01",
		"endDate": "2026-06-04"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data struct {
			BookingID string `json:"bookingId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.BookingID, 8)
}

func TestBookCarEndpointMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/bookings/car", `{"pickupLocation":"Nairobi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookAccommodationEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/bookings/accommodation", `{
		"destination": "Serengeti",
		"roomType": "Luxury Tent",
		"startDate": "2026-06-01",
		"endDate": "2026-06-04"
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookPackageEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/bookings/package", `{
		"destination": "Maasai Mara",
		"travelers": "4",
		"startDate": "2026-06-01",
		"endDate": "2026-06-04"
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
