// internal/domain/booking/service.go
package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/safari-backend/internal/config"
)

// ErrValidation is returned when a booking form misses required fields
var ErrValidation = errors.New("please fill in all required fields")

// Service handles the standalone booking forms (car, accommodation,
// package). Bookings are acknowledged with a fabricated reference; no
// reservation system sits behind them.
type Service struct {
	config *config.Config
}

// NewService creates a new booking service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// CarRequest represents a car booking form submission
type CarRequest struct {
	PickupLocation string `json:"pickupLocation" binding:"required"`
	CarType        string `json:"carType" binding:"required"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
}

// AccommodationRequest represents an accommodation booking form submission
type AccommodationRequest struct {
	Destination string `json:"destination" binding:"required"`
	RoomType    string `json:"roomType" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// PackageRequest represents a package tour booking form submission
type PackageRequest struct {
	Destination string `json:"destination" binding:"required"`
	Travelers   string `json:"travelers" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// Confirmation acknowledges a booking form submission
type Confirmation struct {
	BookingID string    `json:"bookingId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookCar records a car booking request
func (s *Service) BookCar(ctx context.Context, req *CarRequest) (*Confirmation, error) {
	if req.PickupLocation == "" || req.CarType == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrValidation
	}
	log.Printf("Car booking: %s %s from %s to %s", req.CarType, req.PickupLocation, req.StartDate, req.EndDate)
	return s.confirm(ctx)
}

// BookAccommodation records an accommodation booking request
func (s *Service) BookAccommodation(ctx context.Context, req *AccommodationRequest) (*Confirmation, error) {
	if req.Destination == "" || req.RoomType == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrValidation
	}
	log.Printf("Accommodation booking: %s %s from %s to %s", req.RoomType, req.Destination, req.StartDate, req.EndDate)
	return s.confirm(ctx)
}

// BookPackage records a package tour booking request
func (s *Service) BookPackage(ctx context.Context, req *PackageRequest) (*Confirmation, error) {
	if req.Destination == "" || req.Travelers == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrValidation
	}
	log.Printf("Package booking: %s for %s travelers from %s to %s", req.Destination, req.Travelers, req.StartDate, req.EndDate)
	return s.confirm(ctx)
}

func (s *Service) confirm(_ context.Context) (*Confirmation, error) {
	// The storefront simulates processing latency on these forms
	if delay := s.config.Booking.SimulatedDelay; delay > 0 {
		time.Sleep(delay)
	}
	return &Confirmation{
		BookingID: newBookingID(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// newBookingID fabricates an 8-character booking reference
func newBookingID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
