// internal/interfaces/http/handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/booking"
)

// BookingHandler handles the standalone booking form endpoints
type BookingHandler struct {
	bookingService *booking.Service
	config         *config.Config
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *booking.Service, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		config:         cfg,
	}
}

// BookCar handles POST /bookings/car
func (h *BookingHandler) BookCar(c *gin.Context) {
	var req booking.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.bookingService.BookCar(c.Request.Context(), &req)
	h.respond(c, confirmation, err)
}

// BookAccommodation handles POST /bookings/accommodation
func (h *BookingHandler) BookAccommodation(c *gin.Context) {
	var req booking.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.bookingService.BookAccommodation(c.Request.Context(), &req)
	h.respond(c, confirmation, err)
}

// BookPackage handles POST /bookings/package
func (h *BookingHandler) BookPackage(c *gin.Context) {
	var req booking.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.bookingService.BookPackage(c.Request.Context(), &req)
	h.respond(c, confirmation, err)
}

func (h *BookingHandler) respond(c *gin.Context, confirmation *booking.Confirmation, err error) {
	if err != nil {
		if errors.Is(err, booking.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed successfully",
		"data":    confirmation,
	})
}
