// internal/interfaces/http/handlers/marketing.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/marketing"
)

// MarketingHandler handles the contact form and newsletter endpoints
type MarketingHandler struct {
	marketingService *marketing.Service
	config           *config.Config
}

// NewMarketingHandler creates a new marketing handler
func NewMarketingHandler(marketingService *marketing.Service, cfg *config.Config) *MarketingHandler {
	return &MarketingHandler{
		marketingService: marketingService,
		config:           cfg,
	}
}

// SubmitContact handles POST /contact
func (h *MarketingHandler) SubmitContact(c *gin.Context) {
	var req marketing.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.marketingService.SubmitContact(c.Request.Context(), &req); err != nil {
		if errors.Is(err, marketing.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message received. We'll be in touch shortly.",
	})
}

// Subscribe handles POST /newsletter/subscribe
func (h *MarketingHandler) Subscribe(c *gin.Context) {
	var req marketing.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.marketingService.Subscribe(c.Request.Context(), &req); err != nil {
		if errors.Is(err, marketing.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed successfully",
	})
}
