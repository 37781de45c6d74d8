// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/checkout"
	"github.com/your-org/safari-backend/internal/domain/payment"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// GetSummary handles GET /checkout/summary, the review screen data
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	token := h.cartSessionToken(c)

	summary, err := h.checkoutService.GetSummary(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// Process handles POST /checkout. An empty cart is a control-flow
// signal: the client redirects back to the cart view.
func (h *CheckoutHandler) Process(c *gin.Context) {
	token := h.cartSessionToken(c)

	var req payment.Details
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.checkoutService.Process(c.Request.Context(), token, &req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
				"code":  "empty_cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

// cartSessionToken reads the cart session cookie. Checkout never mints
// a token: a client without one necessarily has an empty cart.
func (h *CheckoutHandler) cartSessionToken(c *gin.Context) string {
	token, err := c.Cookie(h.config.Session.CartCookieName)
	if err != nil {
		return ""
	}
	return token
}
