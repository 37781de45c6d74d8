// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/catalog"
)

// CatalogHandler handles product, destination and guide endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		config:         cfg,
	}
}

// ListProducts handles GET /products, optionally filtered by ?type=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var products []catalog.Product
	if t := c.Query("type"); t != "" {
		products = h.catalogService.ListByType(catalog.ProductType(t))
	} else {
		products = h.catalogService.List()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// ListDestinations handles GET /destinations
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Destinations retrieved successfully",
		"data":    h.catalogService.Destinations(),
	})
}

// GetDestination handles GET /destinations/:id
func (h *CatalogHandler) GetDestination(c *gin.Context) {
	destination, err := h.catalogService.Destination(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve destination"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Destination retrieved successfully",
		"data":    destination,
	})
}

// ListGuides handles GET /tour-guides
func (h *CatalogHandler) ListGuides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Tour guides retrieved successfully",
		"data":    h.catalogService.Guides(),
	})
}

// GetGuide handles GET /tour-guides/:id
func (h *CatalogHandler) GetGuide(c *gin.Context) {
	guide, err := h.catalogService.Guide(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour guide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tour guide"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tour guide retrieved successfully",
		"data":    guide,
	})
}
