// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/booking"
	"github.com/your-org/safari-backend/internal/domain/cart"
	"github.com/your-org/safari-backend/internal/domain/catalog"
	"github.com/your-org/safari-backend/internal/domain/checkout"
	"github.com/your-org/safari-backend/internal/domain/marketing"
	"github.com/your-org/safari-backend/internal/domain/user"
	"github.com/your-org/safari-backend/internal/interfaces/http/handlers"
	"github.com/your-org/safari-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the routes are wired against
type Services struct {
	Catalog   *catalog.Service
	Carts     *cart.Service
	Checkout  *checkout.Service
	Users     *user.Service
	Bookings  *booking.Service
	Marketing *marketing.Service
}

// SetupRoutes wires all API routes onto the given router group
func SetupRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	setupAuthRoutes(rg, svcs, cfg)
	setupCatalogRoutes(rg, svcs, cfg)
	setupCartRoutes(rg, svcs, cfg)
	setupCheckoutRoutes(rg, svcs, cfg)
	setupBookingRoutes(rg, svcs, cfg)
	setupMarketingRoutes(rg, svcs, cfg)
}

func setupAuthRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(svcs.Users, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		// Current-user lookup never fails; it resolves to null when
		// unauthenticated, so no auth middleware here
		auth.GET("/me", authHandler.Me)
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(svcs.Catalog, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	destinations := rg.Group("/destinations")
	{
		destinations.GET("", catalogHandler.ListDestinations)
		destinations.GET("/:id", catalogHandler.GetDestination)
	}

	guides := rg.Group("/tour-guides")
	{
		guides.GET("", catalogHandler.ListGuides)
		guides.GET("/:id", catalogHandler.GetGuide)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(svcs.Carts, cfg)

	// Cart routes work for guests and authenticated users alike; the
	// cart session cookie, not the account, identifies the cart
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/summary", cartHandler.GetSummary)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(svcs.Checkout, cfg)

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		checkoutGroup.GET("/summary", checkoutHandler.GetSummary)
		checkoutGroup.POST("", checkoutHandler.Process)
	}
}

func setupBookingRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	bookingHandler := handlers.NewBookingHandler(svcs.Bookings, cfg)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("/car", bookingHandler.BookCar)
		bookings.POST("/accommodation", bookingHandler.BookAccommodation)
		bookings.POST("/package", bookingHandler.BookPackage)
	}
}

func setupMarketingRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	marketingHandler := handlers.NewMarketingHandler(svcs.Marketing, cfg)

	rg.POST("/contact", marketingHandler.SubmitContact)
	rg.POST("/newsletter/subscribe", marketingHandler.Subscribe)
}
