// internal/interfaces/http/handlers/handlers_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/booking"
	"github.com/your-org/safari-backend/internal/domain/cart"
	"github.com/your-org/safari-backend/internal/domain/catalog"
	"github.com/your-org/safari-backend/internal/domain/checkout"
	"github.com/your-org/safari-backend/internal/domain/marketing"
	"github.com/your-org/safari-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig returns a config suitable for handler tests: memory-backed
// stores, cheap password hashing and the default cookie names.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Safari Adventures API"
	cfg.JWT.Secret = "test-secret-key-at-least-32-characters-long"
	cfg.JWT.SessionExpiry = time.Hour
	cfg.Session.CartCookieName = "cart_session"
	cfg.Session.AuthCookieName = "auth_token"
	cfg.Session.TTL = time.Hour
	cfg.Security.BcryptCost = bcrypt.MinCost
	return cfg
}

// testEnv wires the full handler surface against in-memory stores
type testEnv struct {
	cfg    *config.Config
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	catalogService := catalog.NewService()
	cartService := cart.NewService(cart.NewMemoryStore(cfg.Session.TTL), catalogService)
	checkoutService := checkout.NewService(cartService, nil)
	userService := user.NewService(user.NewMemoryRepository(), cfg)
	bookingService := booking.NewService(cfg)
	marketingService := marketing.NewService(cfg)

	router := gin.New()

	authHandler := NewAuthHandler(userService, cfg)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/auth/me", authHandler.Me)

	catalogHandler := NewCatalogHandler(catalogService, cfg)
	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/products/:id", catalogHandler.GetProduct)
	router.GET("/destinations", catalogHandler.ListDestinations)
	router.GET("/tour-guides", catalogHandler.ListGuides)

	cartHandler := NewCartHandler(cartService, cfg)
	router.GET("/cart", cartHandler.GetCart)
	router.GET("/cart/summary", cartHandler.GetSummary)
	router.POST("/cart/items", cartHandler.AddItem)
	router.PUT("/cart/items/:id", cartHandler.UpdateItem)
	router.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	router.DELETE("/cart", cartHandler.ClearCart)

	checkoutHandler := NewCheckoutHandler(checkoutService, cfg)
	router.GET("/checkout/summary", checkoutHandler.GetSummary)
	router.POST("/checkout", checkoutHandler.Process)

	bookingHandler := NewBookingHandler(bookingService, cfg)
	router.POST("/bookings/car", bookingHandler.BookCar)
	router.POST("/bookings/accommodation", bookingHandler.BookAccommodation)
	router.POST("/bookings/package", bookingHandler.BookPackage)

	marketingHandler := NewMarketingHandler(marketingService, cfg)
	router.POST("/contact", marketingHandler.SubmitContact)
	router.POST("/newsletter/subscribe", marketingHandler.Subscribe)

	return &testEnv{cfg: cfg, router: router}
}

// do performs a request against the test router, carrying cookies
func (e *testEnv) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// cookieNamed extracts a Set-Cookie value from a response
func cookieNamed(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	require.Failf(t, "cookie not set", "expected cookie %q in response", name)
	return nil
}
