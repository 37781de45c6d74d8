// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/user"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userService *user.Service
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *user.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		config:      cfg,
	}
}

// Register handles POST /auth/register. Sign-up does not authenticate;
// the client signs in afterwards.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.userService.SignUp(&req); err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
	})
}

// Login handles POST /auth/login. On success the session token is
// returned in the body and set as the persisted auth cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.SignIn(&req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		}
		return
	}

	h.setAuthCookie(c, response.Token, int(h.config.Session.TTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    response,
	})
}

// Logout handles POST /auth/logout by revoking the persisted auth
// cookie. Revocation is unconditional; a missing cookie is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me. An absent or unresolvable session yields a
// null user, never an error.
func (h *AuthHandler) Me(c *gin.Context) {
	var token string
	if cookie, err := c.Cookie(h.config.Session.AuthCookieName); err == nil {
		token = cookie
	}
	if header := c.GetHeader("Authorization"); token == "" && len(header) > 7 {
		token = header[7:]
	}

	current := h.userService.CurrentUser(token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Current user retrieved successfully",
		"data":    current,
	})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		h.config.Session.AuthCookieName,
		token,
		maxAge,
		"/",
		"",
		h.config.Session.CookieSecure,
		true, // httpOnly: not readable by page scripts
	)
}
