// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/pkg/auth"
)

// Auth failure taxonomy. All are local input errors; nothing here is
// retried.
var (
	ErrValidation         = errors.New("all fields are required")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles sign-up, sign-in and session resolution
type Service struct {
	repo            Repository
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:            repo,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// SignUpRequest represents user registration data
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest represents user login data
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful sign-in
type AuthResponse struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// SignUp creates a new account. It does not authenticate: the caller
// signs in separately afterwards.
func (s *Service) SignUp(req *SignUpRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ErrValidation
	}

	// Case-sensitive exact match, same as the storefront's directory
	if _, err := s.repo.FindByEmail(req.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	return s.repo.Insert(u)
}

// SignIn authenticates and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) SignIn(req *SignInRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	u, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordManager.VerifyPassword(req.Password, u.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateSessionToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &AuthResponse{
		User:      u.sanitized(),
		Token:     token,
		ExpiresIn: int64(s.config.JWT.SessionExpiry.Seconds()),
	}, nil
}

// CurrentUser resolves a session token to its user record with the
// password stripped. It returns nil for an absent, expired or otherwise
// unresolvable token, never an error.
func (s *Service) CurrentUser(token string) *User {
	if token == "" {
		return nil
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil
	}

	u, err := s.repo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return u.sanitized()
}

// SeedDemoUser inserts the development demo account if its email is
// free. Used only in development mode.
func (s *Service) SeedDemoUser(name, email, password string) error {
	err := s.SignUp(&SignUpRequest{Name: name, Email: email, Password: password})
	if errors.Is(err, ErrDuplicateEmail) {
		return nil
	}
	return err
}
