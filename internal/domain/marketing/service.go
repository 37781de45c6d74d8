// internal/domain/marketing/service.go
package marketing

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/your-org/safari-backend/internal/config"
)

var (
	// ErrValidation is returned when a contact form misses required fields
	ErrValidation = errors.New("please fill in all required fields")

	// ErrInvalidEmail is returned for a malformed subscription address
	ErrInvalidEmail = errors.New("please enter a valid email address")
)

// emailPattern is the storefront's permissive email check
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service handles the contact form and newsletter subscriptions. Both
// are acknowledged and logged; no delivery happens behind them.
type Service struct {
	config *config.Config
}

// NewService creates a new marketing service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Interest  string `json:"interest" binding:"required"`
	Message   string `json:"message"`
}

// SubscribeRequest represents a newsletter subscription
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// SubmitContact validates and records a contact form submission
func (s *Service) SubmitContact(ctx context.Context, req *ContactRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Interest == "" {
		return ErrValidation
	}
	log.Printf("Contact form from %s %s <%s> about %s", req.FirstName, req.LastName, req.Email, req.Interest)
	s.simulateDelay()
	return nil
}

// Subscribe validates and records a newsletter subscription
func (s *Service) Subscribe(ctx context.Context, req *SubscribeRequest) error {
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	log.Printf("Newsletter subscription: %s", req.Email)
	s.simulateDelay()
	return nil
}

func (s *Service) simulateDelay() {
	if delay := s.config.Booking.SimulatedDelay; delay > 0 {
		time.Sleep(delay)
	}
}
