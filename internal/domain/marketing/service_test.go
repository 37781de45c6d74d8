// internal/domain/marketing/service_test.go
package marketing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/safari-backend/internal/config"
)

func newTestService() *Service {
	return NewService(&config.Config{})
}

func TestSubmitContact(t *testing.T) {
	svc := newTestService()

	err := svc.SubmitContact(context.Background(), &ContactRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Interest:  "Safari Packages",
		Message:   "Looking for a family trip in June.",
	})
	assert.NoError(t, err)
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newTestService()

	err := svc.SubmitContact(context.Background(), &ContactRequest{
		FirstName: "Jane",
		Email:     "jane@example.com",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitContactMessageOptional(t *testing.T) {
	svc := newTestService()

	err := svc.SubmitContact(context.Background(), &ContactRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Interest:  "Car Rental",
	})
	assert.NoError(t, err)
}

func TestSubscribe(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid address", email: "jane@example.com"},
		{name: "missing at sign", email: "jane.example.com", wantErr: true},
		{name: "missing domain dot", email: "jane@example", wantErr: true},
		{name: "empty", email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Subscribe(context.Background(), &SubscribeRequest{Email: tt.email})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
