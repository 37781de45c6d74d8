// internal/interfaces/http/handlers/marketing_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitContactEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/contact", `{
		"firstName": "Jane",
		"lastName": "Doe",
		"email": "jane@example.com",
		"interest": "Safari Packages",
		"message": "Family trip in June."
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitContactEndpointMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/contact", `{"firstName":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/newsletter/subscribe", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubscribeEndpointInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/newsletter/subscribe", `{"email":"jane-at-example"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
