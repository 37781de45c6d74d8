// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerJohn = `{"name":"John Doe","email":"john@example.com","password":"password123"}`

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", registerJohn)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Registration does not authenticate
	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, "auth_token", cookie.Name)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", registerJohn)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPost, "/auth/register", registerJohn)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", `{"email":"john@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsAuthCookie(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", registerJohn)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := cookieNamed(t, w, "auth_token")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, cookie.Value, body.Data.Token)
	assert.Equal(t, "John Doe", body.Data.User.Name)
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", registerJohn)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/register", registerJohn)
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := cookieNamed(t, w, "auth_token")

	w = env.do(http.MethodGet, "/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data *struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, "john@example.com", body.Data.Email)
}

func TestMeWithoutSessionYieldsNull(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body.Data))
}

func TestMeWithGarbageTokenYieldsNull(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/auth/me", "", &http.Cookie{Name: "auth_token", Value: "garbage"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body.Data))
}

func TestLogoutRevokesCookie(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookie := cookieNamed(t, w, "auth_token")
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
