// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 14)
}

func TestListProductsFilteredByType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/products?type=car", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Type string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 4)
	for _, p := range body.Data {
		assert.Equal(t, "car", p.Type)
	}
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/products/safari-jeep", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Safari Jeep", body.Data.Name)
	assert.Equal(t, 120.0, body.Data.Price)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/products/submarine", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDestinationsAndGuides(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/destinations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var destinations struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &destinations))
	assert.NotEmpty(t, destinations.Data)

	w = env.do(http.MethodGet, "/tour-guides", "")
	require.Equal(t, http.StatusOK, w.Code)

	var guides struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guides))
	assert.NotEmpty(t, guides.Data)
}
