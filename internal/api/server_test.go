package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsat/josephjoseph-chile/internal/catalog"
	"github.com/rsat/josephjoseph-chile/internal/config"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/models"
	"github.com/rsat/josephjoseph-chile/internal/store"
)

// testServer wires the API against a store endpoint that always fails, so
// every read resolves through the fallback catalog.
func testServer(t *testing.T) *Server {
	t.Helper()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	log := logger.New("error")
	svc := catalog.NewService(store.NewClient(down.URL, "", log), log)
	return New(&config.Config{Env: "production"}, log, svc)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var body struct {
		Data []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestHealthEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProducts(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeProducts(t, w))
}

func TestListProductsByCategory(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/products?category=Preparación")
	assert.Equal(t, http.StatusOK, w.Code)

	products := decodeProducts(t, w)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, models.CategoryPreparacion, p.Category)
	}
}

func TestListNewProducts(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/products?new=true")
	assert.Equal(t, http.StatusOK, w.Code)

	products := decodeProducts(t, w)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.IsNew)
	}
}

func TestGetProduct(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		w := get(t, testServer(t), "/api/v1/products/nest")
		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data models.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Nest™", body.Data.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := get(t, testServer(t), "/api/v1/products/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCategories(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/categories")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "Preparación")
}
