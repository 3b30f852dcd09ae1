package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsat/josephjoseph-chile/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New("error")
}

func feedPage(start, count int) []Product {
	products := make([]Product, count)
	for i := range products {
		products[i] = Product{
			ID:    int64(start + i),
			Title: fmt.Sprintf("Product %d", start+i),
		}
	}
	return products
}

func TestFetchPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "250", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": feedPage(1, 3),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	products, err := client.FetchPage(2)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Product 1", products[0].Title)
}

func TestFetchPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.FetchPage(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchAllDrainsUntilEmptyPage(t *testing.T) {
	pages := map[string]int{"1": 250, "2": 250, "3": 10, "4": 0}

	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		requests = append(requests, page)
		start, _ := strconv.Atoi(page)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": feedPage(start*1000, pages[page]),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	products, err := client.FetchAll()
	require.NoError(t, err)
	assert.Len(t, products, 510)
	assert.Equal(t, []string{"1", "2", "3", "4"}, requests)
}

func TestFetchAllReturnsPartialOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": feedPage(1, 5),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	products, err := client.FetchAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
	assert.Len(t, products, 5)
}
