package fakestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProductsDecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Headphones","price":99.99,"description":"d","category":"electronics","image":"https://example.com/1.jpg","rating":{"rate":4.5,"count":120}},
			{"id":2,"title":"Watch","price":199.99,"description":"d","category":"electronics","image":"https://example.com/2.jpg"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Headphones", products[0].Title)
	require.NotNil(t, products[0].Rating)
	assert.Equal(t, 4.5, products[0].Rating.Rate)
	assert.Nil(t, products[1].Rating)
}

func TestFetchProductsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestFetchProductsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchProductsUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFallbackProducts(t *testing.T) {
	products := FallbackProducts()
	require.Len(t, products, 4)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		assert.Greater(t, p.Price, 0.0)
		assert.NotNil(t, p.Rating)
	}
}
