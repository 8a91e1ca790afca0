package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"modernshop-backend/internal/domain"
	memcache "modernshop-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceFunc func(ctx context.Context) ([]domain.Product, error)

func (f sourceFunc) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f(ctx)
}

func testCatalogProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Alpha Headphones", Price: 99.99, Category: "electronics", Rating: &domain.Rating{Rate: 4.5, Count: 10}},
		{ID: 2, Title: "Beta Watch", Price: 199.99, Category: "electronics", Rating: &domain.Rating{Rate: 4.0, Count: 5}},
		{ID: 3, Title: "Gamma Shoes", Price: 79.99, Category: "footwear"},
	}
}

func newTestCatalog(source domain.CatalogSource) *CatalogUsecase {
	c := memcache.NewMemoryCache(time.Minute, time.Minute)
	return NewCatalogUsecase(source, c, []domain.Product{{ID: 100, Title: "Fallback", Price: 1.00, Category: "fallback"}}, time.Minute)
}

func TestGetProductsCachesFetchedCatalog(t *testing.T) {
	calls := 0
	catalog := newTestCatalog(sourceFunc(func(context.Context) ([]domain.Product, error) {
		calls++
		return testCatalogProducts(), nil
	}))

	first := catalog.GetProducts(context.Background())
	second := catalog.GetProducts(context.Background())

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestGetProductsSubstitutesFallbackOnError(t *testing.T) {
	catalog := newTestCatalog(sourceFunc(func(context.Context) ([]domain.Product, error) {
		return nil, errors.New("connection refused")
	}))

	products := catalog.GetProducts(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "Fallback", products[0].Title)
}

func TestFallbackIsNotCached(t *testing.T) {
	healthy := false
	catalog := newTestCatalog(sourceFunc(func(context.Context) ([]domain.Product, error) {
		if !healthy {
			return nil, errors.New("temporarily down")
		}
		return testCatalogProducts(), nil
	}))

	_ = catalog.GetProducts(context.Background())
	healthy = true

	products := catalog.GetProducts(context.Background())
	assert.Len(t, products, 3)
}

func TestGetProductByID(t *testing.T) {
	catalog := newTestCatalog(sourceFunc(func(context.Context) ([]domain.Product, error) {
		return testCatalogProducts(), nil
	}))

	p, ok := catalog.GetProductByID(context.Background(), 2)
	require.True(t, ok)
	assert.Equal(t, "Beta Watch", p.Title)

	_, ok = catalog.GetProductByID(context.Background(), 42)
	assert.False(t, ok)
}

func TestGetCategoriesAreDistinctAndOrdered(t *testing.T) {
	catalog := newTestCatalog(sourceFunc(func(context.Context) ([]domain.Product, error) {
		return testCatalogProducts(), nil
	}))

	assert.Equal(t, []string{"electronics", "footwear"}, catalog.GetCategories(context.Background()))
}

func TestSortProducts(t *testing.T) {
	products := testCatalogProducts()

	byPriceLow := SortProducts(products, domain.SortPriceLow)
	assert.Equal(t, []int{3, 1, 2}, productIDs(byPriceLow))

	byPriceHigh := SortProducts(products, domain.SortPriceHigh)
	assert.Equal(t, []int{2, 1, 3}, productIDs(byPriceHigh))

	byName := SortProducts(products, domain.SortName)
	assert.Equal(t, []int{1, 2, 3}, productIDs(byName))

	byRating := SortProducts(products, domain.SortRating)
	assert.Equal(t, []int{1, 2, 3}, productIDs(byRating))

	// Unknown keys keep input order and never mutate the input.
	same := SortProducts(products, "bogus")
	assert.Equal(t, productIDs(products), productIDs(same))
	assert.Equal(t, 1, products[0].ID)
}

func TestFilterByPriceRange(t *testing.T) {
	products := testCatalogProducts()

	mid := FilterByPriceRange(products, 80, 150)
	assert.Equal(t, []int{1}, productIDs(mid))

	// max 0 means unbounded
	all := FilterByPriceRange(products, 0, 0)
	assert.Len(t, all, 3)
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
