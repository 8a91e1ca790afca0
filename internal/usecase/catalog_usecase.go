package usecase

import (
	"context"
	"sort"
	"time"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/cache"
	"modernshop-backend/pkg/logger"
)

const catalogCacheKey = "catalog:products"

// CatalogUsecase fetches and serves the product list. The remote
// catalog is read-only; failures degrade to the built-in fallback list
// so the storefront always has products to show.
type CatalogUsecase struct {
	source   domain.CatalogSource
	cache    cache.CacheService
	ttl      time.Duration
	fallback []domain.Product
}

func NewCatalogUsecase(source domain.CatalogSource, c cache.CacheService, fallback []domain.Product, ttl time.Duration) *CatalogUsecase {
	return &CatalogUsecase{
		source:   source,
		cache:    c,
		ttl:      ttl,
		fallback: fallback,
	}
}

// GetProducts returns the catalog, served from cache when fresh. On any
// fetch or decode failure the fallback list is substituted; the error
// is logged, never surfaced.
func (u *CatalogUsecase) GetProducts(ctx context.Context) []domain.Product {
	if cached, ok := u.cache.Get(catalogCacheKey); ok {
		if products, ok := cached.([]domain.Product); ok {
			return products
		}
	}

	products, err := u.source.FetchProducts(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Catalog fetch failed, serving fallback products")
		return u.fallback
	}

	u.cache.Set(catalogCacheKey, products, u.ttl)
	return products
}

// GetProductByID returns the product with the given id, if present.
func (u *CatalogUsecase) GetProductByID(ctx context.Context, id int) (domain.Product, bool) {
	for _, p := range u.GetProducts(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (u *CatalogUsecase) GetProductsByCategory(ctx context.Context, category string) []domain.Product {
	var out []domain.Product
	for _, p := range u.GetProducts(ctx) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetCategories returns the distinct categories in catalog order.
func (u *CatalogUsecase) GetCategories(ctx context.Context) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range u.GetProducts(ctx) {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// SortProducts returns a sorted copy of products. Unknown sort keys
// return the input order.
func SortProducts(products []domain.Product, sortBy string) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case domain.SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	case domain.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RatingRate() > sorted[j].RatingRate() })
	}
	return sorted
}

// FilterByPriceRange keeps products whose price falls in [min, max].
// A max of 0 means unbounded.
func FilterByPriceRange(products []domain.Product, min, max float64) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.Price < min {
			continue
		}
		if max > 0 && p.Price > max {
			continue
		}
		out = append(out, p)
	}
	return out
}
