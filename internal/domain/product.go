package domain

import "context"

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// RatingRate returns the rating score, or 0 when the product has none.
func (p Product) RatingRate() float64 {
	if p.Rating == nil {
		return 0
	}
	return p.Rating.Rate
}

// SearchOptions defines filters for advanced product search.
type SearchOptions struct {
	Query     string
	Category  string
	MinPrice  float64
	MaxPrice  float64 // 0 = unbounded
	MinRating float64
	Sort      string // relevance, price-low, price-high, name, rating
}

// CatalogSource is the read-only remote provider of the product list.
type CatalogSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}
