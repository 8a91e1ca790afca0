package domain

// Storage keys. These match the browser frontend's localStorage layout
// so an exported snapshot is interchangeable with what the web UI keeps.
const (
	StorageKeyCart          = "modernshop_cart"
	StorageKeyWishlist      = "modernshop_wishlist"
	StorageKeySearchHistory = "modernshop_search_history"
	StorageKeyTheme         = "modernshop_theme"
)

// Sort options
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortRating    = "rating"
)

var SortOptions = []string{
	SortRelevance,
	SortPriceLow,
	SortPriceHigh,
	SortName,
	SortRating,
}
