package usecase

import (
	"fmt"
	"testing"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/repository/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearch(t *testing.T) (*SearchUsecase, *localstore.SearchHistoryRepository) {
	t.Helper()
	repo := localstore.NewSearchHistoryRepository(localstore.NewMemoryStore())
	return NewSearchUsecase(repo, 10), repo
}

func searchCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Premium Wireless Headphones", Description: "noise cancellation", Category: "electronics", Price: 99.99, Rating: &domain.Rating{Rate: 4.5}},
		{ID: 2, Title: "Smart Fitness Watch", Description: "heart rate monitor", Category: "electronics", Price: 199.99, Rating: &domain.Rating{Rate: 4.3}},
		{ID: 3, Title: "Comfortable Running Shoes", Description: "daily training", Category: "footwear", Price: 79.99, Rating: &domain.Rating{Rate: 4.7}},
		{ID: 4, Title: "Wireless Mouse", Description: "ergonomic", Category: "electronics", Price: 29.99},
	}
}

func TestSearchProductsRequiresAllTerms(t *testing.T) {
	search, _ := newTestSearch(t)

	results := search.SearchProducts(searchCatalog(), "wireless headphones")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
}

func TestSearchProductsMatchesCategoryAndDescription(t *testing.T) {
	search, _ := newTestSearch(t)

	byCategory := search.SearchProducts(searchCatalog(), "footwear")
	require.Len(t, byCategory, 1)
	assert.Equal(t, 3, byCategory[0].ID)

	byDescription := search.SearchProducts(searchCatalog(), "heart rate")
	require.Len(t, byDescription, 1)
	assert.Equal(t, 2, byDescription[0].ID)
}

func TestSearchProductsEmptyQueryReturnsEverything(t *testing.T) {
	search, _ := newTestSearch(t)
	assert.Len(t, search.SearchProducts(searchCatalog(), "  "), 4)
}

func TestHistoryDeduplicatesAndCountsRepeats(t *testing.T) {
	search, _ := newTestSearch(t)

	search.AddToHistory("shoes")
	search.AddToHistory("watch")
	search.AddToHistory("shoes")

	history := search.History()
	require.Len(t, history, 2)
	assert.Equal(t, "shoes", history[0].Query)
	assert.Equal(t, 2, history[0].Count)
	assert.Equal(t, "watch", history[1].Query)
}

func TestHistoryIgnoresShortQueries(t *testing.T) {
	search, _ := newTestSearch(t)

	search.AddToHistory("a")
	search.AddToHistory("")
	search.AddToHistory("  ")

	assert.Empty(t, search.History())
}

func TestHistoryIsCapped(t *testing.T) {
	repo := localstore.NewSearchHistoryRepository(localstore.NewMemoryStore())
	search := NewSearchUsecase(repo, 3)

	for i := 0; i < 5; i++ {
		search.AddToHistory(fmt.Sprintf("query-%d", i))
	}

	history := search.History()
	require.Len(t, history, 3)
	assert.Equal(t, "query-4", history[0].Query)
}

func TestHistoryPersistsAcrossInstances(t *testing.T) {
	repo := localstore.NewSearchHistoryRepository(localstore.NewMemoryStore())

	first := NewSearchUsecase(repo, 10)
	first.AddToHistory("headphones")

	second := NewSearchUsecase(repo, 10)
	history := second.History()
	require.Len(t, history, 1)
	assert.Equal(t, "headphones", history[0].Query)
}

func TestPopularSearchesOrderByCount(t *testing.T) {
	search, _ := newTestSearch(t)

	search.AddToHistory("shoes")
	search.AddToHistory("shoes")
	search.AddToHistory("shoes")
	search.AddToHistory("watch")
	search.AddToHistory("watch")
	search.AddToHistory("mouse")

	popular := search.PopularSearches(2)
	require.Len(t, popular, 2)
	assert.Equal(t, "shoes", popular[0].Query)
	assert.Equal(t, "watch", popular[1].Query)
}

func TestClearHistory(t *testing.T) {
	search, repo := newTestSearch(t)

	search.AddToHistory("shoes")
	search.ClearHistory()

	assert.Empty(t, search.History())
	saved, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSuggestions(t *testing.T) {
	search, _ := newTestSearch(t)

	suggestions := search.Suggestions(searchCatalog(), "wire", 5)
	assert.Contains(t, suggestions, "Premium Wireless Headphones")
	assert.Contains(t, suggestions, "Wireless Mouse")
	assert.Contains(t, suggestions, "wireless")

	assert.Empty(t, search.Suggestions(searchCatalog(), "w", 5))
}

func TestAdvancedSearchFilters(t *testing.T) {
	search, _ := newTestSearch(t)

	results := search.AdvancedSearch(searchCatalog(), domain.SearchOptions{
		Category: "electronics",
		MinPrice: 50,
		MaxPrice: 150,
	})
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)

	rated := search.AdvancedSearch(searchCatalog(), domain.SearchOptions{MinRating: 4.4})
	assert.Equal(t, []int{1, 3}, productIDs(rated))
}

func TestAdvancedSearchRelevanceRanking(t *testing.T) {
	search, _ := newTestSearch(t)

	products := []domain.Product{
		{ID: 1, Title: "Case for wireless mouse", Description: "", Category: "accessories"},
		{ID: 2, Title: "Wireless Mouse", Description: "", Category: "electronics"},
		{ID: 3, Title: "Keyboard", Description: "pairs with a wireless mouse", Category: "electronics"},
	}

	results := search.AdvancedSearch(products, domain.SearchOptions{Query: "wireless mouse"})
	require.Len(t, results, 3)
	// Exact title match wins, then substring, then description only.
	assert.Equal(t, []int{2, 1, 3}, productIDs(results))
}

func TestAdvancedSearchDelegatesOtherSorts(t *testing.T) {
	search, _ := newTestSearch(t)

	results := search.AdvancedSearch(searchCatalog(), domain.SearchOptions{
		Category: "electronics",
		Sort:     domain.SortPriceLow,
	})
	assert.Equal(t, []int{4, 1, 2}, productIDs(results))
}
