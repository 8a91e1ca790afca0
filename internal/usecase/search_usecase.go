package usecase

import (
	"sort"
	"strings"
	"sync"
	"time"

	"modernshop-backend/internal/domain"
	"modernshop-backend/pkg/logger"
)

const minHistoryQueryLen = 2

// SearchUsecase owns product text search and the persisted query
// history (most recent first, de-duplicated, capped).
type SearchUsecase struct {
	mu           sync.RWMutex
	history      []domain.SearchEntry
	repo         domain.SearchHistoryRepository
	historyLimit int
}

func NewSearchUsecase(repo domain.SearchHistoryRepository, historyLimit int) *SearchUsecase {
	u := &SearchUsecase{
		repo:         repo,
		historyLimit: historyLimit,
	}
	history, err := repo.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load search history, starting empty")
		history = nil
	}
	u.history = history
	return u
}

// AddToHistory records a query. Repeating a query moves it to the front
// and bumps its popularity count instead of duplicating it. Queries
// shorter than two characters are not remembered.
func (u *SearchUsecase) AddToHistory(query string) {
	query = strings.TrimSpace(query)
	if len(query) < minHistoryQueryLen {
		return
	}

	u.mu.Lock()
	count := 1
	for i, e := range u.history {
		if e.Query == query {
			count = e.Count + 1
			u.history = append(u.history[:i], u.history[i+1:]...)
			break
		}
	}
	u.history = append([]domain.SearchEntry{{
		Query:     query,
		Timestamp: time.Now().UTC(),
		Count:     count,
	}}, u.history...)

	if u.historyLimit > 0 && len(u.history) > u.historyLimit {
		u.history = u.history[:u.historyLimit]
	}

	if err := u.repo.Save(u.history); err != nil {
		logger.Warn().Err(err).Msg("Search history save failed")
	}
	u.mu.Unlock()
}

// History returns a snapshot of the remembered queries, newest first.
func (u *SearchUsecase) History() []domain.SearchEntry {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snapshot := make([]domain.SearchEntry, len(u.history))
	copy(snapshot, u.history)
	return snapshot
}

func (u *SearchUsecase) ClearHistory() {
	u.mu.Lock()
	u.history = nil
	if err := u.repo.Save(nil); err != nil {
		logger.Warn().Err(err).Msg("Search history save failed")
	}
	u.mu.Unlock()
}

// RecentSearches returns up to limit entries, newest first.
func (u *SearchUsecase) RecentSearches(limit int) []domain.SearchEntry {
	entries := u.History()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// PopularSearches returns up to limit entries ordered by how often the
// query was repeated.
func (u *SearchUsecase) PopularSearches(limit int) []domain.SearchEntry {
	entries := u.History()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// SearchProducts keeps products whose title, description or category
// contains every whitespace-separated term of the query.
func (u *SearchUsecase) SearchProducts(products []domain.Product, query string) []domain.Product {
	terms := searchTerms(query)
	if len(terms) == 0 {
		return products
	}

	var out []domain.Product
	for _, p := range products {
		haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)
		matched := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out
}

// Suggestions proposes up to limit completions for a partial query from
// product titles, categories and title words.
func (u *SearchUsecase) Suggestions(products []domain.Product, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minHistoryQueryLen {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) {
			add(p.Title)
		}
		if strings.Contains(strings.ToLower(p.Category), query) {
			add(p.Category)
		}
		for _, word := range strings.Fields(strings.ToLower(p.Title)) {
			if strings.HasPrefix(word, query) && len(word) > len(query) {
				add(word)
			}
		}
	}

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// AdvancedSearch applies text, category, price and rating filters, then
// sorts. The relevance sort degrades to input order without a query.
func (u *SearchUsecase) AdvancedSearch(products []domain.Product, opts domain.SearchOptions) []domain.Product {
	results := products

	if opts.Query != "" {
		results = u.SearchProducts(results, opts.Query)
	}
	if opts.Category != "" {
		var filtered []domain.Product
		for _, p := range results {
			if p.Category == opts.Category {
				filtered = append(filtered, p)
			}
		}
		results = filtered
	}
	results = FilterByPriceRange(results, opts.MinPrice, opts.MaxPrice)
	if opts.MinRating > 0 {
		var filtered []domain.Product
		for _, p := range results {
			if p.RatingRate() >= opts.MinRating {
				filtered = append(filtered, p)
			}
		}
		results = filtered
	}

	switch opts.Sort {
	case domain.SortRelevance, "":
		if opts.Query != "" {
			return sortByRelevance(results, opts.Query)
		}
		return results
	default:
		return SortProducts(results, opts.Sort)
	}
}

// sortByRelevance orders products by a simple match score against the
// query: exact title beats title prefix beats title substring, then
// category and description matches.
func sortByRelevance(products []domain.Product, query string) []domain.Product {
	query = strings.ToLower(query)
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	score := func(p domain.Product) int {
		title := strings.ToLower(p.Title)
		s := 0
		if title == query {
			s += 100
		}
		if strings.HasPrefix(title, query) {
			s += 50
		}
		if strings.Contains(title, query) {
			s += 25
		}
		if strings.Contains(strings.ToLower(p.Category), query) {
			s += 10
		}
		if strings.Contains(strings.ToLower(p.Description), query) {
			s += 5
		}
		return s
	}

	sort.SliceStable(sorted, func(i, j int) bool { return score(sorted[i]) > score(sorted[j]) })
	return sorted
}

func searchTerms(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}
