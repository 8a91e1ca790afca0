package v1

import (
	"net/http"
	"strconv"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/utils"
)

type SearchHandler struct {
	search  *usecase.SearchUsecase
	catalog *usecase.CatalogUsecase
}

func NewSearchHandler(search *usecase.SearchUsecase, catalog *usecase.CatalogUsecase) *SearchHandler {
	return &SearchHandler{search: search, catalog: catalog}
}

// Search runs a plain text search over the catalog and records the
// query in the history.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := h.search.SearchProducts(h.catalog.GetProducts(r.Context()), query)
	h.search.AddToHistory(query)
	if results == nil {
		results = []domain.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, results)
}

func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := parseLimit(r.URL.Query().Get("limit"), 5)

	suggestions := h.search.Suggestions(h.catalog.GetProducts(r.Context()), query, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	utils.WriteJSON(w, http.StatusOK, suggestions)
}

func (h *SearchHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.search.History()
	if entries == nil {
		entries = []domain.SearchEntry{}
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

func (h *SearchHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.search.ClearHistory()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Search history cleared"})
}

func parseLimit(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
