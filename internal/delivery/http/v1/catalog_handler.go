package v1

import (
	"net/http"
	"strconv"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/utils"
)

type CatalogHandler struct {
	catalog *usecase.CatalogUsecase
	search  *usecase.SearchUsecase
}

func NewCatalogHandler(catalog *usecase.CatalogUsecase, search *usecase.SearchUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, search: search}
}

// ListProducts serves the product grid. Optional query params: q,
// category, sort, min_price, max_price, min_rating.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := domain.SearchOptions{
		Query:     q.Get("q"),
		Category:  q.Get("category"),
		MinPrice:  parseFloat(q.Get("min_price")),
		MaxPrice:  parseFloat(q.Get("max_price")),
		MinRating: parseFloat(q.Get("min_rating")),
		Sort:      q.Get("sort"),
	}

	products := h.search.AdvancedSearch(h.catalog.GetProducts(r.Context()), opts)
	if opts.Query != "" {
		h.search.AddToHistory(opts.Query)
	}
	if products == nil {
		products = []domain.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	product, ok := h.catalog.GetProductByID(r.Context(), id)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.GetCategories(r.Context())
	if categories == nil {
		categories = []string{}
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
