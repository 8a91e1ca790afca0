package v1

import (
	"net/http"
	"strconv"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type WishlistHandler struct {
	wishlist *usecase.WishlistUsecase
	catalog  *usecase.CatalogUsecase
}

func NewWishlistHandler(wishlist *usecase.WishlistUsecase, catalog *usecase.CatalogUsecase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.wishlist.GetItems()
	if items == nil {
		items = []domain.WishlistItem{}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":     items,
		"itemCount": len(items),
	})
}

type wishlistRequest struct {
	ProductID int `json:"productId"`
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	product, ok := h.resolveProduct(w, r)
	if !ok {
		return
	}

	added := h.wishlist.AddItem(product)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"added": added})
}

func (h *WishlistHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	product, ok := h.resolveProduct(w, r)
	if !ok {
		return
	}

	listed := h.wishlist.ToggleItem(product)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"listed": listed})
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil || productID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "productId must be a positive integer")
		return
	}

	removed := h.wishlist.RemoveItem(productID)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"removed": removed})
}

// resolveProduct decodes the request body and looks the product up in
// the catalog, writing the error response itself on failure.
func (h *WishlistHandler) resolveProduct(w http.ResponseWriter, r *http.Request) (domain.Product, bool) {
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return domain.Product{}, false
	}
	if req.ProductID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "productId must be a positive integer")
		return domain.Product{}, false
	}

	product, ok := h.catalog.GetProductByID(r.Context(), req.ProductID)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return domain.Product{}, false
	}
	return product, true
}
