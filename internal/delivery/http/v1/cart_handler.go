package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"modernshop-backend/internal/dispatch"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type CartHandler struct {
	cart        *usecase.CartUsecase
	catalog     *usecase.CatalogUsecase
	dispatcher  *dispatch.Dispatcher
	maxQuantity int
}

func NewCartHandler(cart *usecase.CartUsecase, catalog *usecase.CatalogUsecase, dispatcher *dispatch.Dispatcher, maxQuantity int) *CartHandler {
	return &CartHandler{
		cart:        cart,
		catalog:     catalog,
		dispatcher:  dispatcher,
		maxQuantity: maxQuantity,
	}
}

// GetCart returns the full cart summary (lines, count, totals).
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}

type cartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// validate enforces boundary rules so the cart core can stay free of
// input checking.
func (h *CartHandler) validate(req cartItemRequest, requireQuantity bool) error {
	if req.ProductID <= 0 {
		return errors.New("productId must be a positive integer")
	}
	if requireQuantity && req.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if req.Quantity > h.maxQuantity {
		return fmt.Errorf("quantity exceeds the maximum of %d", h.maxQuantity)
	}
	return nil
}

// AddToCart adds a catalog product to the cart. Quantity defaults to 1.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.validate(req, true); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, ok := h.catalog.GetProductByID(r.Context(), req.ProductID)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.cart.AddItem(product, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}

// UpdateCart sets a line's quantity. Zero removes the line.
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.validate(req, false); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.cart.UpdateQuantity(req.ProductID, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}

// RemoveFromCart deletes the line for the productId path parameter.
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil || productID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "productId must be a positive integer")
		return
	}

	h.cart.RemoveItem(productID)
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}

// ExecuteCommand routes a named cart command through the dispatch
// table. This is the surface UI event handlers talk to.
func (h *CartHandler) ExecuteCommand(w http.ResponseWriter, r *http.Request) {
	var cmd dispatch.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if cmd.Quantity > h.maxQuantity {
		utils.WriteError(w, http.StatusBadRequest, fmt.Sprintf("quantity exceeds the maximum of %d", h.maxQuantity))
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), cmd); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrUnknownAction):
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, dispatch.ErrUnknownProduct):
			utils.WriteError(w, http.StatusNotFound, err.Error())
		default:
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.cart.GetCartSummary())
}
