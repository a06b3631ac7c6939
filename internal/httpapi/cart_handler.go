package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/raghu62-rp/OSM-main/internal/cart"
	"github.com/raghu62-rp/OSM-main/internal/catalog"
	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/session"
)

type CartHandler struct {
	sessions *session.Manager
	sync     *catalog.Sync
}

func NewCartHandler(sessions *session.Manager, sync *catalog.Sync) *CartHandler {
	return &CartHandler{sessions: sessions, sync: sync}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items     []domain.LineItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"item_count"`
}

func cartResponse(c domain.Cart) CartResponseDTO {
	items := c.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return CartResponseDTO{
		Items:     items,
		Total:     cart.Total(c),
		ItemCount: cart.ItemCount(c),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, cartResponse(sess.Cart()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, ok := h.sync.Product(r.Context(), req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	sess := h.sessions.Session(getSessionID(r.Context()))
	c := sess.AddToCart(r.Context(), product)

	respondJSON(w, http.StatusCreated, cartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	// zero or negative means remove, matching the cart's own semantics
	sess := h.sessions.Session(getSessionID(r.Context()))
	c := sess.SetQuantity(r.Context(), productID, req.Quantity)

	respondJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	sess := h.sessions.Session(getSessionID(r.Context()))
	c := sess.RemoveFromCart(r.Context(), productID)

	respondJSON(w, http.StatusOK, cartResponse(c))
}
