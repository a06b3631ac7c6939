package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raghu62-rp/OSM-main/internal/catalog"
	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/session"
)

type ProfileHandler struct {
	sessions *session.Manager
	sync     *catalog.Sync
}

func NewProfileHandler(sessions *session.Manager, sync *catalog.Sync) *ProfileHandler {
	return &ProfileHandler{sessions: sessions, sync: sync}
}

type ToggleRequestDTO struct {
	ProductID string `json:"product_id"`
}

type ToggleResponseDTO struct {
	Added bool `json:"added"`
}

func (h *ProfileHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": nonNil(sess.Lists().Wishlist(r.Context()))})
}

func (h *ProfileHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": nonNil(sess.Lists().Favorites(r.Context()))})
}

func (h *ProfileHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, func(s *session.Session, p domain.Product) (bool, error) {
		return s.Lists().ToggleWishlist(r.Context(), p)
	})
}

func (h *ProfileHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, func(s *session.Session, p domain.Product) (bool, error) {
		return s.Lists().ToggleFavorite(r.Context(), p)
	})
}

func (h *ProfileHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	if err := sess.Lists().RemoveFromWishlist(r.Context(), chi.URLParam(r, "product_id")); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update wishlist")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": nonNil(sess.Lists().Wishlist(r.Context()))})
}

func (h *ProfileHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	if err := sess.Lists().RemoveFromFavorites(r.Context(), chi.URLParam(r, "product_id")); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update favorites")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": nonNil(sess.Lists().Favorites(r.Context()))})
}

func (h *ProfileHandler) toggle(w http.ResponseWriter, r *http.Request, fn func(*session.Session, domain.Product) (bool, error)) {
	var req ToggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, ok := h.sync.Product(r.Context(), req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	sess := h.sessions.Session(getSessionID(r.Context()))
	added, err := fn(sess, product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update list")
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponseDTO{Added: added})
}

func nonNil(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
