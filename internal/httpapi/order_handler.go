package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/orders"
	"github.com/raghu62-rp/OSM-main/internal/session"
	"github.com/raghu62-rp/OSM-main/internal/tracking"
)

type OrderHandler struct {
	sessions *session.Manager
}

func NewOrderHandler(sessions *session.Manager) *OrderHandler {
	return &OrderHandler{sessions: sessions}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))

	list := sess.History().List(r.Context())
	if list == nil {
		list = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": list})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))

	order, err := sess.History().Get(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))

	order, err := sess.History().Get(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders.BuildReceipt(*order))
}

func (h *OrderHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))

	order, err := sess.History().Get(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		respondCheckoutError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tracking.Project(*order))
}
