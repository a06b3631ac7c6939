package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/orders"
	"github.com/raghu62-rp/OSM-main/internal/session"
)

type CheckoutHandler struct {
	sessions *session.Manager
}

func NewCheckoutHandler(sessions *session.Manager) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

type CheckoutRequestDTO struct {
	Address domain.Address     `json:"address"`
	Method  string             `json:"method"`
	Card    domain.CardDetails `json:"card"`
	UPIID   string             `json:"upiId"`
}

type CheckoutResponseDTO struct {
	Order   *domain.Order  `json:"order"`
	Receipt orders.Receipt `json:"receipt"`
}

// Submit runs the whole checkout attempt: validation, the simulated
// payment delay and the best-effort remote submission. The request context
// doubles as the cancellation signal; closing the checkout view aborts the
// attempt without a dangling write.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	method := domain.PaymentMethod(req.Method)
	switch method {
	case domain.PaymentMethodCard, domain.PaymentMethodUPI, domain.PaymentMethodWallet:
	default:
		respondError(w, http.StatusBadRequest, "invalid_method", "unknown payment method")
		return
	}

	sess := h.sessions.Session(getSessionID(r.Context()))
	order, err := sess.Checkout(r.Context(), req.Address, method, domain.PaymentDetails{
		Card:  req.Card,
		UPIID: req.UPIID,
	})
	if err != nil {
		respondCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		Order:   order,
		Receipt: orders.BuildReceipt(*order),
	})
}

func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Session(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": sess.CheckoutStatus().String()})
}
