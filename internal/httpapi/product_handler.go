package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raghu62-rp/OSM-main/internal/catalog"
)

type ProductHandler struct {
	sync   *catalog.Sync
	poller *catalog.Poller
}

func NewProductHandler(sync *catalog.Sync, poller *catalog.Poller) *ProductHandler {
	return &ProductHandler{sync: sync, poller: poller}
}

// List serves the catalog with optional ?search= and ?category= filters.
// A catalog outage is invisible here: the static dataset fills in.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.sync.Products(r.Context())
	products = catalog.Filter(products, r.URL.Query().Get("search"), r.URL.Query().Get("category"))

	respondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	p, ok := h.sync.Product(r.Context(), productID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Health reports the storefront's own liveness plus whether the catalog
// service is currently reachable, for the UI banner.
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":                true,
		"time":              h.poller.LastChecked(),
		"catalog_reachable": h.poller.Reachable(),
	})
}
