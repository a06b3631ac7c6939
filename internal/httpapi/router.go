// Package httpapi exposes the storefront engine over HTTP for the
// client-side UI.
package httpapi

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raghu62-rp/OSM-main/internal/catalog"
	"github.com/raghu62-rp/OSM-main/internal/session"
)

// NewRouter wires every handler under /api/v1 with a per-shopper session
// cookie. The request timeout must leave room for the simulated payment
// delay inside POST /checkout.
func NewRouter(sessions *session.Manager, sync *catalog.Sync, poller *catalog.Poller, requestTimeout time.Duration) chi.Router {
	productHandler := NewProductHandler(sync, poller)
	cartHandler := NewCartHandler(sessions, sync)
	checkoutHandler := NewCheckoutHandler(sessions)
	orderHandler := NewOrderHandler(sessions)
	profileHandler := NewProfileHandler(sessions, sync)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	r.Get("/health", productHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{product_id}", productHandler.Get)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Submit)
		r.Get("/checkout/status", checkoutHandler.Status)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Get("/{order_id}", orderHandler.Get)
			r.Get("/{order_id}/receipt", orderHandler.Receipt)
			r.Get("/{order_id}/tracking", orderHandler.Tracking)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", profileHandler.Wishlist)
			r.Post("/", profileHandler.ToggleWishlist)
			r.Delete("/{product_id}", profileHandler.RemoveFromWishlist)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", profileHandler.Favorites)
			r.Post("/", profileHandler.ToggleFavorite)
			r.Delete("/{product_id}", profileHandler.RemoveFromFavorites)
		})
	})

	return r
}
