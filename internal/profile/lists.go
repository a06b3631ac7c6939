// Package profile manages the wishlist and favorites lists persisted in
// client storage.
package profile

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

type Lists struct {
	store store.Store
	log   zerolog.Logger
}

func NewLists(s store.Store, log zerolog.Logger) *Lists {
	return &Lists{store: s, log: log}
}

func (l *Lists) Wishlist(ctx context.Context) []domain.Product {
	return l.load(ctx, store.KeyWishlist)
}

func (l *Lists) Favorites(ctx context.Context) []domain.Product {
	return l.load(ctx, store.KeyFavorites)
}

// ToggleWishlist adds the product, or removes it when already present.
// Returns whether the product is on the list afterwards.
func (l *Lists) ToggleWishlist(ctx context.Context, p domain.Product) (bool, error) {
	return l.toggle(ctx, store.KeyWishlist, p)
}

func (l *Lists) ToggleFavorite(ctx context.Context, p domain.Product) (bool, error) {
	return l.toggle(ctx, store.KeyFavorites, p)
}

func (l *Lists) RemoveFromWishlist(ctx context.Context, productID string) error {
	return l.remove(ctx, store.KeyWishlist, productID)
}

func (l *Lists) RemoveFromFavorites(ctx context.Context, productID string) error {
	return l.remove(ctx, store.KeyFavorites, productID)
}

func (l *Lists) toggle(ctx context.Context, key string, p domain.Product) (bool, error) {
	list := l.load(ctx, key)
	for i, existing := range list {
		if existing.ID == p.ID {
			list = append(list[:i], list[i+1:]...)
			return false, store.WriteJSON(ctx, l.store, key, list)
		}
	}
	return true, store.WriteJSON(ctx, l.store, key, append(list, p))
}

func (l *Lists) remove(ctx context.Context, key, productID string) error {
	list := l.load(ctx, key)
	out := list[:0]
	for _, p := range list {
		if p.ID != productID {
			out = append(out, p)
		}
	}
	return store.WriteJSON(ctx, l.store, key, out)
}

func (l *Lists) load(ctx context.Context, key string) []domain.Product {
	var list []domain.Product
	err := store.ReadJSON(ctx, l.store, key, &list)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		l.log.Warn().Err(err).Str("key", key).Msg("list unreadable, treating as empty")
		return nil
	}
	return list
}
