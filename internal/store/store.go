// Package store abstracts the durable key-value client storage used for
// the cart, order history, wishlist, favorites and auth state. The core
// logic only depends on this interface so any embedded persistence can be
// swapped in without touching it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrKeyNotFound = errors.New("key not found")

// Well-known keys; each holds one serialized JSON list or object.
const (
	KeyCart       = "cart"
	KeyUserOrders = "userOrders"
	KeyWishlist   = "wishlist"
	KeyFavorites  = "favorites"
	KeyToken      = "token"
	KeyUser       = "user"
)

type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// ReadJSON decodes the value under key into v. Absent keys return
// ErrKeyNotFound; readers are expected to treat that, and any decode
// failure, as an empty value rather than an error condition.
func ReadJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Read(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Write(ctx, key, data)
}
