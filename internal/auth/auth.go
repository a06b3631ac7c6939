// Package auth reads the opaque token and user the auth service left in
// client storage. The core never inspects either; it only needs to know
// whether a token exists when submitting orders.
package auth

import (
	"context"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

type Provider struct {
	store store.Store
}

func NewProvider(s store.Store) *Provider {
	return &Provider{store: s}
}

// Token returns the current auth token, if one is stored. A missing or
// malformed entry reads as "not signed in".
func (p *Provider) Token(ctx context.Context) (string, bool) {
	var token string
	if err := store.ReadJSON(ctx, p.store, store.KeyToken, &token); err != nil {
		return "", false
	}
	return token, token != ""
}

// CurrentUser returns the stored user profile, if any.
func (p *Provider) CurrentUser(ctx context.Context) (*domain.User, bool) {
	var user domain.User
	if err := store.ReadJSON(ctx, p.store, store.KeyUser, &user); err != nil {
		return nil, false
	}
	if user.ID == "" && user.Email == "" {
		return nil, false
	}
	return &user, true
}

func (p *Provider) SetToken(ctx context.Context, token string) error {
	return store.WriteJSON(ctx, p.store, store.KeyToken, token)
}

func (p *Provider) SetUser(ctx context.Context, user domain.User) error {
	return store.WriteJSON(ctx, p.store, store.KeyUser, user)
}
