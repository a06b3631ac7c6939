// Package session holds the per-shopper state: the current cart, the
// scoped client storage behind it and the checkout service for this
// session. All cart mutations are serialized; once a checkout attempt is
// submitting, it works on a frozen snapshot that later edits cannot touch.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/raghu62-rp/OSM-main/internal/auth"
	"github.com/raghu62-rp/OSM-main/internal/cart"
	"github.com/raghu62-rp/OSM-main/internal/checkout"
	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/orders"
	"github.com/raghu62-rp/OSM-main/internal/profile"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

type Session struct {
	ID string

	mu   sync.Mutex
	cart domain.Cart

	store    store.Store
	checkout *checkout.Service
	history  *orders.History
	auth     *auth.Provider
	lists    *profile.Lists
	log      zerolog.Logger
}

// New builds a session over its scoped slice of the backing store and
// restores any persisted cart; a missing or unreadable cart starts empty.
func New(id string, scoped store.Store, submitter checkout.OrderSubmitter, payDelay time.Duration, log zerolog.Logger) *Session {
	sessionLog := log.With().Str("session_id", id).Logger()

	authProvider := auth.NewProvider(scoped)
	history := orders.NewHistory(scoped, sessionLog)

	s := &Session{
		ID:       id,
		store:    scoped,
		checkout: checkout.NewService(submitter, authProvider, history, payDelay, sessionLog),
		history:  history,
		auth:     authProvider,
		lists:    profile.NewLists(scoped, sessionLog),
		log:      sessionLog,
	}

	var persisted domain.Cart
	err := store.ReadJSON(context.Background(), scoped, store.KeyCart, &persisted)
	if err == nil {
		s.cart = persisted
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		sessionLog.Warn().Err(err).Msg("persisted cart unreadable, starting empty")
	}

	return s
}

func (s *Session) AddToCart(ctx context.Context, p domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.AddItem(s.cart, p)
	s.persistCart(ctx)
	return s.cart
}

func (s *Session) SetQuantity(ctx context.Context, productID string, qty int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.SetQuantity(s.cart, productID, qty)
	s.persistCart(ctx)
	return s.cart
}

func (s *Session) RemoveFromCart(ctx context.Context, productID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.RemoveItem(s.cart, productID)
	s.persistCart(ctx)
	return s.cart
}

// Cart returns a snapshot of the current cart.
func (s *Session) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Checkout submits a frozen snapshot of the cart. On success the cart is
// cleared; on any failure it is left untouched for the shopper to retry.
func (s *Session) Checkout(ctx context.Context, addr domain.Address, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.Order, error) {
	snapshot := s.Cart()

	order, err := s.checkout.Submit(ctx, snapshot, addr, method, details)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cart = domain.Cart{}
	s.persistCart(ctx)
	s.mu.Unlock()

	return order, nil
}

func (s *Session) CheckoutStatus() checkout.Status {
	return s.checkout.Status()
}

func (s *Session) History() *orders.History {
	return s.history
}

func (s *Session) Auth() *auth.Provider {
	return s.auth
}

func (s *Session) Lists() *profile.Lists {
	return s.lists
}

// persistCart writes through to the store; callers hold s.mu. A write
// failure downgrades the cart to memory-only rather than failing the edit.
func (s *Session) persistCart(ctx context.Context) {
	if err := store.WriteJSON(ctx, s.store, store.KeyCart, s.cart); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist cart")
	}
}
