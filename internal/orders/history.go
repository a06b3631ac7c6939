package orders

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

var ErrOrderNotFound = errors.New("order not found")

// History is the append-only order list persisted under the userOrders
// key. Absent or malformed entries read as an empty list.
type History struct {
	store store.Store
	log   zerolog.Logger
}

func NewHistory(s store.Store, log zerolog.Logger) *History {
	return &History{store: s, log: log}
}

func (h *History) Append(ctx context.Context, o domain.Order) error {
	existing := h.load(ctx)
	return store.WriteJSON(ctx, h.store, store.KeyUserOrders, append(existing, o))
}

func (h *History) List(ctx context.Context) []domain.Order {
	return h.load(ctx)
}

func (h *History) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	for _, o := range h.load(ctx) {
		if o.OrderID == orderID {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (h *History) load(ctx context.Context) []domain.Order {
	var list []domain.Order
	err := store.ReadJSON(ctx, h.store, store.KeyUserOrders, &list)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		h.log.Warn().Err(err).Msg("order history unreadable, treating as empty")
		return nil
	}
	return list
}
