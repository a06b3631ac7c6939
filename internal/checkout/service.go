package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/raghu62-rp/OSM-main/internal/cart"
	"github.com/raghu62-rp/OSM-main/internal/domain"
)

const deliveryLeadDays = 5

// OrderSubmitter pushes the payload to the remote order store. An empty
// returned id means the store did not assign one.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload domain.OrderPayload, token string) (string, error)
}

// TokenSource reports the current auth token, if any. Without a token the
// remote store is never contacted.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// OrderHistory is the locally persisted, append-only order list.
type OrderHistory interface {
	Append(ctx context.Context, o domain.Order) error
}

// PaymentAuthorizer is an optional decline/stock-check hook consulted after
// the simulated payment delay. The default (nil) always approves, matching
// the storefront's simulated gateway.
type PaymentAuthorizer func(ctx context.Context, payload domain.OrderPayload) error

// Service drives one checkout attempt at a time through
// IDLE -> VALIDATING -> PAYING_SIMULATED -> SUBMITTING -> SUCCEEDED|FAILED.
// The remote submission is best effort and at most once per attempt: a
// failure there never blocks order confirmation.
type Service struct {
	submitter OrderSubmitter
	tokens    TokenSource
	history   OrderHistory
	authorize PaymentAuthorizer
	payDelay  time.Duration
	log       zerolog.Logger

	now        func() time.Time
	newOrderID func() string

	mu     sync.Mutex
	status Status
}

func NewService(submitter OrderSubmitter, tokens TokenSource, history OrderHistory, payDelay time.Duration, log zerolog.Logger) *Service {
	return &Service{
		submitter:  submitter,
		tokens:     tokens,
		history:    history,
		payDelay:   payDelay,
		log:        log,
		now:        time.Now,
		newOrderID: randomOrderID,
		status:     StatusIdle,
	}
}

// SetAuthorizer installs a decline hook; pass nil to restore the default
// always-approve behavior.
func (s *Service) SetAuthorizer(fn PaymentAuthorizer) {
	s.authorize = fn
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submit runs a full checkout attempt over a frozen snapshot of the cart.
// Validation failures return the attempt to idle with the reason surfaced
// to the caller. Once the attempt is in flight a second Submit returns
// ErrCheckoutInProgress until it finishes. Cancelling ctx before the
// attempt completes discards any in-flight result and mutates nothing.
func (s *Service) Submit(ctx context.Context, c domain.Cart, addr domain.Address, method domain.PaymentMethod, details domain.PaymentDetails) (*domain.Order, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	if err := Validate(addr, method, details); err != nil {
		s.reset(StatusIdle)
		return nil, err
	}

	if c.IsEmpty() {
		s.reset(StatusFailed)
		return nil, ErrEmptyCart
	}

	// freeze the snapshot before any suspension point
	items := make([]domain.OrderItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		}
	}
	payload := domain.OrderPayload{
		Items:           items,
		Total:           cart.Total(c),
		PaymentMethod:   method,
		ShippingAddress: addr,
	}

	if err := s.advance(StatusPaying); err != nil {
		return nil, err
	}

	// the simulated gateway: a fixed delay, no decline
	select {
	case <-time.After(s.payDelay):
	case <-ctx.Done():
		s.reset(StatusIdle)
		return nil, ctx.Err()
	}

	if s.authorize != nil {
		if err := s.authorize(ctx, payload); err != nil {
			s.reset(StatusFailed)
			s.log.Warn().Err(err).Msg("payment authorizer declined checkout")
			return nil, err
		}
	}

	if err := s.advance(StatusSubmitting); err != nil {
		return nil, err
	}

	orderID := ""
	if token, ok := s.tokens.Token(ctx); ok {
		remoteID, err := s.submitter.Submit(ctx, payload, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("remote order submission failed, keeping order locally")
		} else {
			orderID = remoteID
		}
	}

	if ctx.Err() != nil {
		// result arrived after the checkout view was closed: discard it
		s.reset(StatusIdle)
		return nil, ctx.Err()
	}

	if orderID == "" {
		orderID = s.newOrderID()
	}

	placedAt := s.now()
	order := &domain.Order{
		OrderID:               orderID,
		Date:                  placedAt,
		Items:                 items,
		Total:                 payload.Total,
		PaymentMethod:         method,
		ShippingAddress:       addr,
		Status:                domain.OrderStatusProcessing,
		EstimatedDeliveryDate: placedAt.AddDate(0, 0, deliveryLeadDays),
	}

	if err := s.history.Append(ctx, *order); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.OrderID).Msg("failed to persist order history")
	}

	if err := s.advance(StatusSucceeded); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.OrderID).
		Str("total", order.Total.StringFixed(2)).
		Str("payment_method", method.String()).
		Msg("order placed")

	return order, nil
}

// begin claims the attempt; only one may be in flight per session.
func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case StatusValidating, StatusPaying, StatusSubmitting:
		return ErrCheckoutInProgress
	}
	s.status = StatusValidating
	return nil
}

func (s *Service) advance(to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !CanTransitionTo(s.status, to) {
		return ErrIllegalTransition
	}
	s.status = to
	return nil
}

// reset forces the terminal/idle state of an attempt regardless of the
// transition table; used for validation bounce-back and cancellation.
func (s *Service) reset(to Status) {
	s.mu.Lock()
	s.status = to
	s.mu.Unlock()
}
