package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/raghu62-rp/OSM-main/internal/checkout"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

// Manager hands out one Session per shopper, all sharing a backing store
// but each scoped to its own key namespace.
type Manager struct {
	backing   store.Store
	submitter checkout.OrderSubmitter
	payDelay  time.Duration
	log       zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(backing store.Store, submitter checkout.OrderSubmitter, payDelay time.Duration, log zerolog.Logger) *Manager {
	return &Manager{
		backing:   backing,
		submitter: submitter,
		payDelay:  payDelay,
		log:       log,
		sessions:  make(map[string]*Session),
	}
}

// Session returns the session for id, creating it on first use.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := New(id, store.Scoped(m.backing, "sess:"+id), m.submitter, m.payDelay, m.log)
	m.sessions[id] = s
	return s
}
