package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// HealthChecker is what the poller needs from the catalog client.
type HealthChecker interface {
	Health(ctx context.Context) (HealthStatus, error)
}

// Poller probes the catalog health endpoint on a fixed interval and keeps
// the latest result for the "API unreachable" banner. Losing the service
// is never fatal; the flag just flips.
type Poller struct {
	client   HealthChecker
	interval time.Duration
	log      zerolog.Logger

	mu          sync.RWMutex
	reachable   bool
	lastChecked time.Time
}

func NewPoller(client HealthChecker, interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
		log:      log,
		// assume reachable until the first probe says otherwise
		reachable: true,
	}
}

// Run probes immediately and then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

func (p *Poller) Reachable() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reachable
}

func (p *Poller) LastChecked() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastChecked
}

func (p *Poller) check(ctx context.Context) {
	status, err := p.client.Health(ctx)
	reachable := err == nil && status.OK

	p.mu.Lock()
	changed := p.reachable != reachable
	p.reachable = reachable
	p.lastChecked = time.Now()
	p.mu.Unlock()

	if changed {
		if reachable {
			p.log.Info().Msg("catalog service reachable again")
		} else {
			p.log.Warn().Err(err).Msg("catalog service unreachable")
		}
	}
}
