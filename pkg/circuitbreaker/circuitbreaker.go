// Package circuitbreaker wraps sony/gobreaker with the settings the
// storefront uses for its remote calls.
package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// New builds a breaker that trips after five consecutive failures and
// probes again after 30 seconds.
func New[T any](name string) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
