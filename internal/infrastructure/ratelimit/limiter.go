// Package ratelimit throttles outbound upstream calls with one token bucket per endpoint.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config is the bucket size applied to every endpoint without an override.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns the default upstream budget.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

// EndpointLimiter lazily creates one limiter per endpoint name.
type EndpointLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	defaults Config
}

// NewEndpointLimiter creates a limiter set with the given defaults.
// A non-positive rate disables limiting.
func NewEndpointLimiter(cfg Config) *EndpointLimiter {
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// Limiter returns the limiter for endpoint, creating it on first use.
func (l *EndpointLimiter) Limiter(endpoint string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[endpoint]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok = l.limiters[endpoint]; ok {
		return limiter
	}

	limit := rate.Limit(l.defaults.RequestsPerSecond)
	if l.defaults.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := l.defaults.BurstSize
	if burst <= 0 {
		burst = 1
	}
	limiter = rate.NewLimiter(limit, burst)
	l.limiters[endpoint] = limiter
	return limiter
}

// SetLimit overrides the budget of one endpoint.
func (l *EndpointLimiter) SetLimit(endpoint string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until endpoint may issue a request or ctx is done.
// A nil limiter never blocks.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	if l == nil {
		return nil
	}
	return l.Limiter(endpoint).Wait(ctx)
}
