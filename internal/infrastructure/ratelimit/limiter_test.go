package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestEndpointLimiter_ReusesLimiterPerEndpoint(t *testing.T) {
	l := NewEndpointLimiter(DefaultConfig())

	a := l.Limiter("list")
	b := l.Limiter("list")
	c := l.Limiter("price_graph")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 10, a.Burst())
}

func TestEndpointLimiter_DisabledRate(t *testing.T) {
	l := NewEndpointLimiter(Config{})

	assert.Equal(t, rate.Inf, l.Limiter("list").Limit())
	for i := 0; i < 100; i++ {
		assert.NoError(t, l.Wait(context.Background(), "list"))
	}
}

func TestEndpointLimiter_WaitRespectsContext(t *testing.T) {
	l := NewEndpointLimiter(Config{RequestsPerSecond: 0.001, BurstSize: 1})

	assert.NoError(t, l.Wait(context.Background(), "list"), "burst token is available")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "list"))
}

func TestEndpointLimiter_SetLimit(t *testing.T) {
	l := NewEndpointLimiter(DefaultConfig())
	l.SetLimit("quotes", 1, 3)

	assert.Equal(t, 3, l.Limiter("quotes").Burst())
}

func TestEndpointLimiter_NilNeverBlocks(t *testing.T) {
	var l *EndpointLimiter
	assert.NoError(t, l.Wait(context.Background(), "list"))
}
