package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the id
//  2. RequestLogger
//  3. Metrics, skipped when m is nil
//  4. Recover, innermost so a panic still reaches the logger as a 500
//
// It must be called before routes are registered.
func Setup(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	for _, mw := range Chain(log, m) {
		e.Use(mw)
	}
}

// Chain returns the middleware of Setup as a slice for route groups.
func Chain(log zerolog.Logger, m *metrics.Metrics) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
	}
	if m != nil {
		chain = append(chain, Metrics(m))
	}
	return append(chain, Recover(log))
}
