package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
)

// Metrics returns middleware recording request counts and latency per route.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))
			return nil
		}
	}
}
