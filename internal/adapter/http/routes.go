package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the versioned API routes.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes, applying middleware to the API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	places := api.Group("/places")
	places.GET("/autocomplete", h.PlacesAutocomplete)
}
