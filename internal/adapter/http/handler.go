// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/http/response"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	search usecase.FlightSearchUseCase
	places usecase.PlacesUseCase
	log    zerolog.Logger
}

// NewFlightHandler creates a new FlightHandler with the given use cases.
func NewFlightHandler(search usecase.FlightSearchUseCase, places usecase.PlacesUseCase, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{
		search: search,
		places: places,
		log:    log,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search Sky-Scraper offers, normalized, filtered, sorted and limited, with a price-history series
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search query"
// @Success 200 {object} SwaggerSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Configuration error"
// @Failure 502 {object} response.ErrorDetail "Upstream provider error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), ToDomainQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// PlacesAutocomplete handles GET /api/v1/places/autocomplete
//
// @Summary Airport autocomplete
// @Description Case-insensitive substring search over airport codes, cities, names and countries
// @Tags places
// @Produce json
// @Param q query string true "Search text (at least 2 characters)"
// @Param limit query int false "Maximum results (1-12, default 8)"
// @Success 200 {object} PlacesResponseDTO
// @Failure 502 {object} PlacesResponseDTO "Airport dataset unavailable"
// @Router /places/autocomplete [get]
func (h *FlightHandler) PlacesAutocomplete(c echo.Context) error {
	limit := ParsePlacesLimit(c.QueryParam("limit"))

	result, err := h.places.Autocomplete(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("autocomplete failed")
		query := ""
		if result != nil {
			query = result.Query
		}
		return c.JSON(http.StatusBadGateway, PlacesErrorResponse(query))
	}

	return response.OK(c, ToPlacesResponse(result))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError logs provider failures and maps every error to a structured response.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	event := h.log.Warn()
	if domain.StatusCode(err) >= http.StatusInternalServerError {
		event = h.log.Error()
	}
	event.
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Int("status", domain.StatusCode(err)).
		Msg("search failed")

	return response.FromError(c, err)
}
