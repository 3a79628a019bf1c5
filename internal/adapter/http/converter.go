// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"strconv"
	"strings"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/usecase"
)

// ToDomainQuery converts a validated SearchFlightsRequest to a domain.SearchQuery.
// A negative maxStops is ignored like any other unusable value.
func ToDomainQuery(req *SearchFlightsRequest) *domain.SearchQuery {
	q := &domain.SearchQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartDate:  req.DepartDate,
		ReturnDate:  req.ReturnDate,
		Adults:      req.Adults,
		Cabin:       req.Cabin,
		Currency:    req.Currency,
		Sort:        domain.SortOption(req.Sort),
		Limit:       req.Limit.Value,
		BypassCache: req.BypassCache,
	}

	if ms := req.MaxStops.Value; ms != nil && *ms >= 0 {
		q.MaxStops = ms
	}
	if len(req.AllowedAirlines) > 0 {
		q.AllowedAirlines = append([]string(nil), req.AllowedAirlines...)
	}
	return q
}

// ParsePlacesLimit reads the autocomplete limit query parameter.
// Missing or non-numeric values fall back to the default; the result is clamped.
func ParsePlacesLimit(raw string) int {
	limit := domain.DefaultPlacesLimit
	if raw = strings.TrimSpace(raw); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return usecase.ClampPlacesLimit(limit)
}
