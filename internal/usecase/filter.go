// Package usecase contains the flight search business logic: offer collection processing,
// price-history reconciliation, the two cache tiers and the search orchestrator.
package usecase

import (
	"strings"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// ApplyFilters applies the given offer filter to a list of offers.
// It returns a new slice containing only offers that match all filter criteria.
//
// Behavior:
//   - Returns the original slice if the filter is nil or empty
//   - Stops filter drops offers with more stops than MaxStops
//   - Airline filter keeps an offer only if ALL of its airline codes are allowed
//   - An offer without airline codes never passes an airline filter
//   - Does NOT mutate the original offers slice
func ApplyFilters(offers []domain.Offer, filter *domain.OfferFilter) []domain.Offer {
	if filter.IsEmpty() {
		return offers
	}

	normalized := &domain.OfferFilter{
		MaxStops:        filter.MaxStops,
		AllowedAirlines: normalizeAirlineCodes(filter.AllowedAirlines),
	}

	result := make([]domain.Offer, 0, len(offers))
	for i := range offers {
		if normalized.Matches(&offers[i]) {
			result = append(result, offers[i])
		}
	}
	return result
}

// FilterByMaxStops filters offers by maximum number of stops.
func FilterByMaxStops(offers []domain.Offer, maxStops *int) []domain.Offer {
	return ApplyFilters(offers, &domain.OfferFilter{MaxStops: maxStops})
}

// FilterByAirlines filters offers to those operated only by the given airlines.
func FilterByAirlines(offers []domain.Offer, airlines []string) []domain.Offer {
	return ApplyFilters(offers, &domain.OfferFilter{AllowedAirlines: airlines})
}

// normalizeAirlineCodes uppercases and trims codes, dropping blanks.
func normalizeAirlineCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
