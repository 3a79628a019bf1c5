package usecase

import (
	"sort"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// SortOffers sorts offers based on the specified sort option.
//
// Sort options:
//   - SortCheapest: ascending by Price.Total
//   - SortShortest: ascending by DurationMinutes
//   - SortLeastStops: ascending by Stops
//
// Behavior:
//   - The sort is stable: ties keep their upstream order
//   - Empty or unknown sortBy leaves the order unchanged
//   - Does NOT mutate the original offers slice
func SortOffers(offers []domain.Offer, sortBy domain.SortOption) []domain.Offer {
	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	if len(result) < 2 || !sortBy.IsValid() {
		return result
	}

	var less func(a, b *domain.Offer) bool
	switch sortBy {
	case domain.SortCheapest:
		less = func(a, b *domain.Offer) bool { return a.Price.Total < b.Price.Total }
	case domain.SortShortest:
		less = func(a, b *domain.Offer) bool { return a.DurationMinutes < b.DurationMinutes }
	case domain.SortLeastStops:
		less = func(a, b *domain.Offer) bool { return a.Stops < b.Stops }
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(&result[i], &result[j])
	})
	return result
}
