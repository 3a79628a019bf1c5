package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

func TestSortOffers(t *testing.T) {
	offers := []domain.Offer{
		createTestOffer("a", 500, 300, "", "AF", "AF"),
		createTestOffer("b", 300, 600, "", "BA"),
		createTestOffer("c", 300, 200, "", "EI", "EI", "EI"),
		createTestOffer("d", 400, 300, "", "VS"),
	}

	tests := []struct {
		name     string
		sortBy   domain.SortOption
		expected []string
	}{
		{"cheapest keeps ties in input order", domain.SortCheapest, []string{"b", "c", "d", "a"}},
		{"shortest", domain.SortShortest, []string{"c", "a", "d", "b"}},
		{"least stops", domain.SortLeastStops, []string{"b", "d", "a", "c"}},
		{"empty sort leaves order", "", []string{"a", "b", "c", "d"}},
		{"unknown sort leaves order", "best", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, offerIDs(SortOffers(offers, tt.sortBy)))
		})
	}
}

func TestSortOffers_DoesNotMutateInput(t *testing.T) {
	offers := []domain.Offer{
		createTestOffer("a", 500, 1, "", "AF"),
		createTestOffer("b", 100, 1, "", "AF"),
	}

	sorted := SortOffers(offers, domain.SortCheapest)

	assert.Equal(t, []string{"b", "a"}, offerIDs(sorted))
	assert.Equal(t, []string{"a", "b"}, offerIDs(offers))
}
