package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOption_IsValid(t *testing.T) {
	assert.True(t, SortCheapest.IsValid())
	assert.True(t, SortShortest.IsValid())
	assert.True(t, SortLeastStops.IsValid())
	assert.False(t, SortOption("best").IsValid())
	assert.False(t, SortOption("").IsValid())
}

func TestOfferFilter_Matches(t *testing.T) {
	direct := Offer{Stops: 0, Airlines: []AirlineRef{{Code: "AF", Name: "Air France"}}}
	mixed := Offer{Stops: 1, Airlines: []AirlineRef{{Code: "AF"}, {Code: "KL"}}}
	noAirline := Offer{Stops: 0}

	tests := []struct {
		name   string
		filter *OfferFilter
		offer  Offer
		want   bool
	}{
		{name: "nil filter passes", filter: nil, offer: mixed, want: true},
		{name: "empty filter passes", filter: &OfferFilter{}, offer: noAirline, want: true},
		{name: "max stops allows equal", filter: &OfferFilter{MaxStops: intPtr(1)}, offer: mixed, want: true},
		{name: "max stops drops more", filter: &OfferFilter{MaxStops: intPtr(0)}, offer: mixed, want: false},
		{name: "all airlines allowed", filter: &OfferFilter{AllowedAirlines: []string{"AF", "KL"}}, offer: mixed, want: true},
		{name: "one airline not allowed", filter: &OfferFilter{AllowedAirlines: []string{"AF"}}, offer: mixed, want: false},
		{name: "single allowed airline", filter: &OfferFilter{AllowedAirlines: []string{"AF"}}, offer: direct, want: true},
		{name: "empty airline set never passes", filter: &OfferFilter{AllowedAirlines: []string{"AF"}}, offer: noAirline, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&tt.offer))
		})
	}
}
