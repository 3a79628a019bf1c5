package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

func testAirports() []domain.Airport {
	return []domain.Airport{
		{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy International Airport", City: "New York", Country: "US"},
		{IATA: "LGA", ICAO: "KLGA", Name: "La Guardia Airport", City: "New York", Country: "US"},
		{IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "GB"},
		{ICAO: "EGLW", Name: "London Heliport", City: "London", Country: "GB"},
		{Country: "ZZ"},
	}
}

func TestMatchAirports(t *testing.T) {
	t.Run("case-insensitive match over every field", func(t *testing.T) {
		tests := []struct {
			query    string
			expected []string
		}{
			{"jfk", []string{"JFK"}},
			{"kjf", []string{"JFK"}},
			{"new york", []string{"JFK", "LGA"}},
			{"heathrow", []string{"LHR"}},
			{"gb", []string{"LHR", "EGLW"}},
			{"nowhere", []string{}},
		}
		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				results := MatchAirports(testAirports(), tt.query, 12)
				codes := make([]string, 0, len(results))
				for _, r := range results {
					codes = append(codes, r.Code)
				}
				assert.Equal(t, tt.expected, codes)
			})
		}
	})

	t.Run("label and fields", func(t *testing.T) {
		results := MatchAirports(testAirports(), "LHR", 12)
		require.Len(t, results, 1)
		assert.Equal(t, domain.PlaceSuggestion{
			Code:        "LHR",
			Label:       "London - London Heathrow Airport - GB (LHR)",
			City:        "London",
			Country:     "GB",
			AirportName: "London Heathrow Airport",
		}, results[0])
	})

	t.Run("icao used when iata is missing", func(t *testing.T) {
		results := MatchAirports(testAirports(), "heliport", 12)
		require.Len(t, results, 1)
		assert.Equal(t, "EGLW", results[0].Code)
	})

	t.Run("records without code, city or name are skipped", func(t *testing.T) {
		assert.Empty(t, MatchAirports(testAirports(), "zz", 12))
	})

	t.Run("stops at limit", func(t *testing.T) {
		assert.Len(t, MatchAirports(testAirports(), "new york", 1), 1)
	})
}

func TestClampPlacesLimit(t *testing.T) {
	assert.Equal(t, 1, ClampPlacesLimit(0))
	assert.Equal(t, 1, ClampPlacesLimit(-4))
	assert.Equal(t, 8, ClampPlacesLimit(8))
	assert.Equal(t, 12, ClampPlacesLimit(50))
}

func TestPlacesUseCase_Autocomplete(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClockFromString("2025-05-20T10:00:00Z")

	t.Run("short query skips the dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := domain.NewMockAirportSource(ctrl)
		source.EXPECT().Airports(gomock.Any()).Times(0)

		uc := NewPlacesUseCase(source, cache.NewMemoryStore(clock), PlacesConfig{Clock: clock, Logger: zerolog.Nop()})
		out, err := uc.Autocomplete(ctx, "  j ", 8)

		require.NoError(t, err)
		assert.Equal(t, "j", out.Query)
		assert.NotNil(t, out.Results)
		assert.Empty(t, out.Results)
	})

	t.Run("results are cached per query and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := domain.NewMockAirportSource(ctrl)
		source.EXPECT().Airports(gomock.Any()).Return(testAirports(), nil).Times(2)

		uc := NewPlacesUseCase(source, cache.NewMemoryStore(clock), PlacesConfig{Clock: clock, Logger: zerolog.Nop()})

		first, err := uc.Autocomplete(ctx, "New York", 8)
		require.NoError(t, err)
		assert.Len(t, first.Results, 2)

		again, err := uc.Autocomplete(ctx, "new york", 8)
		require.NoError(t, err)
		assert.Equal(t, first.Results, again.Results)
		assert.Equal(t, "new york", again.Query)

		limited, err := uc.Autocomplete(ctx, "new york", 1)
		require.NoError(t, err)
		assert.Len(t, limited.Results, 1)
	})

	t.Run("dataset failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := domain.NewMockAirportSource(ctrl)
		source.EXPECT().Airports(gomock.Any()).Return(nil, errors.New("status 503"))

		store := cache.NewMemoryStore(clock)
		uc := NewPlacesUseCase(source, store, PlacesConfig{Clock: clock, Logger: zerolog.Nop()})
		out, err := uc.Autocomplete(ctx, "london", 8)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
		assert.Equal(t, "london", out.Query)
		assert.Empty(t, out.Results)
		assert.Equal(t, 0, store.Len())
	})
}
