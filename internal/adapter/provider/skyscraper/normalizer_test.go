package skyscraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

func intPtr(v int) *int { return &v }

func loadFixture(t *testing.T, name string) any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return decode(t, string(raw))
}

func fixtureRecords(t *testing.T) []record {
	t.Helper()
	root := pickRoot(loadFixture(t, "list_one_way.json"))
	return LocateFlightList(root["data"])
}

func baseQuery() *domain.SearchQuery {
	return &domain.SearchQuery{
		Origin:      "JFK",
		Destination: "LHR",
		DepartDate:  "2025-06-01",
		Adults:      1,
		Cabin:       domain.CabinEconomy,
	}
}

func TestNormalizer_Fixture(t *testing.T) {
	batch := newNormalizer(baseQuery(), "USD").normalizeAll(fixtureRecords(t))

	require.Len(t, batch.Offers, 5)
	assert.Equal(t, 0, batch.Excluded)
	assert.Equal(t, domain.StopsCounts{"0": 3, "1": 2, "2+": 0}, batch.StopsCounts)
	assert.Equal(t, []string{"AF", "BA", "EI", "VS"}, batch.Airlines)

	t.Run("two-segment object airline offer", func(t *testing.T) {
		o := batch.Offers[0]
		assert.Equal(t, publicOfferID("CfDJ8Af0-long-vendor-token-1"), o.ID)
		assert.Equal(t, domain.Price{Total: 450, Currency: "USD"}, o.Price)
		assert.Equal(t, 1, o.Stops)
		assert.Equal(t, 510, o.DurationMinutes, "sum of segment durations")
		assert.Equal(t, []domain.AirlineRef{{Code: "AF", Name: "Air France"}}, o.Airlines)
		assert.Equal(t, "2025-06-01T18:30:00", o.DepartAt)
		assert.Equal(t, "2025-06-02T10:05:00", o.ArriveAt)

		require.Len(t, o.Segments, 2)
		assert.Equal(t, domain.Segment{
			From:            "JFK",
			To:              "CDG",
			DepartAt:        "2025-06-01T18:30:00",
			ArriveAt:        "2025-06-02T07:45:00",
			Airline:         "AF",
			AirlineName:     "Air France",
			FlightNumber:    "AF 23",
			DurationMinutes: 435,
		}, o.Segments[0])
		assert.Equal(t, "2025-06-02T00:50:00", o.Segments[1].DepartAt, "null hour repaired")
		assert.Equal(t, "AF 1180", o.Segments[1].FlightNumber)
	})

	t.Run("vendor duration wins and string price parsed", func(t *testing.T) {
		o := batch.Offers[1]
		assert.Equal(t, publicOfferID("BA-178"), o.ID)
		assert.Equal(t, 1020.5, o.Price.Total)
		assert.Equal(t, 0, o.Stops)
		assert.Equal(t, 410, o.DurationMinutes)
		assert.Equal(t, []domain.AirlineRef{{Code: "BA", Name: "BA"}}, o.Airlines)
	})

	t.Run("legs fallback with query codes as last resort", func(t *testing.T) {
		o := batch.Offers[2]
		assert.Equal(t, publicOfferID("leg-shaped"), o.ID)
		assert.Equal(t, 610.0, o.Price.Total)
		assert.Equal(t, 1, o.Stops)
		assert.Equal(t, 450, o.DurationMinutes)
		require.Len(t, o.Segments, 2)
		assert.Equal(t, "DUB", o.Segments[0].To)
		assert.Equal(t, "JFK", o.Segments[1].From)
		assert.Equal(t, "LHR", o.Segments[1].To)
		assert.Equal(t, "2025-06-02T00:00:00", o.Segments[1].DepartAt)
		assert.Empty(t, o.ArriveAt, "no arrival date on the last segment")
	})

	t.Run("zero-segment offer kept without filters", func(t *testing.T) {
		o := batch.Offers[3]
		assert.Equal(t, publicOfferID("idx_3"), o.ID)
		assert.Equal(t, 300.0, o.Price.Total)
		assert.Equal(t, 0, o.Stops)
		assert.Empty(t, o.Segments)
		assert.Empty(t, o.Airlines)
		assert.Empty(t, o.DepartAt)
	})

	t.Run("unparseable segment duration is zero", func(t *testing.T) {
		o := batch.Offers[4]
		assert.Equal(t, 999.0, o.Price.Total)
		assert.Equal(t, 0, o.DurationMinutes)
		assert.Equal(t, 0, o.Segments[0].DurationMinutes)
	})
}

func TestNormalizer_ExcludesZeroSegmentRecordsUnderFilters(t *testing.T) {
	tests := []struct {
		name  string
		query func(q *domain.SearchQuery)
	}{
		{name: "max stops", query: func(q *domain.SearchQuery) { q.MaxStops = intPtr(2) }},
		{name: "allowed airlines", query: func(q *domain.SearchQuery) { q.AllowedAirlines = []string{"AF"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuery()
			tt.query(q)

			batch := newNormalizer(q, "EUR").normalizeAll(fixtureRecords(t))

			assert.Len(t, batch.Offers, 4)
			assert.Equal(t, 1, batch.Excluded)
			for _, o := range batch.Offers {
				assert.NotEmpty(t, o.Segments)
				assert.Equal(t, "EUR", o.Price.Currency)
			}
		})
	}
}

func TestNormalizer_StopsFollowSegmentCount(t *testing.T) {
	raw := decode(t, `{"id": "x", "stops": 0, "segments": [
		{"from": "JFK", "to": "KEF"}, {"from": "KEF", "to": "OSL"}, {"from": "OSL", "to": "LHR"}
	]}`).(map[string]any)

	o, ok := newNormalizer(baseQuery(), "USD").normalize(raw, 0)

	require.True(t, ok)
	assert.Equal(t, 2, o.Stops, "segment count wins over the vendor stops field")
}

func TestPublicOfferID(t *testing.T) {
	id := publicOfferID("some-very-long-token")

	assert.Regexp(t, `^off_[0-9a-f]{16}$`, id)
	assert.Equal(t, id, publicOfferID("some-very-long-token"))
	assert.NotEqual(t, id, publicOfferID("another-token"))
	assert.NotContains(t, id, "token")
}
