package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

const objectDataset = `{
  "KJFK": {"icao": "KJFK", "iata": "JFK", "name": "John F Kennedy International Airport", "city": "New York", "country": "US"},
  "EGLL": {"icao": "EGLL", "iata": "LHR", "name": "London Heathrow Airport", "city": "London", "country": "GB"},
  "broken": "not an object"
}`

const listDataset = `[
  {"iataCode": "CDG", "icaoCode": "LFPG", "airportName": "Charles de Gaulle", "city": "Paris", "country": "FR"},
  42,
  {"iata": "", "icao": "EGLW", "name": "London Heliport", "city": "London", "country": "GB"}
]`

var fastPolicy = retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}

func TestParseDataset(t *testing.T) {
	t.Run("object keyed by id", func(t *testing.T) {
		airports, err := ParseDataset([]byte(objectDataset))
		require.NoError(t, err)
		assert.Equal(t, []domain.Airport{
			{IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "GB"},
			{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy International Airport", City: "New York", Country: "US"},
		}, airports)
	})

	t.Run("list with alternate field names", func(t *testing.T) {
		airports, err := ParseDataset([]byte(listDataset))
		require.NoError(t, err)
		require.Len(t, airports, 2)
		assert.Equal(t, domain.Airport{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle", City: "Paris", Country: "FR"}, airports[0])
		assert.Equal(t, "", airports[1].IATA)
		assert.Equal(t, "EGLW", airports[1].Code())
	})

	t.Run("invalid payloads", func(t *testing.T) {
		for _, body := range []string{`not json`, `"a string"`, `12`} {
			_, err := ParseDataset([]byte(body))
			assert.ErrorIs(t, err, ErrDataset, body)
		}
	})
}

func TestLoader_Airports(t *testing.T) {
	ctx := context.Background()

	t.Run("downloads once and serves from cache", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(objectDataset))
		}))
		defer srv.Close()

		clock := timeutil.NewMockClockFromString("2025-05-20T10:00:00Z")
		store := cache.NewMemoryStore(clock)
		l := NewLoader(Config{URL: srv.URL}, store, WithClock(clock), WithRetryPolicy(fastPolicy))

		first, err := l.Airports(ctx)
		require.NoError(t, err)
		assert.Len(t, first, 2)

		second, err := l.Airports(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), hits.Load())

		clock.Advance(DefaultDatasetTTL + time.Minute)
		_, err = l.Airports(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(listDataset))
		}))
		defer srv.Close()

		l := NewLoader(Config{URL: srv.URL}, nil, WithRetryPolicy(fastPolicy))

		airports, err := l.Airports(ctx)
		require.NoError(t, err)
		assert.Len(t, airports, 2)
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		l := NewLoader(Config{URL: srv.URL}, nil, WithRetryPolicy(fastPolicy))

		_, err := l.Airports(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDataset)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("concurrent misses share one download", func(t *testing.T) {
		var hits atomic.Int32
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			<-release
			_, _ = w.Write([]byte(objectDataset))
		}))
		defer srv.Close()

		l := NewLoader(Config{URL: srv.URL}, nil, WithRetryPolicy(fastPolicy))

		var wg sync.WaitGroup
		errs := make(chan error, 5)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := l.Airports(ctx)
				errs <- err
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
		assert.Equal(t, int32(1), hits.Load())
	})
}
