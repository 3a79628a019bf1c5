package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

const (
	placesKeyPrefix = "places:airports"
	tierPlaces      = "places"

	// DefaultPlacesQueryTTL is how long one query's suggestions are cached.
	DefaultPlacesQueryTTL = time.Hour

	labelSeparator = " - "
)

// PlacesUseCase defines the airport autocomplete operation.
type PlacesUseCase interface {
	// Autocomplete returns up to limit airports matching query.
	Autocomplete(ctx context.Context, query string, limit int) (*domain.PlaceResults, error)
}

type placesUseCase struct {
	source  domain.AirportSource
	cache   cacheTier
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// PlacesConfig contains configuration options for the places use case.
type PlacesConfig struct {
	QueryTTL time.Duration
	Clock    timeutil.Clock
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger
}

// NewPlacesUseCase creates a PlacesUseCase over source, caching suggestions in store.
func NewPlacesUseCase(source domain.AirportSource, store cache.Store, cfg PlacesConfig) PlacesUseCase {
	if cfg.QueryTTL <= 0 {
		cfg.QueryTTL = DefaultPlacesQueryTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if store == nil {
		store = cache.NewNoOpStore()
	}
	log := cfg.Logger.With().Str("component", "places").Logger()

	return &placesUseCase{
		source: source,
		cache: cacheTier{
			name: tierPlaces, store: store, ttl: cfg.QueryTTL,
			clock: cfg.Clock, metrics: cfg.Metrics, log: log,
		},
		metrics: cfg.Metrics,
		log:     log,
	}
}

// ClampPlacesLimit bounds limit to [MinPlacesLimit, MaxPlacesLimit].
func ClampPlacesLimit(limit int) int {
	return max(domain.MinPlacesLimit, min(limit, domain.MaxPlacesLimit))
}

// Autocomplete implements PlacesUseCase.Autocomplete.
// Queries shorter than two characters return no results without touching the dataset.
func (uc *placesUseCase) Autocomplete(ctx context.Context, query string, limit int) (*domain.PlaceResults, error) {
	query = strings.TrimSpace(query)
	out := &domain.PlaceResults{Query: query, Results: []domain.PlaceSuggestion{}}
	if len([]rune(query)) < domain.MinPlaceQueryLength {
		return out, nil
	}
	limit = ClampPlacesLimit(limit)
	key := placesKeyPrefix + ":" + strings.ToLower(query) + ":" + strconv.Itoa(limit)

	entry, ok, err := cache.GetEntry[[]domain.PlaceSuggestion](ctx, uc.cache.store, key)
	if err != nil {
		uc.log.Warn().Err(err).Msg("cache read failed")
	}
	uc.metrics.CacheLookup(tierPlaces, ok)
	if ok {
		if entry.Payload != nil {
			out.Results = entry.Payload
		}
		return out, nil
	}

	airports, err := uc.source.Airports(ctx)
	if err != nil {
		return out, fmt.Errorf("load airports dataset: %w", err)
	}

	out.Results = MatchAirports(airports, query, limit)
	if err := cache.SetEntry(ctx, uc.cache.store, key, out.Results, uc.cache.clock.Now(), uc.cache.ttl); err != nil {
		uc.log.Warn().Err(err).Msg("cache write failed")
	}
	return out, nil
}

// MatchAirports returns up to limit suggestions for airports whose IATA, ICAO, city,
// name or country contains query, case-insensitively, in dataset order.
func MatchAirports(airports []domain.Airport, query string, limit int) []domain.PlaceSuggestion {
	needle := strings.ToLower(query)
	results := make([]domain.PlaceSuggestion, 0, limit)

	for i := range airports {
		a := &airports[i]
		if !airportMatches(a, needle) {
			continue
		}
		if s, ok := suggestionFor(a); ok {
			results = append(results, s)
		}
		if len(results) >= limit {
			break
		}
	}
	return results
}

func airportMatches(a *domain.Airport, needle string) bool {
	for _, field := range []string{a.IATA, a.ICAO, a.City, a.Name, a.Country} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// suggestionFor builds "City - Airport - Country (CODE)". Records with no code, city or
// name are skipped.
func suggestionFor(a *domain.Airport) (domain.PlaceSuggestion, bool) {
	code := a.Code()
	if code == "" && a.City == "" && a.Name == "" {
		return domain.PlaceSuggestion{}, false
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{a.City, a.Name, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	label := strings.Join(parts, labelSeparator)
	if code != "" {
		if label == "" {
			label = code
		} else {
			label += " (" + code + ")"
		}
	}

	return domain.PlaceSuggestion{
		Code:        code,
		Label:       label,
		City:        a.City,
		Country:     a.Country,
		AirportName: a.Name,
	}, true
}

// Ensure placesUseCase implements PlacesUseCase at compile time.
var _ PlacesUseCase = (*placesUseCase)(nil)
