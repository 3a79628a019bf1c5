package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

// Cache key prefixes and metric tiers.
const (
	responseKeyPrefix = "flights:skyscraper:response"
	curveKeyPrefix    = "flights:skyscraper:curve"

	tierResponse = "response"
	tierCurve    = "curve"
)

// Default cache TTLs.
const (
	DefaultResponseTTL = 5 * time.Minute
	DefaultCurveTTL    = 15 * time.Minute
)

// responseKey lists every query field that changes a search response.
type responseKey struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	DepartDate      string   `json:"departDate"`
	ReturnDate      string   `json:"returnDate"`
	Adults          int      `json:"adults"`
	Cabin           string   `json:"cabin"`
	Currency        string   `json:"currency"`
	Sort            string   `json:"sort"`
	Limit           *int     `json:"limit"`
	MaxStops        *int     `json:"maxStops"`
	AllowedAirlines []string `json:"allowedAirlines"`
}

// curveKey identifies a price curve: the airport pair the graph is fetched for,
// dates and currency.
type curveKey struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate"`
	Currency    string `json:"currency"`
}

// cacheTier is one TTL-bounded, fingerprint-keyed view over the shared store.
type cacheTier struct {
	name    string
	store   cache.Store
	ttl     time.Duration
	clock   timeutil.Clock
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func (c *cacheTier) ttlSeconds() *int {
	return intPtr(int(c.ttl / time.Second))
}

// responseCache stores complete search results.
type responseCache struct {
	cacheTier
}

func responseCacheKey(q *domain.SearchQuery) (string, error) {
	return cache.Fingerprint(responseKeyPrefix, responseKey{
		Origin:          q.Origin,
		Destination:     q.Destination,
		DepartDate:      q.DepartDate,
		ReturnDate:      q.ReturnDate,
		Adults:          q.Adults,
		Cabin:           q.Cabin,
		Currency:        strings.ToUpper(strings.TrimSpace(q.Currency)),
		Sort:            string(q.Sort),
		Limit:           q.Limit,
		MaxStops:        q.MaxStops,
		AllowedAirlines: q.AllowedAirlines,
	})
}

// Get returns the cached result for q with the cache metadata filled in.
// Store failures are logged and reported as misses.
func (c *responseCache) Get(ctx context.Context, q *domain.SearchQuery) (*domain.SearchResult, bool) {
	key, err := responseCacheKey(q)
	if err != nil {
		return nil, false
	}

	entry, ok, err := cache.GetEntry[domain.SearchResult](ctx, c.store, key)
	if err != nil {
		c.log.Warn().Err(err).Str("tier", c.name).Msg("cache read failed")
	}
	c.metrics.CacheLookup(c.name, ok)
	if !ok {
		c.log.Debug().Str("tier", c.name).Msg("cache miss")
		return nil, false
	}

	age := timeutil.AgeSeconds(c.clock, entry.CachedAt)
	result := entry.Payload
	result.Meta.Cached = true
	result.Meta.CacheAgeSeconds = intPtr(age)
	// The stored curve age was taken at write time.
	if graphAge := result.Meta.PriceHistoryCacheAgeSeconds; graphAge != nil {
		result.Meta.PriceHistoryCacheAgeSeconds = intPtr(*graphAge + age)
	}
	result.Meta.CacheTTLSeconds = c.ttlSeconds()
	result.Meta.PriceHistoryPoints = len(result.Meta.PriceHistory)
	if result.Meta.PriceHistorySource == "" {
		result.Meta.PriceHistorySource = domain.PriceHistoryNone
	}

	c.log.Debug().Str("tier", c.name).Int("age_seconds", *result.Meta.CacheAgeSeconds).Msg("cache hit")
	return &result, true
}

// Set stores result for q, replacing any previous entry.
func (c *responseCache) Set(ctx context.Context, q *domain.SearchQuery, result *domain.SearchResult) {
	key, err := responseCacheKey(q)
	if err != nil {
		return
	}
	if err := cache.SetEntry(ctx, c.store, key, *result, c.clock.Now(), c.ttl); err != nil {
		c.log.Warn().Err(err).Str("tier", c.name).Msg("cache write failed")
	}
}

// curveCache stores fetched price graphs.
type curveCache struct {
	cacheTier
}

// cachedCurve is a price series read back from the curve cache.
type cachedCurve struct {
	Points     []domain.PricePoint
	AgeSeconds int
}

func curveCacheKey(q *domain.SearchQuery) (string, error) {
	return cache.Fingerprint(curveKeyPrefix, curveKey{
		Origin:      domain.GoogleAirport(q.Origin),
		Destination: domain.GoogleAirport(q.Destination),
		DepartDate:  q.DepartDate,
		ReturnDate:  q.ReturnDate,
		Currency:    strings.ToUpper(strings.TrimSpace(q.Currency)),
	})
}

// Get returns a non-empty cached curve for the query route.
func (c *curveCache) Get(ctx context.Context, q *domain.SearchQuery) (cachedCurve, bool) {
	key, err := curveCacheKey(q)
	if err != nil {
		return cachedCurve{}, false
	}

	entry, ok, err := cache.GetEntry[[]domain.PricePoint](ctx, c.store, key)
	if err != nil {
		c.log.Warn().Err(err).Str("tier", c.name).Msg("cache read failed")
	}
	ok = ok && len(entry.Payload) > 0
	c.metrics.CacheLookup(c.name, ok)
	if !ok {
		return cachedCurve{}, false
	}
	return cachedCurve{
		Points:     entry.Payload,
		AgeSeconds: timeutil.AgeSeconds(c.clock, entry.CachedAt),
	}, true
}

// Set stores a fetched curve.
func (c *curveCache) Set(ctx context.Context, q *domain.SearchQuery, points []domain.PricePoint) {
	key, err := curveCacheKey(q)
	if err != nil {
		return
	}
	if err := cache.SetEntry(ctx, c.store, key, points, c.clock.Now(), c.ttl); err != nil {
		c.log.Warn().Err(err).Str("tier", c.name).Msg("cache write failed")
	}
}
