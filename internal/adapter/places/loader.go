// Package places loads the public airport dataset used by the autocomplete endpoint.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

// Defaults for the dataset download.
const (
	DefaultDataURL    = "https://raw.githubusercontent.com/mwgg/Airports/master/airports.json"
	DefaultTimeout    = 15 * time.Second
	DefaultDatasetTTL = 24 * time.Hour

	datasetKey   = "places:airports:dataset"
	tierDataset  = "places_dataset"
	maxDataBytes = 64 << 20
	flightKey    = "dataset"
)

// ErrDataset is returned when the airport dataset cannot be fetched or decoded.
var ErrDataset = errors.New("airport dataset unavailable")

// Config holds the loader settings.
type Config struct {
	URL        string
	Timeout    time.Duration
	DatasetTTL time.Duration
}

// Loader fetches the airport dataset over HTTP and keeps it in the shared cache store.
// Concurrent misses share one download.
type Loader struct {
	url     string
	http    *http.Client
	store   cache.Store
	ttl     time.Duration
	policy  retry.Policy
	clock   timeutil.Clock
	metrics *metrics.Metrics
	log     zerolog.Logger
	group   singleflight.Group
}

// Option customizes a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.http = c }
}

// WithRetryPolicy replaces the download retry policy.
func WithRetryPolicy(p retry.Policy) Option {
	return func(l *Loader) { l.policy = p }
}

// WithClock sets the clock used to stamp cache entries.
func WithClock(c timeutil.Clock) Option {
	return func(l *Loader) { l.clock = c }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader creates a Loader. Zero config fields take their defaults.
func NewLoader(cfg Config, store cache.Store, opts ...Option) *Loader {
	if cfg.URL == "" {
		cfg.URL = DefaultDataURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DatasetTTL <= 0 {
		cfg.DatasetTTL = DefaultDatasetTTL
	}
	if store == nil {
		store = cache.NewNoOpStore()
	}

	l := &Loader{
		url:    cfg.URL,
		http:   &http.Client{Timeout: cfg.Timeout},
		store:  store,
		ttl:    cfg.DatasetTTL,
		policy: retry.DatasetPolicy,
		clock:  timeutil.NewRealClock(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With().Str("component", "places_loader").Logger()
	return l
}

// Airports implements domain.AirportSource.
func (l *Loader) Airports(ctx context.Context) ([]domain.Airport, error) {
	entry, ok, err := cache.GetEntry[[]domain.Airport](ctx, l.store, datasetKey)
	if err != nil {
		l.log.Warn().Err(err).Msg("cache read failed")
	}
	l.metrics.CacheLookup(tierDataset, ok)
	if ok {
		return entry.Payload, nil
	}

	v, err, shared := l.group.Do(flightKey, func() (any, error) {
		// Detached from the first caller so its cancellation does not fail the others.
		fetchCtx := context.WithoutCancel(ctx)
		airports, err := retry.Do(fetchCtx, l.policy, l.fetch)
		if err != nil {
			return nil, err
		}
		if err := cache.SetEntry(fetchCtx, l.store, datasetKey, airports, l.clock.Now(), l.ttl); err != nil {
			l.log.Warn().Err(err).Msg("cache write failed")
		}
		l.log.Info().Int("airports", len(airports)).Msg("airport dataset loaded")
		return airports, nil
	})
	if err != nil {
		l.log.Error().Err(err).Str("url", l.url).Msg("airport dataset load failed")
		return nil, err
	}
	if shared {
		l.log.Debug().Msg("airport dataset download shared")
	}
	return v.([]domain.Airport), nil
}

// fetch downloads and decodes the dataset once. Client errors and undecodable payloads
// are not retried.
func (l *Loader) fetch(ctx context.Context) ([]domain.Airport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("%w: %w", ErrDataset, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("%w: status %d", ErrDataset, resp.StatusCode)
		if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.NewPermanent(err)
		}
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDataBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataset, err)
	}

	airports, err := ParseDataset(body)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	return airports, nil
}

// ParseDataset decodes a dataset that is either an object keyed by airport id or a list.
// Entries that are not objects are skipped. Object datasets are returned in key order.
func ParseDataset(data []byte) ([]domain.Airport, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrDataset, err)
	}

	var records []map[string]any
	switch v := payload.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if rec, ok := v[k].(map[string]any); ok {
				records = append(records, rec)
			}
		}
	case []any:
		for _, item := range v {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unexpected payload %T", ErrDataset, payload)
	}

	airports := make([]domain.Airport, 0, len(records))
	for _, rec := range records {
		airports = append(airports, domain.Airport{
			IATA:    firstString(rec, "iata", "iataCode"),
			ICAO:    firstString(rec, "icao", "icaoCode"),
			Name:    firstString(rec, "name", "airportName"),
			City:    firstString(rec, "city"),
			Country: firstString(rec, "country"),
		})
	}
	return airports, nil
}

func firstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// Ensure Loader implements domain.AirportSource at compile time.
var _ domain.AirportSource = (*Loader)(nil)
