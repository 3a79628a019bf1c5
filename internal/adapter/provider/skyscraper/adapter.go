// Package skyscraper implements domain.FlightProvider on top of the Sky-Scraper
// (flights-sky) RapidAPI endpoints: Google-style offer lists, Google price graphs and
// the "search everywhere" quote listing.
package skyscraper

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/ratelimit"
)

// ProviderName is the canonical name of this provider.
const ProviderName = "skyscraper"

// Aliases are alternative configuration names resolving to this provider.
var Aliases = []string{"sky-scrapper", "flights-sky"}

// Upstream paths.
const (
	pathSearchOneWay        = "/google/flights/search-one-way"
	pathSearchRoundTrip     = "/google/flights/search-roundtrip"
	pathPriceGraphOneWay    = "/google/price-graph/for-one-way"
	pathPriceGraphRoundTrip = "/google/price-graph/for-roundtrip"
	pathSearchEverywhere    = "/flights/search-everywhere"
)

// Defaults.
const (
	DefaultAPIHost        = "flights-sky.p.rapidapi.com"
	DefaultBaseURL        = "https://flights-sky.p.rapidapi.com"
	DefaultTimeout        = 25 * time.Second
	DefaultCurrency       = "USD"
	defaultSearchLanguage = "en-US"
	defaultSearchLocation = "US"
)

// Config holds the upstream connection settings.
type Config struct {
	APIKey          string
	APIHost         string
	BaseURL         string
	Timeout         time.Duration
	DefaultCurrency string
}

// Adapter is the Sky-Scraper flight provider.
type Adapter struct {
	cfg    Config
	client *client
	log    zerolog.Logger
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithHTTPClient replaces the HTTP client (its Timeout is left untouched).
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Adapter) {
		if hc != nil {
			a.client.http = hc
		}
	}
}

// WithLimiter throttles upstream calls per endpoint.
func WithLimiter(l *ratelimit.EndpointLimiter) Option {
	return func(a *Adapter) { a.client.limiter = l }
}

// WithMetrics records upstream call metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) { a.client.metrics = m }
}

// WithLogger sets the adapter logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) {
		a.log = l.With().Str("provider", ProviderName).Logger()
		a.client.log = a.log
	}
}

// NewAdapter creates an Adapter. Empty config fields take their defaults; a missing
// API key is only reported by Ready so the service can still start.
func NewAdapter(cfg Config, opts ...Option) *Adapter {
	if cfg.APIHost == "" {
		cfg.APIHost = DefaultAPIHost
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = DefaultCurrency
	}

	a := &Adapter{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	a.client = &client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		host:    cfg.APIHost,
		apiKey:  cfg.APIKey,
		log:     a.log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Ready implements domain.FlightProvider.
func (a *Adapter) Ready() error {
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		return domain.NewConfigurationError(ProviderName, "Sky-Scraper API key is not configured")
	}
	return nil
}

// SearchOffers implements domain.FlightProvider. It calls the one-way or round-trip
// list endpoint and normalizes every flight record.
func (a *Adapter) SearchOffers(ctx context.Context, query *domain.SearchQuery) ([]domain.Offer, error) {
	if err := a.Ready(); err != nil {
		return nil, err
	}

	currency := query.ResolveCurrency(a.cfg.DefaultCurrency)
	params := url.Values{}
	params.Set("departureId", domain.GoogleAirport(query.Origin))
	params.Set("arrivalId", domain.GoogleAirport(query.Destination))
	params.Set("departureDate", query.DepartDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("currency", currency)
	params.Set("language", defaultSearchLanguage)
	params.Set("location", defaultSearchLocation)

	path := pathSearchOneWay
	if query.IsRoundTrip() {
		path = pathSearchRoundTrip
		params.Set("arrivalDate", query.ReturnDate)
	}

	payload, err := a.client.getJSON(ctx, EndpointList, path, params)
	if err != nil {
		return nil, err
	}

	root := pickRoot(payload)
	if status, ok := root["status"].(bool); ok && !status {
		a.log.Warn().
			Interface("api_message", root["message"]).
			Interface("api_errors", root["errors"]).
			Msg("list endpoint answered status=false")
		return nil, domain.NewUpstreamStatusError(ProviderName, http.StatusBadGateway, map[string]any{
			"message": root["message"],
			"errors":  root["errors"],
		})
	}

	batch := newNormalizer(query, currency).normalizeAll(LocateFlightList(root["data"]))
	a.log.Debug().
		Int("offers", len(batch.Offers)).
		Int("excluded", batch.Excluded).
		Strs("airlines", batch.Airlines).
		Interface("stops_counts", batch.StopsCounts).
		Msg("normalized offer list")
	return batch.Offers, nil
}

// PriceGraph implements domain.FlightProvider using the airport-based price graph.
func (a *Adapter) PriceGraph(ctx context.Context, query *domain.SearchQuery) ([]domain.PricePoint, error) {
	if err := a.Ready(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("departureId", domain.GoogleAirport(query.Origin))
	params.Set("arrivalId", domain.GoogleAirport(query.Destination))
	params.Set("departureDate", query.DepartDate)
	if c := strings.TrimSpace(query.Currency); c != "" {
		params.Set("currency", strings.ToUpper(c))
	}

	path := pathPriceGraphOneWay
	if query.IsRoundTrip() {
		path = pathPriceGraphRoundTrip
		params.Set("arrivalDate", query.ReturnDate)
	}

	payload, err := a.client.getJSON(ctx, EndpointPriceGraph, path, params)
	if err != nil {
		return nil, err
	}
	return parsePriceGraph(payload), nil
}

// QuoteHistory implements domain.FlightProvider using the entity-based quote listing.
func (a *Adapter) QuoteHistory(ctx context.Context, query *domain.SearchQuery) ([]domain.PricePoint, error) {
	if err := a.Ready(); err != nil {
		return nil, err
	}

	from, okFrom := EverywhereEntity(query.Origin)
	to, okTo := EverywhereEntity(query.Destination)
	if !okFrom || !okTo {
		return nil, domain.NewMissingEntityIDError(query.Origin, query.Destination)
	}

	params := url.Values{}
	params.Set("fromEntityId", from)
	params.Set("toEntityId", to)
	params.Set("type", "oneway")
	if query.IsRoundTrip() {
		params.Set("type", "roundtrip")
	}
	if c := strings.TrimSpace(query.Currency); c != "" {
		params.Set("currency", strings.ToUpper(c))
	}

	payload, err := a.client.getJSON(ctx, EndpointQuotes, pathSearchEverywhere, params)
	if err != nil {
		return nil, err
	}
	return parseQuoteHistory(payload), nil
}

// Ensure interface is implemented.
var _ domain.FlightProvider = (*Adapter)(nil)
