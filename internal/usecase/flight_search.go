package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

// DefaultCurrency is used when neither the query nor the configuration names one.
const DefaultCurrency = "USD"

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search answers q from the response cache or from the provider, returning the
	// processed offers with their meta block and price history.
	Search(ctx context.Context, q *domain.SearchQuery) (*domain.SearchResult, error)
}

// flightSearchUseCase runs the search pipeline:
// cache lookup, list fetch, normalize, filter/sort/limit, price history, meta, cache store.
type flightSearchUseCase struct {
	provider        domain.FlightProvider
	responses       *responseCache
	history         *PriceHistoryReconciler
	defaultCurrency string
	clock           timeutil.Clock
	metrics         *metrics.Metrics
	log             zerolog.Logger
}

// Config contains configuration options for the use case.
type Config struct {
	ResponseTTL     time.Duration
	CurveTTL        time.Duration
	DefaultCurrency string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ResponseTTL:     DefaultResponseTTL,
		CurveTTL:        DefaultCurveTTL,
		DefaultCurrency: DefaultCurrency,
	}
}

// Option customizes the use case.
type Option func(*flightSearchUseCase)

// WithClock sets the clock used for cache ages.
func WithClock(clock timeutil.Clock) Option {
	return func(uc *flightSearchUseCase) {
		if clock != nil {
			uc.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *flightSearchUseCase) {
		uc.log = log
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *flightSearchUseCase) {
		uc.metrics = m
	}
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by provider and store.
// If config is nil or has zero fields, default values are used. A nil store disables caching.
func NewFlightSearchUseCase(provider domain.FlightProvider, store cache.Store, config *Config, opts ...Option) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.ResponseTTL > 0 {
			cfg.ResponseTTL = config.ResponseTTL
		}
		if config.CurveTTL > 0 {
			cfg.CurveTTL = config.CurveTTL
		}
		if config.DefaultCurrency != "" {
			cfg.DefaultCurrency = config.DefaultCurrency
		}
	}
	if store == nil {
		store = cache.NewNoOpStore()
	}

	uc := &flightSearchUseCase{
		provider:        provider,
		defaultCurrency: cfg.DefaultCurrency,
		clock:           timeutil.NewRealClock(),
		log:             zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.log = uc.log.With().Str("component", "flight_search").Logger()

	uc.responses = &responseCache{cacheTier{
		name: tierResponse, store: store, ttl: cfg.ResponseTTL,
		clock: uc.clock, metrics: uc.metrics, log: uc.log,
	}}
	uc.history = &PriceHistoryReconciler{
		provider: provider,
		curves: &curveCache{cacheTier{
			name: tierCurve, store: store, ttl: cfg.CurveTTL,
			clock: uc.clock, metrics: uc.metrics, log: uc.log,
		}},
		metrics: uc.metrics,
		log:     uc.log,
	}
	return uc
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, q *domain.SearchQuery) (*domain.SearchResult, error) {
	start := time.Now()

	result, err := uc.search(ctx, q)
	if err != nil {
		uc.metrics.SearchFailed(strconv.Itoa(domain.StatusCode(err)))
		return nil, err
	}
	uc.metrics.ObserveSearch(time.Since(start))
	return result, nil
}

func (uc *flightSearchUseCase) search(ctx context.Context, q *domain.SearchQuery) (*domain.SearchResult, error) {
	if q == nil {
		return nil, domain.NewValidationError("query", "search query is required")
	}
	if err := uc.provider.Ready(); err != nil {
		return nil, err
	}

	if !q.BypassCache {
		if cached, ok := uc.responses.Get(ctx, q); ok {
			return cached, nil
		}
	}

	// The list fetch and the price graph run concurrently; the graph result is held
	// and merged in precedence order only after the offers are processed.
	var (
		offers []domain.Offer
		graph  PriceHistory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		offers, err = uc.fetchOffers(gctx, q)
		return err
	})
	g.Go(func() error {
		graph = uc.history.GraphStage(gctx, q)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	processed := ProcessOffers(offers, q)
	history := uc.history.Reconcile(ctx, q, graph, processed.PreLimit)

	meta := BuildOfferMeta(processed.Final)
	history.applyTo(&meta)

	result := domain.NewSearchResult(q.Echo(q.ResolveCurrency(uc.defaultCurrency)), processed.Final, meta)
	uc.responses.Set(ctx, q, &result)

	uc.log.Debug().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Int("offers", len(result.Offers)).
		Msg("search completed")
	return &result, nil
}

// fetchOffers calls the provider list endpoint, turning a provider panic into a provider error.
func (uc *flightSearchUseCase) fetchOffers(ctx context.Context, q *domain.SearchQuery) (offers []domain.Offer, err error) {
	defer func() {
		if r := recover(); r != nil {
			offers = nil
			err = domain.NewProviderError(uc.provider.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()
	return uc.provider.SearchOffers(ctx, q)
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
