// Package bootstrap assembles the service from its configuration: the cache store,
// the selected flights provider, the airport dataset loader and the use cases.
// Both the HTTP server and the CLI are built on it.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/adapter/places"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/provider"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/provider/skyscraper"
	"github.com/flight-search/skyscraper-flight-search/internal/config"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/ratelimit"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/skyscraper-flight-search/internal/usecase"
)

// MetricsNamespace prefixes every exported prometheus series.
const MetricsNamespace = "flight_search"

// App holds the wired service components.
type App struct {
	Config   *config.Config
	Store    cache.Store
	Metrics  *metrics.Metrics
	Provider domain.FlightProvider
	Search   usecase.FlightSearchUseCase
	Places   usecase.PlacesUseCase
}

type options struct {
	registerer prometheus.Registerer
	httpClient *http.Client
	store      cache.Store
	clock      timeutil.Clock
}

// Option customizes New.
type Option func(*options)

// WithRegisterer registers the service metrics with reg. Without it metrics are disabled.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithHTTPClient sets the client used for the upstream API and the airport dataset.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithStore replaces the configured cache backend.
func WithStore(s cache.Store) Option {
	return func(o *options) { o.store = s }
}

// WithClock sets the clock used for cache ages.
func WithClock(c timeutil.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New wires the service. An unknown provider name or an unreachable redis fails here.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	o := &options{clock: timeutil.NewRealClock()}
	for _, opt := range opts {
		opt(o)
	}

	app := &App{Config: cfg}
	if o.registerer != nil {
		app.Metrics = metrics.New(o.registerer, MetricsNamespace)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = NewStore(ctx, cfg, o.clock)
		if err != nil {
			return nil, err
		}
	}
	app.Store = store

	p, err := newProvider(cfg, log, app.Metrics, o.httpClient)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	app.Provider = p

	app.Search = usecase.NewFlightSearchUseCase(p, store,
		&usecase.Config{
			ResponseTTL:     cfg.Cache.ResponseTTL,
			CurveTTL:        cfg.Cache.CurveTTL,
			DefaultCurrency: cfg.Provider.DefaultCurrency,
		},
		usecase.WithClock(o.clock),
		usecase.WithLogger(log),
		usecase.WithMetrics(app.Metrics),
	)

	loaderOpts := []places.Option{
		places.WithClock(o.clock),
		places.WithMetrics(app.Metrics),
		places.WithLogger(log),
	}
	if o.httpClient != nil {
		loaderOpts = append(loaderOpts, places.WithHTTPClient(o.httpClient))
	}
	loader := places.NewLoader(places.Config{
		URL:        cfg.Places.DataURL,
		DatasetTTL: cfg.Places.DatasetTTL,
	}, store, loaderOpts...)

	app.Places = usecase.NewPlacesUseCase(loader, store, usecase.PlacesConfig{
		QueryTTL: cfg.Places.QueryTTL,
		Clock:    o.clock,
		Metrics:  app.Metrics,
		Logger:   log,
	})

	log.Info().
		Str("provider", p.Name()).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("metrics", app.Metrics != nil).
		Msg("service wired")

	return app, nil
}

// NewStore opens the cache backend selected by CACHE_BACKEND.
func NewStore(ctx context.Context, cfg *config.Config, clock timeutil.Clock) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return store, nil
	case config.CacheBackendNone:
		return cache.NewNoOpStore(), nil
	default:
		return cache.NewMemoryStore(clock), nil
	}
}

func newProvider(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics, hc *http.Client) (domain.FlightProvider, error) {
	skyOpts := []skyscraper.Option{
		skyscraper.WithLimiter(ratelimit.NewEndpointLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.Burst,
		})),
		skyscraper.WithMetrics(m),
		skyscraper.WithLogger(log),
	}
	if hc != nil {
		skyOpts = append(skyOpts, skyscraper.WithHTTPClient(hc))
	}

	sky := skyscraper.NewAdapter(skyscraper.Config{
		APIKey:          cfg.Provider.APIKey,
		APIHost:         cfg.Provider.APIHost,
		BaseURL:         cfg.Provider.BaseURL,
		Timeout:         cfg.Provider.Timeout,
		DefaultCurrency: cfg.Provider.DefaultCurrency,
	}, skyOpts...)

	p, err := provider.Select(provider.NewRegistry(sky), cfg.Provider.Name)
	if err != nil {
		return nil, fmt.Errorf("select flights provider %q: %w", cfg.Provider.Name, err)
	}
	if err := p.Ready(); err != nil {
		log.Warn().Err(err).Str("provider", p.Name()).Msg("provider is not ready; searches will fail")
	}
	return p, nil
}

// Close releases the cache store.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
