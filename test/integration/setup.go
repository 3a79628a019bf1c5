// Package integration provides helpers and integration tests for the flight search system.
// Integration tests run the wired service (HTTP handlers, use cases, caches and the
// Sky-Scraper adapter) against a fake upstream.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	flighthttp "github.com/flight-search/skyscraper-flight-search/internal/adapter/http"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/skyscraper-flight-search/internal/adapter/http/response"
	"github.com/flight-search/skyscraper-flight-search/internal/bootstrap"
	"github.com/flight-search/skyscraper-flight-search/internal/config"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
	"github.com/flight-search/skyscraper-flight-search/test/mock"
)

// TestAPIKey is the upstream key configured for the test service.
const TestAPIKey = "test-key"

// StartTime is the initial time of the test clock.
var StartTime = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

// TestServer is the fully wired service in front of a fake upstream.
type TestServer struct {
	Echo     *echo.Echo
	App      *bootstrap.App
	Upstream *mock.Upstream
	Clock    *timeutil.MockClock
	Registry *prometheus.Registry
}

// ServerOption adjusts the configuration before the service is wired.
type ServerOption func(*config.Config)

// WithAPIKey overrides the upstream key. An empty key leaves the provider unconfigured.
func WithAPIKey(key string) ServerOption {
	return func(cfg *config.Config) { cfg.Provider.APIKey = key }
}

// WithProvider overrides the configured provider name.
func WithProvider(name string) ServerOption {
	return func(cfg *config.Config) { cfg.Provider.Name = name }
}

// WithResponseTTL overrides the response cache TTL.
func WithResponseTTL(ttl time.Duration) ServerOption {
	return func(cfg *config.Config) { cfg.Cache.ResponseTTL = ttl }
}

// TestConfig returns a service configuration pointing at upstream.
func TestConfig(upstream *mock.Upstream) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		App:     config.AppConfig{Env: "test"},
		Provider: config.ProviderConfig{
			Name:            "skyscraper",
			APIKey:          TestAPIKey,
			APIHost:         "flights-sky.p.rapidapi.com",
			BaseURL:         upstream.URL(),
			Timeout:         5 * time.Second,
			DefaultCurrency: "USD",
		},
		Cache: config.CacheConfig{
			Backend:     config.CacheBackendMemory,
			ResponseTTL: 5 * time.Minute,
			CurveTTL:    15 * time.Minute,
		},
		Places: config.PlacesConfig{
			DataURL:    upstream.URL() + mock.PathAirports,
			DatasetTTL: 24 * time.Hour,
			QueryTTL:   time.Hour,
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

// NewTestServer wires the service against a fresh fake upstream.
func NewTestServer(t testing.TB, opts ...ServerOption) *TestServer {
	t.Helper()

	upstream := mock.NewUpstream(t)
	cfg := TestConfig(upstream)
	for _, opt := range opts {
		opt(cfg)
	}

	clock := timeutil.NewMockClock(StartTime)
	reg := prometheus.NewRegistry()
	log := zerolog.Nop()

	app, err := bootstrap.New(context.Background(), cfg, log,
		bootstrap.WithStore(cache.NewMemoryStore(clock)),
		bootstrap.WithClock(clock),
		bootstrap.WithRegisterer(reg),
		bootstrap.WithHTTPClient(upstream.Client()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log, app.Metrics)

	handler := flighthttp.NewFlightHandler(app.Search, app.Places, log)
	flighthttp.RegisterRoutes(e, handler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return &TestServer{
		Echo:     e,
		App:      app,
		Upstream: upstream,
		Clock:    clock,
		Registry: reg,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        any
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string body is sent as-is; anything else is encoded as JSON.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts body to the search endpoint.
func (ts *TestServer) SearchRequest(body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// PlacesRequest queries the autocomplete endpoint. A zero limit is omitted.
func (ts *TestServer) PlacesRequest(query string, limit int) Response {
	params := url.Values{}
	params.Set("q", query)
	if limit != 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/places/autocomplete?" + params.Encode(),
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// MetricsRequest scrapes the prometheus endpoint.
func (ts *TestServer) MetricsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/metrics",
	})
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body as an error response.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	DepartDate      string   `json:"departDate"`
	ReturnDate      string   `json:"returnDate,omitempty"`
	Adults          int      `json:"adults"`
	Cabin           string   `json:"cabin"`
	Currency        string   `json:"currency,omitempty"`
	Sort            string   `json:"sort,omitempty"`
	Limit           *int     `json:"limit,omitempty"`
	MaxStops        *int     `json:"maxStops,omitempty"`
	AllowedAirlines []string `json:"allowedAirlines,omitempty"`
	BypassCache     bool     `json:"bypassCache,omitempty"`
}

// DefaultSearchRequest returns a valid one-way JFK to LHR request.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "JFK",
		Destination: "LHR",
		DepartDate:  "2025-06-01",
		Adults:      1,
		Cabin:       domain.CabinEconomy,
	}
}

// DefaultSearchQuery is DefaultSearchRequest as a domain query.
func DefaultSearchQuery() *domain.SearchQuery {
	return &domain.SearchQuery{
		Origin:      "JFK",
		Destination: "LHR",
		DepartDate:  "2025-06-01",
		Adults:      1,
		Cabin:       domain.CabinEconomy,
	}
}
