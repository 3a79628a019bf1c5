package skyscraper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/ratelimit"
)

// Upstream endpoint names used for rate limiting, metrics and logs.
const (
	EndpointList       = "list"
	EndpointPriceGraph = "price_graph"
	EndpointQuotes     = "quotes"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 16 << 20

// client performs authenticated GET requests against the upstream and maps every
// failure to a domain.ProviderError.
type client struct {
	http    *http.Client
	baseURL string
	host    string
	apiKey  string
	limiter *ratelimit.EndpointLimiter
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// getJSON fetches path with params and decodes the JSON body.
func (c *client) getJSON(ctx context.Context, endpoint, path string, params url.Values) (any, error) {
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}

	reqURL := strings.TrimRight(c.baseURL, "/") + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, "transport_error", time.Since(start))
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("upstream request failed")
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, "transport_error", time.Since(start))
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.ObserveUpstream(endpoint, "status_error", time.Since(start))
		details := errorDetails(body)
		c.log.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Interface("details", details).
			Msg("upstream error response")
		return nil, domain.NewUpstreamStatusError(ProviderName, resp.StatusCode, details)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.metrics.ObserveUpstream(endpoint, "malformed", time.Since(start))
		return nil, domain.NewUpstreamMalformedError(ProviderName, err)
	}

	c.metrics.ObserveUpstream(endpoint, "ok", time.Since(start))
	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status_code", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("upstream request completed")
	return payload, nil
}

// errorDetails returns the upstream error body as details: the JSON object itself,
// or {"error": <body>} for anything else.
func errorDetails(body []byte) map[string]any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if obj, ok := decoded.(map[string]any); ok {
			return obj
		}
		return map[string]any{"error": decoded}
	}
	return map[string]any{"error": string(bytes.TrimSpace(body))}
}
