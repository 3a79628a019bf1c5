package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderError(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		underlyingErr error
		wantContains  []string
	}{
		{
			name:          "error message includes provider and underlying error",
			provider:      "skyscraper",
			underlyingErr: errors.New("connection failed"),
			wantContains:  []string{"skyscraper", "connection failed"},
		},
		{
			name:          "error message with different provider",
			provider:      "amadeus",
			underlyingErr: errors.New("timeout"),
			wantContains:  []string{"amadeus", "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError(tt.provider, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.False(t, err.Retryable)
			assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		})
	}
}

func TestNewRetryableProviderError(t *testing.T) {
	underlying := errors.New("temporary network failure")
	err := NewRetryableProviderError("skyscraper", underlying)

	assert.Contains(t, err.Error(), "skyscraper")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, err.Retryable)
}

func TestUpstreamErrors(t *testing.T) {
	t.Run("transport error is 502 with the transport message", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := NewUpstreamTransportError("skyscraper", cause)

		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		assert.Equal(t, "dial tcp: connection refused", err.Details["error"])
		assert.True(t, errors.Is(err, ErrUpstreamTransport))
		assert.True(t, errors.Is(err, cause))
		assert.True(t, err.Retryable)
	})

	t.Run("status error passes the upstream status through", func(t *testing.T) {
		details := map[string]any{"message": "You are not subscribed to this API."}
		err := NewUpstreamStatusError("skyscraper", http.StatusForbidden, details)

		assert.Equal(t, http.StatusForbidden, err.StatusCode)
		assert.Equal(t, details, err.Details)
		assert.True(t, errors.Is(err, ErrUpstreamStatus))
		assert.False(t, err.Retryable)
	})

	t.Run("rate limited status is retryable", func(t *testing.T) {
		err := NewUpstreamStatusError("skyscraper", http.StatusTooManyRequests, nil)
		assert.True(t, err.Retryable)
	})

	t.Run("malformed body is 502", func(t *testing.T) {
		err := NewUpstreamMalformedError("skyscraper", errors.New("invalid character '<'"))

		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		assert.True(t, errors.Is(err, ErrUpstreamMalformed))
	})
}

func TestConfigurationErrors(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		err := NewConfigurationError("skyscraper", "API key is not configured")

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.True(t, IsConfiguration(err))
		assert.Contains(t, err.Error(), "API key is not configured")
	})

	t.Run("unknown provider", func(t *testing.T) {
		err := NewUnknownProviderError("kayak")

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.True(t, IsConfiguration(err))
		assert.True(t, errors.Is(err, ErrUnknownProvider))
	})

	t.Run("not implemented provider", func(t *testing.T) {
		err := NewProviderNotImplementedError("amadeus")

		assert.Equal(t, http.StatusNotImplemented, err.StatusCode)
		assert.True(t, errors.Is(err, ErrProviderNotImplemented))
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		message   string
		wantError string
	}{
		{
			name:      "origin field validation",
			field:     "origin",
			message:   "must be 3 to 8 characters",
			wantError: "origin: must be 3 to 8 characters",
		},
		{
			name:      "adults field validation",
			field:     "adults",
			message:   "must be between 1 and 6",
			wantError: "adults: must be between 1 and 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.wantError, err.Error())
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestNewMissingEntityIDError(t *testing.T) {
	err := NewMissingEntityIDError("", "LHR")

	assert.True(t, errors.Is(err, ErrMissingEntityID))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "entityId", ve.Field)
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"origin"},
			wantContains: "field origin is required",
		},
		{
			name:         "multiple arguments",
			format:       "%s must be between %d and %d",
			args:         []interface{}{"adults", 1, 6},
			wantContains: "adults must be between 1 and 6",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid request", err: WrapInvalidRequest("bad"), want: http.StatusBadRequest},
		{name: "validation error", err: NewValidationError("cabin", "unknown"), want: http.StatusBadRequest},
		{name: "provider status passes through", err: NewUpstreamStatusError("skyscraper", 429, nil), want: 429},
		{name: "wrapped provider error", err: fmt.Errorf("search: %w", NewConfigurationError("skyscraper", "x")), want: http.StatusInternalServerError},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
