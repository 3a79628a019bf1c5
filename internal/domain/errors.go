package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the flight search system.
var (
	// ErrInvalidRequest indicates the search request failed validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfiguration indicates the service is missing required configuration
	ErrConfiguration = errors.New("configuration error")

	// ErrUnknownProvider indicates the configured provider name is not registered
	ErrUnknownProvider = errors.New("unknown flights provider")

	// ErrProviderNotImplemented indicates a known provider that has no implementation
	ErrProviderNotImplemented = errors.New("flights provider not implemented")

	// ErrUpstreamTransport indicates the upstream could not be reached
	ErrUpstreamTransport = errors.New("upstream request failed")

	// ErrUpstreamStatus indicates the upstream answered with an error status
	ErrUpstreamStatus = errors.New("upstream returned an error")

	// ErrUpstreamMalformed indicates the upstream answered with an unreadable body
	ErrUpstreamMalformed = errors.New("upstream response was not valid JSON")

	// ErrMissingEntityID indicates a quote lookup without usable entity ids
	ErrMissingEntityID = errors.New("missing entity ids")
)

// ProviderError wraps an error raised while talking to a flight provider.
// StatusCode is the HTTP status the boundary should answer with and Details is
// surfaced to the caller as-is.
type ProviderError struct {
	Provider   string
	Message    string
	StatusCode int
	Details    map[string]any
	Retryable  bool
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, msg)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new non-retryable ProviderError with a 502 status.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// NewRetryableProviderError creates a new ProviderError marked as retryable.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	pe := NewProviderError(provider, err)
	pe.Retryable = true
	return pe
}

// NewUpstreamTransportError reports a network failure reaching the upstream.
func NewUpstreamTransportError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Message:    "request failed",
		StatusCode: http.StatusBadGateway,
		Details:    map[string]any{"error": err.Error()},
		Retryable:  true,
		Err:        fmt.Errorf("%w: %w", ErrUpstreamTransport, err),
	}
}

// NewUpstreamStatusError reports an upstream error status, passing the status through.
func NewUpstreamStatusError(provider string, status int, details map[string]any) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Message:    "returned an error",
		StatusCode: status,
		Details:    details,
		Retryable:  status == http.StatusTooManyRequests || status >= http.StatusInternalServerError,
		Err:        fmt.Errorf("%w: status %d", ErrUpstreamStatus, status),
	}
}

// NewUpstreamMalformedError reports a success response that could not be decoded.
func NewUpstreamMalformedError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Message:    "response was not valid JSON",
		StatusCode: http.StatusBadGateway,
		Err:        fmt.Errorf("%w: %w", ErrUpstreamMalformed, err),
	}
}

// NewConfigurationError reports a fatal configuration problem detected before any I/O.
func NewConfigurationError(provider, message string) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        ErrConfiguration,
	}
}

// NewUnknownProviderError reports a provider name absent from the registry.
func NewUnknownProviderError(name string) *ProviderError {
	return &ProviderError{
		Provider:   name,
		Message:    "unknown flights provider",
		StatusCode: http.StatusInternalServerError,
		Err:        fmt.Errorf("%w: %w", ErrConfiguration, ErrUnknownProvider),
	}
}

// NewProviderNotImplementedError reports a known provider without an implementation.
func NewProviderNotImplementedError(name string) *ProviderError {
	return &ProviderError{
		Provider:   name,
		Message:    "provider is not configured",
		StatusCode: http.StatusNotImplemented,
		Err:        ErrProviderNotImplemented,
	}
}

// ValidationError represents a validation failure for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewMissingEntityIDError reports a quote lookup whose entity ids could not be derived.
func NewMissingEntityIDError(origin, destination string) error {
	return fmt.Errorf("%w: %w", ErrMissingEntityID,
		NewValidationError("entityId", fmt.Sprintf("cannot derive entity ids from %q and %q", origin, destination)))
}

// WrapInvalidRequest wraps a message as an invalid request error.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsConfiguration checks if the error is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// AsProviderError extracts a ProviderError from the error chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// StatusCode maps an error to the HTTP status the boundary answers with.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if pe, ok := AsProviderError(err); ok && pe.StatusCode > 0 {
		return pe.StatusCode
	}
	var ve *ValidationError
	if IsInvalidRequest(err) || errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
