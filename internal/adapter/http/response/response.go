// Package response provides standardized HTTP response builders for the flight search API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// StatusCode repeats the HTTP status of the response
	StatusCode int `json:"status_code"`

	// Details carries field errors or the upstream error payload
	Details map[string]any `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeProviderError      = "provider_error"
	CodeConfigurationError = "configuration_error"
	CodeNotImplemented     = "not_implemented"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func writeError(c echo.Context, status int, code, message string, details map[string]any) error {
	return c.JSON(status, &ErrorDetail{
		Code:       code,
		Message:    message,
		StatusCode: status,
		Details:    details,
	})
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes {"status":"ok"}. It does not probe the upstream.
func Health(c echo.Context) error {
	return OK(c, &HealthResponse{Status: "ok"})
}

// SearchResults writes a search result as the bare response body.
func SearchResults(c echo.Context, result any) error {
	return OK(c, result)
}
