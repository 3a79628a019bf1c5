package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	d := make(map[string]any, len(details))
	for k, v := range details {
		d[k] = v
	}
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, d)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}

// ProviderError writes a provider failure with the provider's own status code and details.
func ProviderError(c echo.Context, pe *domain.ProviderError) error {
	status := pe.StatusCode
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}

	code := CodeProviderError
	switch {
	case errors.Is(pe, domain.ErrConfiguration):
		code = CodeConfigurationError
	case errors.Is(pe, domain.ErrProviderNotImplemented):
		code = CodeNotImplemented
	}

	return writeError(c, status, code, pe.Error(), pe.Details)
}

// FromError maps any error returned by a use case to a structured response.
func FromError(c echo.Context, err error) error {
	if pe, ok := domain.AsProviderError(err); ok {
		return ProviderError(c, pe)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ValidationError(c, map[string]string{ve.Field: ve.Message})
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return RequestCancelled(c)
	case domain.IsInvalidRequest(err):
		return ValidationErrorWithMessage(c, err.Error())
	}
	return InternalServerError(c)
}
