// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is an airport, city, or entity code (e.g., "JFK", "NYC", "NYCA")
	Origin string `json:"origin" validate:"required,min=3,max=8" example:"JFK"`

	// Destination is an airport, city, or entity code
	Destination string `json:"destination" validate:"required,min=3,max=8" example:"LHR"`

	// DepartDate is the outbound date in YYYY-MM-DD format
	DepartDate string `json:"departDate" validate:"required,datetime=2006-01-02" example:"2025-06-01"`

	// ReturnDate is the inbound date for round trips (optional)
	ReturnDate string `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-06-10"`

	// Adults is the passenger count (1-6)
	Adults int `json:"adults" validate:"required,min=1,max=6" example:"1"`

	// Cabin is ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST
	Cabin string `json:"cabin" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST" example:"ECONOMY"`

	// Currency is an optional ISO 4217 code
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3,alpha" example:"USD"`

	// Sort is cheapest, shortest or least_stops; anything else keeps upstream order
	Sort string `json:"sort,omitempty" example:"cheapest"`

	// Limit caps the number of offers (1-100, default 50); a number or numeric string
	Limit LenientInt `json:"limit,omitempty" swaggertype:"integer" example:"20"`

	// MaxStops drops offers with more connections; a number or numeric string
	MaxStops LenientInt `json:"maxStops,omitempty" swaggertype:"integer" example:"1"`

	// AllowedAirlines is a list of airline codes or a comma-separated string
	AllowedAirlines AirlineList `json:"allowedAirlines,omitempty" swaggertype:"array,string" example:"AF,KL"`

	// BypassCache skips the response cache read
	BypassCache bool `json:"bypassCache,omitempty"`
}

// LenientInt decodes a JSON number or numeric string. Anything else, including
// null, leaves it unset.
type LenientInt struct {
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LenientInt) UnmarshalJSON(data []byte) error {
	l.Value = nil

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			l.set(n)
		} else if f, err := t.Float64(); err == nil && !math.IsInf(f, 0) {
			l.set(int64(f))
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			l.set(n)
		}
	}
	return nil
}

func (l *LenientInt) set(n int64) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return
	}
	v := int(n)
	l.Value = &v
}

// MarshalJSON implements json.Marshaler.
func (l LenientInt) MarshalJSON() ([]byte, error) {
	if l.Value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*l.Value)), nil
}

// AirlineList decodes either a JSON list or a comma-separated string of airline codes.
// Codes are trimmed and uppercased; blanks are dropped. Other JSON types leave it empty.
type AirlineList []string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AirlineList) UnmarshalJSON(data []byte) error {
	*a = nil

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []any:
		for _, item := range t {
			switch s := item.(type) {
			case string:
				raw = append(raw, s)
			case float64:
				raw = append(raw, strconv.FormatFloat(s, 'f', -1, 64))
			}
		}
	}

	for _, code := range raw {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			*a = append(*a, code)
		}
	}
	return nil
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message per field wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims and uppercases the codes and the currency.
func (r *SearchFlightsRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.Cabin = strings.ToUpper(strings.TrimSpace(r.Cabin))
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.Sort = strings.ToLower(strings.TrimSpace(r.Sort))
	r.DepartDate = strings.TrimSpace(r.DepartDate)
	r.ReturnDate = strings.TrimSpace(r.ReturnDate)
}

// Validate normalizes the request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	r.Normalize()
	errs := &ValidationErrors{}

	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs.Add(fe.Field(), fieldMessage(fe))
		}
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "Destination must be different from origin.")
	}
	r.validateReturnDate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateReturnDate(errs *ValidationErrors) {
	if r.ReturnDate == "" {
		return
	}
	depart, err := time.Parse(domain.DateLayout, r.DepartDate)
	if err != nil {
		return
	}
	ret, err := time.Parse(domain.DateLayout, r.ReturnDate)
	if err != nil {
		return
	}
	if ret.Before(depart) {
		errs.Add("returnDate", "Return date must be on or after depart date.")
	}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "alpha":
		return field + " must contain letters only"
	case "datetime":
		return field + " must be a valid date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return field + " is invalid"
	}
}
