package domain

import (
	"strings"
)

// DateLayout is the calendar date format used by queries and price points.
const DateLayout = "2006-01-02"

// Result limit bounds applied by the collection processor.
const (
	DefaultResultLimit = 50
	MinResultLimit     = 1
	MaxResultLimit     = 100
)

// Cabin classes accepted by the search API.
const (
	CabinEconomy        = "ECONOMY"
	CabinPremiumEconomy = "PREMIUM_ECONOMY"
	CabinBusiness       = "BUSINESS"
	CabinFirst          = "FIRST"
)

// SearchQuery is the immutable, already validated input of a flight search.
type SearchQuery struct {
	// Origin is the origin airport, city, or entity code (e.g., "JFK", "NYC", "NYCA")
	Origin string `json:"origin"`

	// Destination is the destination airport, city, or entity code
	Destination string `json:"destination"`

	// DepartDate is the outbound date in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the inbound date for round trips (empty for one-way)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the passenger count
	Adults int `json:"adults"`

	// Cabin is one of the Cabin* constants
	Cabin string `json:"cabin"`

	// Currency is the requested currency (empty means the configured default)
	Currency string `json:"currency,omitempty"`

	// Sort is the requested ordering (empty leaves upstream order)
	Sort SortOption `json:"sort,omitempty"`

	// Limit caps the number of returned offers (nil means DefaultResultLimit)
	Limit *int `json:"limit,omitempty"`

	// MaxStops drops offers with more connections than this value
	MaxStops *int `json:"maxStops,omitempty"`

	// AllowedAirlines keeps only offers whose airlines are all in this set
	AllowedAirlines []string `json:"allowedAirlines,omitempty"`

	// BypassCache skips the response cache read
	BypassCache bool `json:"bypassCache,omitempty"`
}

// IsRoundTrip reports whether the query carries a return date.
func (q *SearchQuery) IsRoundTrip() bool {
	return q.ReturnDate != ""
}

// HasOfferFilters reports whether a stop or airline filter is in effect.
func (q *SearchQuery) HasOfferFilters() bool {
	return q.MaxStops != nil || len(q.AllowedAirlines) > 0
}

// Filter returns the offer filter described by the query.
func (q *SearchQuery) Filter() OfferFilter {
	return OfferFilter{
		MaxStops:        q.MaxStops,
		AllowedAirlines: q.AllowedAirlines,
	}
}

// EffectiveLimit returns the result limit clamped to [MinResultLimit, MaxResultLimit].
func (q *SearchQuery) EffectiveLimit() int {
	if q.Limit == nil {
		return DefaultResultLimit
	}
	limit := *q.Limit
	if limit < MinResultLimit {
		return MinResultLimit
	}
	if limit > MaxResultLimit {
		return MaxResultLimit
	}
	return limit
}

// ResolveCurrency returns the query currency or the fallback when none was requested.
func (q *SearchQuery) ResolveCurrency(fallback string) string {
	if c := strings.TrimSpace(q.Currency); c != "" {
		return strings.ToUpper(c)
	}
	return fallback
}

// QueryEcho is the query as reported back to the caller.
type QueryEcho struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate,omitempty"`
	Adults      int    `json:"adults"`
	Cabin       string `json:"cabin"`
	Currency    string `json:"currency"`
}

// Echo builds the response echo of the query with the resolved currency.
func (q *SearchQuery) Echo(currency string) QueryEcho {
	return QueryEcho{
		Origin:      q.Origin,
		Destination: q.Destination,
		DepartDate:  q.DepartDate,
		ReturnDate:  q.ReturnDate,
		Adults:      q.Adults,
		Cabin:       q.Cabin,
		Currency:    currency,
	}
}

// IsValidCabin reports whether the cabin is one of the supported classes.
func IsValidCabin(cabin string) bool {
	switch cabin {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}
