// Package domain contains the core business entities and rules for the flight search system.
// These entities are provider-agnostic: every upstream shape is normalized into them before
// any filtering, ranking, or caching happens.
package domain

// OfferIDPrefix is prepended to every public offer identifier.
const OfferIDPrefix = "off_"

// Offer is the canonical unit of a search result: one itinerary with its price,
// stop count, and ordered flight segments.
type Offer struct {
	// ID is a short, stable identifier derived from the vendor id (never the raw vendor token)
	ID string `json:"id"`

	// Price contains the total price and its currency
	Price Price `json:"price"`

	// Stops is the number of connections (segment count - 1, never negative)
	Stops int `json:"stops"`

	// DurationMinutes is the total travel time in minutes
	DurationMinutes int `json:"durationMinutes"`

	// Airlines is the set of distinct operating airlines, sorted by code
	Airlines []AirlineRef `json:"airlines"`

	// Segments are the flown legs in flight order
	Segments []Segment `json:"segments"`

	// DepartAt is the first segment's departure timestamp (empty when unknown)
	DepartAt string `json:"departAt,omitempty"`

	// ArriveAt is the last segment's arrival timestamp (empty when unknown)
	ArriveAt string `json:"arriveAt,omitempty"`
}

// Price contains pricing information for an offer.
type Price struct {
	// Total is the numeric total price for all passengers
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code, passed through from the query
	Currency string `json:"currency"`
}

// AirlineRef identifies an airline by code with an optional display name.
type AirlineRef struct {
	// Code is the IATA airline code (e.g., "AF")
	Code string `json:"code"`

	// Name is the display name; falls back to the code when the upstream gives none
	Name string `json:"name"`
}

// Segment is one flown leg between two airports.
type Segment struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DepartAt        string `json:"departAt,omitempty"`
	ArriveAt        string `json:"arriveAt,omitempty"`
	Airline         string `json:"airline,omitempty"`
	AirlineName     string `json:"airlineName,omitempty"`
	FlightNumber    string `json:"flightNumber,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AirlineCodes returns the offer's airline codes in their stored order.
func (o *Offer) AirlineCodes() []string {
	codes := make([]string, 0, len(o.Airlines))
	for _, a := range o.Airlines {
		if a.Code != "" {
			codes = append(codes, a.Code)
		}
	}
	return codes
}

// DepartDate returns the calendar date (YYYY-MM-DD) of the first segment's departure,
// or false when the offer has no usable departure timestamp.
func (o *Offer) DepartDate() (string, bool) {
	if len(o.Segments) == 0 {
		return "", false
	}
	departAt := o.Segments[0].DepartAt
	if len(departAt) < len(DateLayout) {
		return "", false
	}
	return departAt[:len(DateLayout)], true
}

// StopsFromSegments derives the stop count from the number of flown segments.
func StopsFromSegments(segmentCount int) int {
	if segmentCount <= 1 {
		return 0
	}
	return segmentCount - 1
}
