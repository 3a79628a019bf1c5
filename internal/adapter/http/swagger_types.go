// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResult represents the search API response for swagger documentation.
// @Description Normalized offers with the query echo and result metadata
type SwaggerSearchResult struct {
	// Query echoes the search with the resolved currency
	Query SwaggerQueryEcho `json:"query"`

	// Offers are the filtered, sorted and limited offers
	Offers []SwaggerOffer `json:"offers"`

	// Meta describes the returned offers and the price history
	Meta SwaggerSearchMeta `json:"meta"`
}

// SwaggerQueryEcho is the query as reported back to the caller.
// @Description Search query echo
type SwaggerQueryEcho struct {
	Origin      string `json:"origin" example:"JFK"`
	Destination string `json:"destination" example:"LHR"`
	DepartDate  string `json:"departDate" example:"2025-06-01"`
	ReturnDate  string `json:"returnDate,omitempty" example:"2025-06-10"`
	Adults      int    `json:"adults" example:"1"`
	Cabin       string `json:"cabin" example:"ECONOMY"`
	Currency    string `json:"currency" example:"USD"`
}

// SwaggerOffer represents a single normalized offer.
// @Description One itinerary with price, stops and segments
type SwaggerOffer struct {
	// ID is derived from the vendor offer id
	ID string `json:"id" example:"off_3f9a1c0b7e2d4a58"`

	Price           SwaggerPrice        `json:"price"`
	Stops           int                 `json:"stops" example:"0"`
	DurationMinutes int                 `json:"durationMinutes" example:"420"`
	Airlines        []SwaggerAirlineRef `json:"airlines"`
	Segments        []SwaggerSegment    `json:"segments"`
	DepartAt        string              `json:"departAt,omitempty" example:"2025-06-01T08:00:00"`
	ArriveAt        string              `json:"arriveAt,omitempty" example:"2025-06-01T20:00:00"`
}

// SwaggerPrice contains the total price of an offer.
// @Description Offer price
type SwaggerPrice struct {
	Total    float64 `json:"total" example:"412.5"`
	Currency string  `json:"currency" example:"USD"`
}

// SwaggerAirlineRef identifies an airline.
// @Description Airline code and display name
type SwaggerAirlineRef struct {
	Code string `json:"code" example:"BA"`
	Name string `json:"name" example:"British Airways"`
}

// SwaggerSegment is one flown leg.
// @Description Flight segment
type SwaggerSegment struct {
	From            string `json:"from" example:"JFK"`
	To              string `json:"to" example:"LHR"`
	DepartAt        string `json:"departAt,omitempty" example:"2025-06-01T08:00:00"`
	ArriveAt        string `json:"arriveAt,omitempty" example:"2025-06-01T20:00:00"`
	Airline         string `json:"airline,omitempty" example:"BA"`
	AirlineName     string `json:"airlineName,omitempty" example:"British Airways"`
	FlightNumber    string `json:"flightNumber,omitempty" example:"BA178"`
	DurationMinutes int    `json:"durationMinutes" example:"420"`
}

// SwaggerPricePoint is one date of the price history.
// @Description Lowest price for a date
type SwaggerPricePoint struct {
	Date  string  `json:"date" example:"2025-06-01"`
	Price float64 `json:"price" example:"398"`
}

// SwaggerSearchMeta describes the returned offers and the attached price history.
// @Description Result metadata
type SwaggerSearchMeta struct {
	MinPrice                    *float64            `json:"minPrice" example:"398"`
	MaxPrice                    *float64            `json:"maxPrice" example:"910"`
	Airlines                    []SwaggerAirlineRef `json:"airlines"`
	StopsCounts                 map[string]int      `json:"stopsCounts"`
	PriceHistory                []SwaggerPricePoint `json:"priceHistory"`
	PriceHistorySource          string              `json:"priceHistorySource" enums:"google_price_graph,offers,search_everywhere,none" example:"google_price_graph"`
	PriceHistoryFilterAware     bool                `json:"priceHistoryFilterAware" example:"false"`
	PriceHistoryPoints          int                 `json:"priceHistoryPoints" example:"14"`
	PriceHistoryCacheAgeSeconds *int                `json:"priceHistoryCacheAgeSeconds" example:"90"`
	PriceHistoryCacheTTLSeconds *int                `json:"priceHistoryCacheTtlSeconds" example:"900"`
	Cached                      bool                `json:"cached" example:"false"`
	CacheAgeSeconds             *int                `json:"cacheAgeSeconds"`
	CacheTTLSeconds             *int                `json:"cacheTtlSeconds"`
}
