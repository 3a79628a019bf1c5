package domain

import (
	"context"
	"strings"
)

//go:generate mockgen -source=place.go -destination=mock_place.go -package=domain

// Autocomplete bounds.
const (
	MinPlaceQueryLength = 2
	DefaultPlacesLimit  = 8
	MinPlacesLimit      = 1
	MaxPlacesLimit      = 12
)

// Airport is one record of the airport dataset.
type Airport struct {
	IATA    string `json:"iata,omitempty"`
	ICAO    string `json:"icao,omitempty"`
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Code returns the IATA code, falling back to the ICAO code.
func (a *Airport) Code() string {
	if a.IATA != "" {
		return a.IATA
	}
	return a.ICAO
}

// PlaceSuggestion is one autocomplete result.
type PlaceSuggestion struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	City        string `json:"city"`
	Country     string `json:"country"`
	AirportName string `json:"airportName"`
}

// PlaceResults is the autocomplete answer for one query.
type PlaceResults struct {
	Query   string            `json:"query"`
	Results []PlaceSuggestion `json:"results"`
}

// AirportSource provides the airport dataset.
type AirportSource interface {
	// Airports returns every airport record of the dataset.
	Airports(ctx context.Context) ([]Airport, error)
}

// cityDefaultAirports maps metropolitan city codes to the airport used by the
// airport-based upstream endpoints.
var cityDefaultAirports = map[string]string{
	"NYC": "JFK",
	"LON": "LHR",
	"PAR": "CDG",
}

// GoogleAirport converts a city, entity or airport code to the airport code expected
// by airport-based endpoints. Entity ids such as "NYCA" are first reduced to their
// city; unknown codes pass through.
func GoogleAirport(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) == 4 && strings.HasSuffix(c, "A") {
		c = c[:3]
	}
	if airport, ok := cityDefaultAirports[c]; ok {
		return airport
	}
	return c
}
