package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleAirport(t *testing.T) {
	tests := map[string]string{
		"NYC":   "JFK",
		"nyc":   "JFK",
		"NYCA":  "JFK",
		"LONA":  "LHR",
		"PAR":   "CDG",
		" lon ": "LHR",
		"NBO":   "NBO",
		"JFK":   "JFK",
		"SFOA":  "SFO",
		"BCNX":  "BCNX",
		"":      "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, GoogleAirport(in))
		})
	}
}

func TestAirport_Code(t *testing.T) {
	assert.Equal(t, "LHR", (&Airport{IATA: "LHR", ICAO: "EGLL"}).Code())
	assert.Equal(t, "00AK", (&Airport{ICAO: "00AK"}).Code())
	assert.Empty(t, (&Airport{}).Code())
}
