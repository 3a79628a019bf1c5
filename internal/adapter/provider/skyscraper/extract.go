package skyscraper

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// record is one decoded JSON object from the upstream.
type record = map[string]any

// probe looks up one candidate location of a value inside a record.
// It reports false when the location is absent or holds an empty value.
type probe func(r record) (any, bool)

// scalarAt probes a nested path and accepts only non-empty strings and non-zero numbers.
func scalarAt(path ...string) probe {
	return func(r record) (any, bool) {
		v, ok := lookup(r, path...)
		if !ok {
			return nil, false
		}
		switch t := v.(type) {
		case string:
			return t, strings.TrimSpace(t) != ""
		case float64:
			return t, t != 0
		case json.Number:
			return t, t.String() != "" && t.String() != "0"
		}
		return nil, false
	}
}

// firstMatch returns the value of the first probe that matches.
func firstMatch(r record, probes []probe) (any, bool) {
	for _, p := range probes {
		if v, ok := p(r); ok {
			return v, true
		}
	}
	return nil, false
}

func firstString(r record, probes []probe) string {
	v, ok := firstMatch(r, probes)
	if !ok {
		return ""
	}
	return stringValue(v)
}

func lookup(r record, path ...string) (any, bool) {
	var cur any = r
	for _, key := range path {
		m, ok := cur.(record)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Offer-level price locations, most specific shape last.
var priceProbes = []probe{
	scalarAt("price"),
	scalarAt("pricing", "price"),
	scalarAt("price", "amount"),
	scalarAt("price", "formatted"),
}

// Vendor identifiers, in order of preference.
var vendorIDProbes = []probe{
	scalarAt("id"),
	scalarAt("flightId"),
	scalarAt("detailToken"),
}

var (
	segmentFromProbes = []probe{
		scalarAt("departureAirportCode"),
		scalarAt("from"),
		scalarAt("origin"),
	}
	segmentToProbes = []probe{
		scalarAt("arrivalAirportCode"),
		scalarAt("to"),
		scalarAt("destination"),
	}
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ExtractPrice converts a number, a formatted price string ("$1,234.50") or nil to a float.
// Anything unparseable yields 0.
func ExtractPrice(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		cleaned := nonPriceChars.ReplaceAllString(t, "")
		if cleaned == "" {
			return 0
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// extractOfferPrice finds the offer price in any of the known shapes.
func extractOfferPrice(r record) float64 {
	v, _ := firstMatch(r, priceProbes)
	return ExtractPrice(v)
}

// Airline is the airline information of one segment.
type Airline struct {
	Code         string
	Name         string
	FlightNumber string
}

// ExtractAirline reads the airline of a segment. The airline may be a bare code or an
// object with airlineCode, airlineName and flightNumber; explicit segment-level
// airlineCode and flightNumber fields win over the object.
func ExtractAirline(seg record) Airline {
	a := Airline{
		Code:         stringValue(seg["airlineCode"]),
		FlightNumber: stringValue(seg["flightNumber"]),
	}

	switch obj := seg["airline"].(type) {
	case record:
		if a.Code == "" {
			a.Code = stringValue(obj["airlineCode"])
		}
		a.Name = stringValue(obj["airlineName"])
		if a.FlightNumber == "" {
			a.FlightNumber = stringValue(obj["flightNumber"])
		}
	case string:
		if a.Code == "" {
			a.Code = strings.TrimSpace(obj)
		}
	}
	return a
}

var (
	nullHourPattern = regexp.MustCompile(`(?i)^null:(\d{2})$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

const midnight = "00:00:00"

// ComposeTimestamp joins a date and a clock time into "YYYY-MM-DDTHH:MM:SS".
// It returns false when the date is missing. A missing, "null" or malformed time
// becomes midnight; "null:MM" is read as "00:MM".
func ComposeTimestamp(date, clock any) (string, bool) {
	d, ok := date.(string)
	if !ok || d == "" {
		return "", false
	}
	return d + "T" + normalizeClock(clock), true
}

func normalizeClock(clock any) string {
	raw, ok := clock.(string)
	if !ok {
		return midnight
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return midnight
	}

	raw = nullHourPattern.ReplaceAllString(raw, "00:$1")
	if len(raw) == 5 {
		raw += ":00"
	}
	if !clockPattern.MatchString(raw) {
		return midnight
	}
	return raw
}

// Flight list containers probed on the response data object, in order.
var flightListKeys = []string{"topFlights", "otherFlights", "flights", "results"}

// LocateFlightList collects the flight records of a list response's data object.
// Every known container that holds a list is concatenated; non-object entries are dropped.
func LocateFlightList(data any) []record {
	d, ok := data.(record)
	if !ok {
		return nil
	}

	candidates := make([]any, 0, len(flightListKeys)+1)
	for _, key := range flightListKeys {
		candidates = append(candidates, d[key])
	}
	if itineraries, ok := d["itineraries"].(record); ok {
		candidates = append(candidates, itineraries["results"])
	}

	var out []record
	for _, c := range candidates {
		list, ok := c.([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if r, ok := item.(record); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// pickRoot returns the root object of a payload that is either an object or a list
// whose first element is the object.
func pickRoot(payload any) record {
	switch t := payload.(type) {
	case record:
		return t
	case []any:
		if len(t) > 0 {
			if r, ok := t[0].(record); ok {
				return r
			}
		}
	}
	return record{}
}

// recordList returns the object entries of a list value.
func recordList(v any) []record {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]record, 0, len(list))
	for _, item := range list {
		if r, ok := item.(record); ok {
			out = append(out, r)
		}
	}
	return out
}

// intValue converts a JSON number to an int.
func intValue(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

// numberValue converts a JSON number to a float.
func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

// stringValue renders a scalar JSON value as a trimmed string.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}
