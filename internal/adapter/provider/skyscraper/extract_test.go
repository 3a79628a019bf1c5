package skyscraper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float", input: 450.0, want: 450},
		{name: "int", input: 12, want: 12},
		{name: "json number", input: json.Number("99.5"), want: 99.5},
		{name: "plain numeric string", input: "123.40", want: 123.4},
		{name: "formatted string", input: "$1,234.50", want: 1234.5},
		{name: "currency suffix", input: "980 USD", want: 980},
		{name: "no digits", input: "free", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "several dots", input: "1.2.3", want: 0},
		{name: "object", input: map[string]any{"amount": 5.0}, want: 0},
		{name: "bool", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrice(tt.input))
			assert.Equal(t, tt.want, ExtractPrice(tt.input), "same input, same output")
		})
	}
}

func TestExtractOfferPrice_ProbeOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "top-level number", raw: `{"price": 450}`, want: 450},
		{name: "top-level string", raw: `{"price": "$520"}`, want: 520},
		{name: "pricing object", raw: `{"pricing": {"price": 610}}`, want: 610},
		{name: "price amount", raw: `{"price": {"amount": 300, "formatted": "$301"}}`, want: 300},
		{name: "price formatted", raw: `{"price": {"formatted": "€999"}}`, want: 999},
		{name: "zero price falls through", raw: `{"price": 0, "pricing": {"price": 75}}`, want: 75},
		{name: "missing", raw: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decode(t, tt.raw).(map[string]any)
			assert.Equal(t, tt.want, extractOfferPrice(r))
		})
	}
}

func TestExtractAirline(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Airline
	}{
		{
			name: "bare code",
			raw:  `{"airline": "AF"}`,
			want: Airline{Code: "AF"},
		},
		{
			name: "object",
			raw:  `{"airline": {"airlineCode": "AF", "airlineName": "Air France", "flightNumber": "AF 23"}}`,
			want: Airline{Code: "AF", Name: "Air France", FlightNumber: "AF 23"},
		},
		{
			name: "explicit fields win over object",
			raw:  `{"airlineCode": "KL", "flightNumber": "KL 642", "airline": {"airlineCode": "AF", "airlineName": "Air France", "flightNumber": "AF 23"}}`,
			want: Airline{Code: "KL", Name: "Air France", FlightNumber: "KL 642"},
		},
		{
			name: "explicit code wins over bare code",
			raw:  `{"airlineCode": "BA", "airline": "AA"}`,
			want: Airline{Code: "BA"},
		},
		{
			name: "numeric flight number",
			raw:  `{"airline": "DL", "flightNumber": 404}`,
			want: Airline{Code: "DL", FlightNumber: "404"},
		},
		{
			name: "absent",
			raw:  `{}`,
			want: Airline{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := decode(t, tt.raw).(map[string]any)
			assert.Equal(t, tt.want, ExtractAirline(seg))
		})
	}
}

func TestComposeTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		date   any
		clock  any
		want   string
		wantOK bool
	}{
		{name: "hh:mm", date: "2025-06-01", clock: "18:30", want: "2025-06-01T18:30:00", wantOK: true},
		{name: "hh:mm:ss", date: "2025-06-01", clock: "18:30:15", want: "2025-06-01T18:30:15", wantOK: true},
		{name: "null hour repaired", date: "2025-06-01", clock: "null:05", want: "2025-06-01T00:05:00", wantOK: true},
		{name: "null hour any case", date: "2025-06-01", clock: "NULL:50", want: "2025-06-01T00:50:00", wantOK: true},
		{name: "null literal", date: "2025-06-01", clock: "null", want: "2025-06-01T00:00:00", wantOK: true},
		{name: "missing time", date: "2025-06-01", clock: nil, want: "2025-06-01T00:00:00", wantOK: true},
		{name: "blank time", date: "2025-06-01", clock: "  ", want: "2025-06-01T00:00:00", wantOK: true},
		{name: "malformed time", date: "2025-06-01", clock: "6:30pm", want: "2025-06-01T00:00:00", wantOK: true},
		{name: "single digit hour", date: "2025-06-01", clock: "6:30", want: "2025-06-01T00:00:00", wantOK: true},
		{name: "non-string time", date: "2025-06-01", clock: 1830.0, want: "2025-06-01T00:00:00", wantOK: true},
		{name: "missing date", date: nil, clock: "18:30", want: "", wantOK: false},
		{name: "empty date", date: "", clock: "18:30", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComposeTimestamp(tt.date, tt.clock)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateFlightList(t *testing.T) {
	data := decode(t, `{
		"topFlights": [{"id": "a"}, "skip", 3],
		"otherFlights": {"not": "a list"},
		"flights": [{"id": "b"}],
		"results": [],
		"itineraries": {"results": [{"id": "c"}, null]}
	}`)

	got := LocateFlightList(data)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0]["id"])
	assert.Equal(t, "b", got[1]["id"])
	assert.Equal(t, "c", got[2]["id"])
}

func TestLocateFlightList_NonObject(t *testing.T) {
	assert.Empty(t, LocateFlightList(nil))
	assert.Empty(t, LocateFlightList([]any{}))
	assert.Empty(t, LocateFlightList(map[string]any{}))
}

func TestPickRoot(t *testing.T) {
	assert.Equal(t, "x", pickRoot(decode(t, `{"k": "x"}`))["k"])
	assert.Equal(t, "y", pickRoot(decode(t, `[{"k": "y"}, {"k": "z"}]`))["k"])
	assert.Empty(t, pickRoot(decode(t, `[]`)))
	assert.Empty(t, pickRoot(decode(t, `["text"]`)))
	assert.Empty(t, pickRoot(decode(t, `"text"`)))
}
