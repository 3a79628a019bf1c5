// Package mock provides test doubles for the flight search system.
// Upstream is a configurable fake of the Sky-Scraper HTTP API for integration
// tests: canned replies per path, delays, and call counting.
package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// Upstream paths served by the fake.
const (
	PathSearchOneWay        = "/google/flights/search-one-way"
	PathSearchRoundTrip     = "/google/flights/search-roundtrip"
	PathPriceGraphOneWay    = "/google/price-graph/for-one-way"
	PathPriceGraphRoundTrip = "/google/price-graph/for-roundtrip"
	PathSearchEverywhere    = "/flights/search-everywhere"
	PathAirports            = "/airports.json"
)

// Reply is a canned upstream answer.
type Reply struct {
	Status int
	Body   string
}

// Upstream is a fake Sky-Scraper API. Unconfigured paths answer 404.
type Upstream struct {
	server  *httptest.Server
	mu      sync.Mutex
	replies map[string]Reply
	calls   map[string]int
	keys    []string
	delay   time.Duration
}

// NewUpstream starts a fake upstream that is closed when the test ends.
func NewUpstream(t testing.TB) *Upstream {
	t.Helper()
	u := &Upstream{
		replies: make(map[string]Reply),
		calls:   make(map[string]int),
	}
	u.server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.server.Close)
	return u
}

// WithReply configures the answer for path.
func (u *Upstream) WithReply(path string, status int, body string) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.replies[path] = Reply{Status: status, Body: body}
	return u
}

// WithJSON configures a 200 answer for path with v encoded as JSON.
func (u *Upstream) WithJSON(path string, v any) *Upstream {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return u.WithReply(path, http.StatusOK, string(data))
}

// WithDelay makes every answer wait d, or until the request is cancelled.
func (u *Upstream) WithDelay(d time.Duration) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = d
	return u
}

// URL returns the base URL of the fake.
func (u *Upstream) URL() string {
	return u.server.URL
}

// Client returns an HTTP client wired to the fake.
func (u *Upstream) Client() *http.Client {
	return u.server.Client()
}

// Calls returns how many requests path received.
func (u *Upstream) Calls(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

// TotalCalls returns the number of requests received on all paths.
func (u *Upstream) TotalCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := 0
	for _, n := range u.calls {
		total += n
	}
	return total
}

// APIKeys returns the distinct x-rapidapi-key headers seen, sorted.
func (u *Upstream) APIKeys() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := append([]string(nil), u.keys...)
	sort.Strings(out)
	return out
}

// Reset clears the call counters.
func (u *Upstream) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls = make(map[string]int)
	u.keys = nil
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls[r.URL.Path]++
	if key := r.Header.Get("x-rapidapi-key"); key != "" && !contains(u.keys, key) {
		u.keys = append(u.keys, key)
	}
	reply, ok := u.replies[r.URL.Path]
	delay := u.delay
	u.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if !ok {
		reply = Reply{Status: http.StatusNotFound, Body: `{"message":"Endpoint not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Segment builds one raw list segment in the departure/arrival airport shape.
func Segment(from, to, departAt, arriveAt, airline string, minutes int) map[string]any {
	departDate, departTime := splitTimestamp(departAt)
	arriveDate, arriveTime := splitTimestamp(arriveAt)
	return map[string]any{
		"departureAirportCode": from,
		"arrivalAirportCode":   to,
		"departureDate":        departDate,
		"departureTime":        departTime,
		"arrivalDate":          arriveDate,
		"arrivalTime":          arriveTime,
		"airline":              airline,
		"durationMinutes":      minutes,
	}
}

// Flight builds one raw list record.
func Flight(id string, price float64, segments ...map[string]any) map[string]any {
	return map[string]any{
		"id":       id,
		"price":    price,
		"segments": segments,
	}
}

// ListBody wraps flight records in the list endpoint envelope.
func ListBody(flights ...map[string]any) map[string]any {
	if flights == nil {
		flights = []map[string]any{}
	}
	return map[string]any{
		"status":  true,
		"message": "Success",
		"data": map[string]any{
			"topFlights": flights,
		},
	}
}

// ConnectingAF is a JFK-CDG-LHR Air France itinerary departing 2025-06-01 priced at 450.
func ConnectingAF() map[string]any {
	return Flight("af-connection-1", 450.0,
		Segment("JFK", "CDG", "2025-06-01T18:30", "2025-06-02T07:45", "AF", 435),
		Segment("CDG", "LHR", "2025-06-02T08:50", "2025-06-02T09:05", "AF", 75),
	)
}

// PriceGraphBody builds a price-graph payload from points.
func PriceGraphBody(points ...domain.PricePoint) map[string]any {
	data := make([]map[string]any, 0, len(points))
	for _, p := range points {
		data = append(data, map[string]any{"departureDate": p.Date, "price": p.Price})
	}
	return map[string]any{"status": true, "data": data}
}

// QuotesBody builds a search-everywhere payload whose quotes carry points as raw prices.
func QuotesBody(points ...domain.PricePoint) map[string]any {
	results := make([]map[string]any, 0, len(points))
	for _, p := range points {
		results = append(results, map[string]any{
			"content": map[string]any{
				"outboundLeg": map[string]any{"localDepartureDate": p.Date},
				"rawPrice":    p.Price,
			},
		})
	}
	return map[string]any{
		"status": true,
		"data": map[string]any{
			"flightQuotes": map[string]any{"results": results},
		},
	}
}

func splitTimestamp(ts string) (date, clock string) {
	if len(ts) < 10 {
		return ts, ""
	}
	date = ts[:10]
	if len(ts) > 11 {
		clock = ts[11:]
	}
	return date, clock
}
