package domain

import "sort"

// PriceHistorySource tags where the price-history series came from.
type PriceHistorySource string

// Price-history sources, in precedence order.
const (
	PriceHistoryGoogleGraph      PriceHistorySource = "google_price_graph"
	PriceHistoryOffers           PriceHistorySource = "offers"
	PriceHistorySearchEverywhere PriceHistorySource = "search_everywhere"
	PriceHistoryNone             PriceHistorySource = "none"
)

// Stop histogram buckets.
const (
	StopsBucketDirect   = "0"
	StopsBucketOneStop  = "1"
	StopsBucketMultiple = "2+"
)

// PricePoint is one date of a price-history series.
type PricePoint struct {
	// Date is a calendar date in YYYY-MM-DD format
	Date string `json:"date"`

	// Price is the lowest known price for that date
	Price float64 `json:"price"`
}

// SortPricePoints orders a series by date ascending.
func SortPricePoints(points []PricePoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}

// LowestPerDate collapses a series to the lowest price per date, sorted by date.
func LowestPerDate(points []PricePoint) []PricePoint {
	byDate := make(map[string]float64, len(points))
	for _, p := range points {
		if p.Date == "" {
			continue
		}
		prev, ok := byDate[p.Date]
		if !ok || p.Price < prev {
			byDate[p.Date] = p.Price
		}
	}
	out := make([]PricePoint, 0, len(byDate))
	for d, p := range byDate {
		out = append(out, PricePoint{Date: d, Price: p})
	}
	SortPricePoints(out)
	return out
}

// StopsCounts is the stop histogram over buckets "0", "1" and "2+".
type StopsCounts map[string]int

// NewStopsCounts returns a histogram with every bucket present and zeroed.
func NewStopsCounts() StopsCounts {
	return StopsCounts{
		StopsBucketDirect:   0,
		StopsBucketOneStop:  0,
		StopsBucketMultiple: 0,
	}
}

// Add counts one offer with the given number of stops.
func (s StopsCounts) Add(stops int) {
	switch {
	case stops <= 0:
		s[StopsBucketDirect]++
	case stops == 1:
		s[StopsBucketOneStop]++
	default:
		s[StopsBucketMultiple]++
	}
}

// Total returns the number of offers counted.
func (s StopsCounts) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// SearchMeta describes the returned offers and the attached price history.
type SearchMeta struct {
	MinPrice                *float64           `json:"minPrice"`
	MaxPrice                *float64           `json:"maxPrice"`
	Airlines                []AirlineRef       `json:"airlines"`
	StopsCounts             StopsCounts        `json:"stopsCounts"`
	PriceHistory            []PricePoint       `json:"priceHistory"`
	PriceHistorySource      PriceHistorySource `json:"priceHistorySource"`
	PriceHistoryFilterAware bool               `json:"priceHistoryFilterAware"`
	PriceHistoryPoints      int                `json:"priceHistoryPoints"`

	// PriceHistoryCacheAgeSeconds is set when the graph came from the curve cache
	PriceHistoryCacheAgeSeconds *int `json:"priceHistoryCacheAgeSeconds"`
	PriceHistoryCacheTTLSeconds *int `json:"priceHistoryCacheTtlSeconds"`

	// Cached is true when the whole result was served from the response cache
	Cached          bool `json:"cached"`
	CacheAgeSeconds *int `json:"cacheAgeSeconds"`
	CacheTTLSeconds *int `json:"cacheTtlSeconds"`
}

// SearchResult is the complete answer to a search query.
type SearchResult struct {
	Query  QueryEcho  `json:"query"`
	Offers []Offer    `json:"offers"`
	Meta   SearchMeta `json:"meta"`
}

// NewSearchResult creates a SearchResult, normalizing nil slices to empty ones.
func NewSearchResult(query QueryEcho, offers []Offer, meta SearchMeta) SearchResult {
	if offers == nil {
		offers = []Offer{}
	}
	if meta.Airlines == nil {
		meta.Airlines = []AirlineRef{}
	}
	if meta.PriceHistory == nil {
		meta.PriceHistory = []PricePoint{}
	}
	if meta.StopsCounts == nil {
		meta.StopsCounts = NewStopsCounts()
	}
	if meta.PriceHistorySource == "" {
		meta.PriceHistorySource = PriceHistoryNone
	}
	meta.PriceHistoryPoints = len(meta.PriceHistory)

	return SearchResult{
		Query:  query,
		Offers: offers,
		Meta:   meta,
	}
}
