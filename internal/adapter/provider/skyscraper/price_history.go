package skyscraper

import (
	"strings"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// EverywhereEntity converts a code to the entity id used by the quote endpoint.
// A 3-letter code gains an "A" suffix ("NYC" -> "NYCA"); other codes pass through.
// It reports false for an empty code.
func EverywhereEntity(code string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return "", false
	}
	if len(c) == 3 {
		return c + "A", true
	}
	return c, true
}

// parsePriceGraph reads {"data": [{"departureDate": "...", "price": 123}, ...]}.
// Entries without a date or a numeric price are skipped.
func parsePriceGraph(payload any) []domain.PricePoint {
	root := pickRoot(payload)

	var points []domain.PricePoint
	for _, item := range recordList(root["data"]) {
		date, ok := item["departureDate"].(string)
		if !ok || date == "" {
			continue
		}
		price, ok := numberValue(item["price"])
		if !ok {
			continue
		}
		points = append(points, domain.PricePoint{Date: date, Price: price})
	}
	return domain.LowestPerDate(points)
}

// parseQuoteHistory reads data.flightQuotes.results[].content, keyed by the outbound
// local departure date. The numeric rawPrice wins over the formatted price.
func parseQuoteHistory(payload any) []domain.PricePoint {
	root := pickRoot(payload)
	results, _ := lookup(root, "data", "flightQuotes", "results")

	var points []domain.PricePoint
	for _, item := range recordList(results) {
		content, ok := item["content"].(record)
		if !ok {
			continue
		}
		date, _ := lookup(content, "outboundLeg", "localDepartureDate")
		d, ok := date.(string)
		if !ok || d == "" {
			continue
		}

		price, ok := numberValue(content["rawPrice"])
		if !ok {
			price = ExtractPrice(content["price"])
		}
		points = append(points, domain.PricePoint{Date: d, Price: price})
	}
	return domain.LowestPerDate(points)
}
