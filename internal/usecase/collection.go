package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// ProcessedOffers is the outcome of the collection pipeline.
type ProcessedOffers struct {
	// Final is the deduplicated, filtered, sorted and limited list returned to the caller
	Final []domain.Offer

	// PreLimit is the same list before the limit was applied; the offer-derived
	// price curve is built from it so a small limit never thins the chart
	PreLimit []domain.Offer
}

// ProcessOffers runs dedupe, filters, sort and limit, in that order.
func ProcessOffers(offers []domain.Offer, query *domain.SearchQuery) ProcessedOffers {
	filter := query.Filter()

	deduped := DedupeOffers(offers)
	filtered := ApplyFilters(deduped, &filter)
	sorted := SortOffers(filtered, query.Sort)

	return ProcessedOffers{
		Final:    LimitOffers(sorted, query.EffectiveLimit()),
		PreLimit: sorted,
	}
}

// DedupeOffers drops offers identical to an earlier one in price, stops, depart and
// arrive timestamps and the ordered (from, to, depart, arrive, airline) segment tuples.
// The first occurrence wins and the order is preserved.
func DedupeOffers(offers []domain.Offer) []domain.Offer {
	seen := make(map[string]struct{}, len(offers))
	result := make([]domain.Offer, 0, len(offers))

	for _, o := range offers {
		key := dedupeKey(&o)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, o)
	}
	return result
}

func dedupeKey(o *domain.Offer) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(o.Price.Total, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(o.Stops))
	b.WriteByte('|')
	b.WriteString(o.DepartAt)
	b.WriteByte('|')
	b.WriteString(o.ArriveAt)
	for _, s := range o.Segments {
		b.WriteString("|[")
		for _, part := range []string{s.From, s.To, s.DepartAt, s.ArriveAt, s.Airline} {
			b.WriteString(part)
			b.WriteByte(0)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// LimitOffers returns at most limit offers.
func LimitOffers(offers []domain.Offer, limit int) []domain.Offer {
	if limit < 0 || len(offers) <= limit {
		return offers
	}
	return offers[:limit]
}

// BuildOfferMeta computes the offer aggregates of the meta block strictly from the
// returned offers: price range, airline set and stop histogram.
func BuildOfferMeta(offers []domain.Offer) domain.SearchMeta {
	meta := domain.SearchMeta{
		Airlines:    []domain.AirlineRef{},
		StopsCounts: domain.NewStopsCounts(),
	}

	airlines := make(map[string]string)
	for i, o := range offers {
		price := o.Price.Total
		if i == 0 {
			meta.MinPrice = floatPtr(price)
			meta.MaxPrice = floatPtr(price)
		} else {
			if price < *meta.MinPrice {
				*meta.MinPrice = price
			}
			if price > *meta.MaxPrice {
				*meta.MaxPrice = price
			}
		}

		meta.StopsCounts.Add(o.Stops)

		for _, a := range o.Airlines {
			if a.Code == "" {
				continue
			}
			name := a.Name
			if name == "" {
				name = a.Code
			}
			if existing, ok := airlines[a.Code]; !ok || existing == a.Code {
				airlines[a.Code] = name
			}
		}
	}

	for code, name := range airlines {
		meta.Airlines = append(meta.Airlines, domain.AirlineRef{Code: code, Name: name})
	}
	sort.Slice(meta.Airlines, func(i, j int) bool {
		return meta.Airlines[i].Code < meta.Airlines[j].Code
	})
	return meta
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
