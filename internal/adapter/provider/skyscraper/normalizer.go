package skyscraper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// offerIDHexLength is the number of hex characters of the vendor-id digest kept in public ids.
const offerIDHexLength = 16

// Batch is the outcome of normalizing one list response.
type Batch struct {
	// Offers are the normalized offers in upstream order
	Offers []domain.Offer

	// StopsCounts is the stop histogram of Offers
	StopsCounts domain.StopsCounts

	// Airlines are the distinct airline codes of Offers, sorted
	Airlines []string

	// Excluded counts records dropped because no segment could be read under active filters
	Excluded int
}

// normalizer builds canonical offers from raw upstream records.
type normalizer struct {
	query    *domain.SearchQuery
	currency string
}

func newNormalizer(query *domain.SearchQuery, currency string) *normalizer {
	return &normalizer{query: query, currency: currency}
}

// normalizeAll converts every record, in order, and keeps the bookkeeping aggregates.
func (n *normalizer) normalizeAll(records []record) Batch {
	batch := Batch{
		Offers:      make([]domain.Offer, 0, len(records)),
		StopsCounts: domain.NewStopsCounts(),
	}
	airlines := make(map[string]struct{})

	for idx, r := range records {
		offer, ok := n.normalize(r, idx)
		if !ok {
			batch.Excluded++
			continue
		}
		batch.StopsCounts.Add(offer.Stops)
		for _, code := range offer.AirlineCodes() {
			airlines[code] = struct{}{}
		}
		batch.Offers = append(batch.Offers, offer)
	}

	batch.Airlines = make([]string, 0, len(airlines))
	for code := range airlines {
		batch.Airlines = append(batch.Airlines, code)
	}
	sort.Strings(batch.Airlines)
	return batch
}

// normalize builds one offer. It reports false when the record has no readable
// segment while a stop or airline filter is active, since neither can be judged.
func (n *normalizer) normalize(r record, idx int) (domain.Offer, bool) {
	segments := n.segments(r)
	if len(segments) == 0 && n.query.HasOfferFilters() {
		return domain.Offer{}, false
	}

	totalDuration := 0
	for _, s := range segments {
		totalDuration += s.DurationMinutes
	}
	if vendorDuration, ok := intValue(r["durationMinutes"]); ok {
		totalDuration = vendorDuration
	}

	offer := domain.Offer{
		ID: publicOfferID(vendorID(r, idx)),
		Price: domain.Price{
			Total:    extractOfferPrice(r),
			Currency: n.currency,
		},
		Stops:           domain.StopsFromSegments(len(segments)),
		DurationMinutes: totalDuration,
		Airlines:        collectAirlines(segments),
		Segments:        segments,
	}
	if len(segments) > 0 {
		offer.DepartAt = segments[0].DepartAt
		offer.ArriveAt = segments[len(segments)-1].ArriveAt
	}
	return offer, true
}

// segments reads the record's segments, falling back to legs[].segments[].
func (n *normalizer) segments(r record) []domain.Segment {
	raw := recordList(r["segments"])
	if len(raw) == 0 {
		for _, leg := range recordList(r["legs"]) {
			raw = append(raw, recordList(leg["segments"])...)
		}
	}

	out := make([]domain.Segment, 0, len(raw))
	for _, s := range raw {
		out = append(out, n.segment(s))
	}
	return out
}

func (n *normalizer) segment(s record) domain.Segment {
	from := firstString(s, segmentFromProbes)
	if from == "" {
		from = n.query.Origin
	}
	to := firstString(s, segmentToProbes)
	if to == "" {
		to = n.query.Destination
	}

	airline := ExtractAirline(s)
	duration, ok := intValue(s["durationMinutes"])
	if !ok || duration < 0 {
		duration = 0
	}

	departAt, _ := ComposeTimestamp(s["departureDate"], s["departureTime"])
	arriveAt, _ := ComposeTimestamp(s["arrivalDate"], s["arrivalTime"])

	return domain.Segment{
		From:            from,
		To:              to,
		DepartAt:        departAt,
		ArriveAt:        arriveAt,
		Airline:         airline.Code,
		AirlineName:     airline.Name,
		FlightNumber:    airline.FlightNumber,
		DurationMinutes: duration,
	}
}

// collectAirlines returns the distinct segment airlines sorted by code.
// A code without a display name is named after itself.
func collectAirlines(segments []domain.Segment) []domain.AirlineRef {
	names := make(map[string]string)
	for _, s := range segments {
		if s.Airline == "" {
			continue
		}
		if existing, ok := names[s.Airline]; !ok || existing == s.Airline {
			name := s.AirlineName
			if name == "" {
				name = s.Airline
			}
			names[s.Airline] = name
		}
	}

	out := make([]domain.AirlineRef, 0, len(names))
	for code, name := range names {
		out = append(out, domain.AirlineRef{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// vendorID returns the vendor's identifier for the record or a positional fallback.
func vendorID(r record, idx int) string {
	if id := firstString(r, vendorIDProbes); id != "" {
		return id
	}
	return fmt.Sprintf("idx_%d", idx)
}

// publicOfferID hashes a vendor id into a short public id. Vendor tokens can be
// several kilobytes and are never exposed.
func publicOfferID(vendorID string) string {
	sum := sha256.Sum256([]byte(vendorID))
	return domain.OfferIDPrefix + hex.EncodeToString(sum[:])[:offerIDHexLength]
}
