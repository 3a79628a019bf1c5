package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/skyscraper-flight-search/internal/domain"
	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/metrics"
)

// Curve override thresholds.
const (
	minOverridePoints   = 2
	denseOverridePoints = 5
)

// PriceHistory is a price series with its provenance.
type PriceHistory struct {
	Points      []domain.PricePoint
	Source      domain.PriceHistorySource
	FilterAware bool

	// CacheAgeSeconds and CacheTTLSeconds are set when Points came from the curve cache
	CacheAgeSeconds *int
	CacheTTLSeconds *int
}

// IsEmpty reports whether the series has no points.
func (h *PriceHistory) IsEmpty() bool {
	return len(h.Points) == 0
}

// applyTo copies the series and its provenance into meta.
func (h *PriceHistory) applyTo(meta *domain.SearchMeta) {
	meta.PriceHistory = h.Points
	meta.PriceHistorySource = h.Source
	meta.PriceHistoryFilterAware = h.FilterAware
	meta.PriceHistoryCacheAgeSeconds = h.CacheAgeSeconds
	meta.PriceHistoryCacheTTLSeconds = h.CacheTTLSeconds
	meta.PriceHistoryPoints = len(h.Points)
}

// PriceHistoryReconciler merges the price graph, the offer-derived curve and the quote
// fallback into one series. Sources are applied in that fixed order; every upstream
// failure is logged and treated as "no data".
type PriceHistoryReconciler struct {
	provider domain.FlightProvider
	curves   *curveCache
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// GraphStage returns the price graph for q, from the curve cache when possible.
// A fetched non-empty graph is written back to the curve cache.
func (r *PriceHistoryReconciler) GraphStage(ctx context.Context, q *domain.SearchQuery) PriceHistory {
	if cached, ok := r.curves.Get(ctx, q); ok {
		return PriceHistory{
			Points:          cached.Points,
			Source:          domain.PriceHistoryGoogleGraph,
			CacheAgeSeconds: intPtr(cached.AgeSeconds),
			CacheTTLSeconds: r.curves.ttlSeconds(),
		}
	}

	points, err := r.provider.PriceGraph(ctx, q)
	if err != nil {
		r.log.Warn().Err(err).Str("stage", "price_graph").Msg("price history stage failed")
		return PriceHistory{}
	}
	if len(points) == 0 {
		return PriceHistory{}
	}

	r.curves.Set(ctx, q, points)
	return PriceHistory{
		Points: points,
		Source: domain.PriceHistoryGoogleGraph,
	}
}

// Reconcile applies the offer-derived curve and the quote fallback on top of graph.
// preLimit is the filtered, sorted offer list before the result limit.
func (r *PriceHistoryReconciler) Reconcile(ctx context.Context, q *domain.SearchQuery, graph PriceHistory, preLimit []domain.Offer) PriceHistory {
	history := graph

	offerCurve := BuildOfferCurve(preLimit)
	if ShouldOverrideCurve(history.Points, offerCurve) {
		history = PriceHistory{
			Points:      offerCurve,
			Source:      domain.PriceHistoryOffers,
			FilterAware: true,
		}
	}

	if history.IsEmpty() {
		history = r.quoteStage(ctx, q)
	}

	if history.IsEmpty() {
		history = PriceHistory{Points: []domain.PricePoint{}, Source: domain.PriceHistoryNone}
	}
	domain.SortPricePoints(history.Points)

	r.metrics.PriceHistorySelected(string(history.Source))
	r.log.Debug().
		Str("source", string(history.Source)).
		Int("points", len(history.Points)).
		Bool("filter_aware", history.FilterAware).
		Msg("price history selected")
	return history
}

func (r *PriceHistoryReconciler) quoteStage(ctx context.Context, q *domain.SearchQuery) PriceHistory {
	points, err := r.provider.QuoteHistory(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrMissingEntityID) {
			r.log.Debug().Err(err).Str("stage", "quotes").Msg("quote fallback skipped")
		} else {
			r.log.Warn().Err(err).Str("stage", "quotes").Msg("price history stage failed")
		}
		return PriceHistory{}
	}
	if len(points) == 0 {
		return PriceHistory{}
	}
	return PriceHistory{
		Points: points,
		Source: domain.PriceHistorySearchEverywhere,
	}
}

// BuildOfferCurve returns, per departure date, the lowest total price among offers,
// sorted by date. Offers without a departure date are skipped.
func BuildOfferCurve(offers []domain.Offer) []domain.PricePoint {
	points := make([]domain.PricePoint, 0, len(offers))
	for i := range offers {
		date, ok := offers[i].DepartDate()
		if !ok {
			continue
		}
		points = append(points, domain.PricePoint{Date: date, Price: offers[i].Price.Total})
	}
	return domain.LowestPerDate(points)
}

// ShouldOverrideCurve decides whether the offer-derived curve replaces existing.
// A curve with fewer than two points never wins; with no existing curve or at least five
// points it always wins; otherwise it must be longer and span more days.
func ShouldOverrideCurve(existing, offerCurve []domain.PricePoint) bool {
	if len(offerCurve) < minOverridePoints {
		return false
	}
	if len(existing) == 0 {
		return true
	}
	if len(offerCurve) >= denseOverridePoints {
		return true
	}
	return len(offerCurve) > len(existing) && daySpan(offerCurve) > daySpan(existing)
}

// daySpan returns the number of days between the earliest and latest dated point.
// Unparseable dates are ignored.
func daySpan(points []domain.PricePoint) int {
	var first, last time.Time
	for _, p := range points {
		d, err := time.Parse(domain.DateLayout, p.Date)
		if err != nil {
			continue
		}
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}
	if first.IsZero() {
		return 0
	}
	return int(last.Sub(first).Hours() / 24)
}
