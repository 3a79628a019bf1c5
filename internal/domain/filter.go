package domain

// SortOption defines the available orderings for offers.
type SortOption string

// Available sort options.
const (
	// SortCheapest sorts by total price ascending
	SortCheapest SortOption = "cheapest"

	// SortShortest sorts by total duration ascending
	SortShortest SortOption = "shortest"

	// SortLeastStops sorts by stop count ascending
	SortLeastStops SortOption = "least_stops"
)

// IsValid checks if the sort option is a known value.
// Unknown values are not an error: they leave the upstream order untouched.
func (s SortOption) IsValid() bool {
	switch s {
	case SortCheapest, SortShortest, SortLeastStops:
		return true
	default:
		return false
	}
}

// OfferFilter holds the optional offer filters of a search.
type OfferFilter struct {
	// MaxStops filters out offers with more stops than this value
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int

	// AllowedAirlines keeps only offers whose airline codes are all listed.
	// Empty slice means no filtering by airline.
	AllowedAirlines []string
}

// IsEmpty returns true if no filters are set.
func (f *OfferFilter) IsEmpty() bool {
	return f == nil || (f.MaxStops == nil && len(f.AllowedAirlines) == 0)
}

// Matches reports whether an offer passes every filter.
// An offer with no airline codes never passes an airline filter.
func (f *OfferFilter) Matches(o *Offer) bool {
	if f.IsEmpty() {
		return true
	}
	if f.MaxStops != nil && o.Stops > *f.MaxStops {
		return false
	}
	if len(f.AllowedAirlines) == 0 {
		return true
	}

	allowed := make(map[string]struct{}, len(f.AllowedAirlines))
	for _, code := range f.AllowedAirlines {
		allowed[code] = struct{}{}
	}
	codes := o.AirlineCodes()
	if len(codes) == 0 {
		return false
	}
	for _, code := range codes {
		if _, ok := allowed[code]; !ok {
			return false
		}
	}
	return true
}
