package http

import "github.com/flight-search/skyscraper-flight-search/internal/domain"

// MsgAutocompleteDatasetError is reported when the airport dataset cannot be loaded.
const MsgAutocompleteDatasetError = "Autocomplete dataset error."

// PlacesResponseDTO is the body of the autocomplete endpoint.
type PlacesResponseDTO struct {
	Query   string                   `json:"query"`
	Results []domain.PlaceSuggestion `json:"results"`
	Error   string                   `json:"error,omitempty"`
}

// ToPlacesResponse converts autocomplete results to the response body.
func ToPlacesResponse(r *domain.PlaceResults) *PlacesResponseDTO {
	dto := &PlacesResponseDTO{Results: []domain.PlaceSuggestion{}}
	if r == nil {
		return dto
	}
	dto.Query = r.Query
	if r.Results != nil {
		dto.Results = r.Results
	}
	return dto
}

// PlacesErrorResponse builds the failure body: the query echo, no results and an error message.
func PlacesErrorResponse(query string) *PlacesResponseDTO {
	return &PlacesResponseDTO{
		Query:   query,
		Results: []domain.PlaceSuggestion{},
		Error:   MsgAutocompleteDatasetError,
	}
}
