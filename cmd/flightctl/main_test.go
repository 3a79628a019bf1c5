package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/flight-search/skyscraper-flight-search/internal/bootstrap"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

type fakeSearch struct {
	last *domain.SearchQuery
	err  error
}

func (f *fakeSearch) Search(_ context.Context, q *domain.SearchQuery) (*domain.SearchResult, error) {
	f.last = q
	if f.err != nil {
		return nil, f.err
	}
	result := domain.NewSearchResult(q.Echo(q.ResolveCurrency("USD")), []domain.Offer{{
		ID:    "off_0011223344556677",
		Price: domain.Price{Total: 199, Currency: "USD"},
	}}, domain.SearchMeta{})
	return &result, nil
}

type fakePlaces struct {
	limit int
}

func (f *fakePlaces) Autocomplete(_ context.Context, query string, limit int) (*domain.PlaceResults, error) {
	f.limit = limit
	return &domain.PlaceResults{
		Query:   query,
		Results: []domain.PlaceSuggestion{{Code: "CDG", Label: "Paris - Charles de Gaulle - FR (CDG)"}},
	}, nil
}

// run executes the CLI with a fake service and returns stdout.
func run(t *testing.T, search *fakeSearch, places *fakePlaces, args ...string) (string, error) {
	t.Helper()

	orig := newApp
	t.Cleanup(func() { newApp = orig })
	newApp = func(*cobra.Command) (*bootstrap.App, error) {
		return &bootstrap.App{Search: search, Places: places}, nil
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSearchCommand_JSON(t *testing.T) {
	search := &fakeSearch{}

	out, err := run(t, search, &fakePlaces{},
		"search", "jfk", "lhr", "2025-06-01",
		"--return", "2025-06-10", "--sort", "cheapest", "--max-stops", "1",
		"--airlines", "ba, aa", "--limit", "5", "--currency", "eur", "--no-cache")
	require.NoError(t, err)

	q := search.last
	require.NotNil(t, q)
	assert.Equal(t, "JFK", q.Origin)
	assert.Equal(t, "LHR", q.Destination)
	assert.Equal(t, "2025-06-10", q.ReturnDate)
	assert.Equal(t, domain.SortCheapest, q.Sort)
	require.NotNil(t, q.MaxStops)
	assert.Equal(t, 1, *q.MaxStops)
	require.NotNil(t, q.Limit)
	assert.Equal(t, 5, *q.Limit)
	assert.Equal(t, []string{"BA", "AA"}, q.AllowedAirlines)
	assert.Equal(t, "EUR", q.Currency)
	assert.True(t, q.BypassCache)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Offers, 1)
	assert.Equal(t, "EUR", result.Query.Currency)
}

func TestSearchCommand_DefaultsLeaveFiltersUnset(t *testing.T) {
	search := &fakeSearch{}

	_, err := run(t, search, &fakePlaces{}, "search", "JFK", "LHR", "2025-06-01")
	require.NoError(t, err)

	assert.Nil(t, search.last.Limit)
	assert.Nil(t, search.last.MaxStops)
	assert.Empty(t, search.last.AllowedAirlines)
	assert.Equal(t, domain.CabinEconomy, search.last.Cabin)
	assert.Equal(t, 1, search.last.Adults)
}

func TestSearchCommand_YAMLUsesJSONFieldNames(t *testing.T) {
	out, err := run(t, &fakeSearch{}, &fakePlaces{}, "search", "JFK", "LHR", "2025-06-01", "-o", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	meta, ok := doc["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "none", meta["priceHistorySource"])
	assert.Contains(t, meta, "stopsCounts")
}

func TestSearchCommand_ValidationError(t *testing.T) {
	search := &fakeSearch{}

	_, err := run(t, search, &fakePlaces{}, "search", "JFK", "JFK", "2025-06-01", "--adults", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adults:")
	assert.Contains(t, err.Error(), "destination: Destination must be different from origin.")
	assert.Nil(t, search.last)
}

func TestSearchCommand_ProviderError(t *testing.T) {
	search := &fakeSearch{err: errors.New("upstream down")}

	_, err := run(t, search, &fakePlaces{}, "search", "JFK", "LHR", "2025-06-01")
	require.Error(t, err)
	assert.Equal(t, "upstream down", err.Error())
}

func TestSearchCommand_UnsupportedFormat(t *testing.T) {
	_, err := run(t, &fakeSearch{}, &fakePlaces{}, "search", "JFK", "LHR", "2025-06-01", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPlacesCommand(t *testing.T) {
	places := &fakePlaces{}

	out, err := run(t, &fakeSearch{}, places, "places", "paris", "--limit", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, places.limit)
	assert.JSONEq(t, `{"query":"paris","results":[{"code":"CDG","label":"Paris - Charles de Gaulle - FR (CDG)","city":"","country":"","airportName":""}]}`, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, &fakeSearch{}, &fakePlaces{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
