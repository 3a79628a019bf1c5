// Package provider wires the concrete flight providers into a domain.ProviderRegistry.
package provider

import (
	"context"
	"errors"

	"github.com/flight-search/skyscraper-flight-search/internal/adapter/provider/skyscraper"
	"github.com/flight-search/skyscraper-flight-search/internal/domain"
)

// ReservedProviders are recognized names without an implementation.
var ReservedProviders = []string{"amadeus"}

// NewRegistry registers the Sky-Scraper adapter with its aliases and reserves the
// names of providers that are known but not implemented.
func NewRegistry(sky *skyscraper.Adapter) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()
	registry.Register(sky)
	for _, alias := range skyscraper.Aliases {
		registry.Alias(alias, skyscraper.ProviderName)
	}
	for _, name := range ReservedProviders {
		registry.Reserve(name)
	}
	return registry
}

// Select resolves the configured provider. A name that is known but not implemented
// still yields a provider so the service can start; every search through it fails
// with the not-implemented error. Unknown names are returned as errors.
func Select(registry *domain.ProviderRegistry, name string) (domain.FlightProvider, error) {
	p, err := registry.Resolve(name)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, domain.ErrProviderNotImplemented) {
		pe, _ := domain.AsProviderError(err)
		return &unavailable{name: pe.Provider, err: err}, nil
	}
	return nil, err
}

// unavailable stands in for a provider without an implementation.
type unavailable struct {
	name string
	err  error
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) Ready() error { return u.err }

func (u *unavailable) SearchOffers(context.Context, *domain.SearchQuery) ([]domain.Offer, error) {
	return nil, u.err
}

func (u *unavailable) PriceGraph(context.Context, *domain.SearchQuery) ([]domain.PricePoint, error) {
	return nil, u.err
}

func (u *unavailable) QuoteHistory(context.Context, *domain.SearchQuery) ([]domain.PricePoint, error) {
	return nil, u.err
}
