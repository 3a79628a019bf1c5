package domain

import (
	"context"
	"sort"
	"strings"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// DefaultProviderName is used when no provider is configured.
const DefaultProviderName = "skyscraper"

// FlightProvider is one upstream flight-search vendor.
// Implementations normalize the vendor's payloads into canonical offers and price points.
type FlightProvider interface {
	// Name returns the provider's canonical name.
	Name() string

	// Ready reports configuration problems (e.g. a missing credential).
	// It must not perform any I/O.
	Ready() error

	// SearchOffers fetches and normalizes the offer list for the query.
	// Records that cannot be trusted under the query's filters are already excluded.
	SearchOffers(ctx context.Context, query *SearchQuery) ([]Offer, error)

	// PriceGraph fetches the multi-day price graph around the query dates.
	PriceGraph(ctx context.Context, query *SearchQuery) ([]PricePoint, error)

	// QuoteHistory fetches the quote-based price history used as the last fallback.
	QuoteHistory(ctx context.Context, query *SearchQuery) ([]PricePoint, error)
}

// ProviderRegistry maps configured provider names to implementations.
// Names are matched case-insensitively and through an alias table.
type ProviderRegistry struct {
	mu             sync.RWMutex
	providers      map[string]FlightProvider
	aliases        map[string]string
	notImplemented map[string]struct{}
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers:      make(map[string]FlightProvider),
		aliases:        make(map[string]string),
		notImplemented: make(map[string]struct{}),
	}
}

// Register adds a provider under its own name, replacing any previous one.
func (r *ProviderRegistry) Register(p FlightProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[canonicalName(p.Name())] = p
}

// Alias makes alias resolve to the provider registered as target.
func (r *ProviderRegistry) Alias(alias, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[canonicalName(alias)] = canonicalName(target)
}

// Reserve records a provider name that is known but has no implementation.
func (r *ProviderRegistry) Reserve(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notImplemented[canonicalName(name)] = struct{}{}
}

// Get returns the provider for name (or one of its aliases), or nil.
func (r *ProviderRegistry) Get(name string) FlightProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[r.resolveLocked(name)]
}

// Resolve returns the provider selected by a configuration string.
// An empty name selects DefaultProviderName.
func (r *ProviderRegistry) Resolve(name string) (FlightProvider, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultProviderName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	key := r.resolveLocked(name)
	if p, ok := r.providers[key]; ok {
		return p, nil
	}
	if _, ok := r.notImplemented[key]; ok {
		return nil, NewProviderNotImplementedError(key)
	}
	return nil, NewUnknownProviderError(key)
}

// GetAll returns every registered provider sorted by name.
func (r *ProviderRegistry) GetAll() []FlightProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.namesLocked()
	out := make([]FlightProvider, 0, len(names))
	for _, n := range names {
		out = append(out, r.providers[n])
	}
	return out
}

// Names returns the registered provider names, sorted.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *ProviderRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *ProviderRegistry) resolveLocked(name string) string {
	key := canonicalName(name)
	if target, ok := r.aliases[key]; ok {
		return target
	}
	return key
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
