package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Expired keys are dropped lazily on read.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	clock timeutil.Clock
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore(clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryStore{
		items: make(map[string]memoryItem),
		clock: clock,
	}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !item.expiresAt.IsZero() && !m.clock.Now().Before(item.expiresAt) {
		m.mu.Lock()
		if current, still := m.items[key]; still && current.expiresAt.Equal(item.expiresAt) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return item.value, true, nil
}

// Set implements Store. A non-positive ttl keeps the value until overwritten.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = m.clock.Now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored keys, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}
