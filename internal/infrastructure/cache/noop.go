package cache

import (
	"context"
	"time"
)

// NoOpStore never stores anything; every read is a miss.
type NoOpStore struct{}

// NewNoOpStore creates a NoOpStore.
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Get implements Store.
func (NoOpStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set implements Store.
func (NoOpStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Close implements Store.
func (NoOpStore) Close() error {
	return nil
}

// Ensure interfaces are implemented.
var (
	_ Store = (*NoOpStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)
