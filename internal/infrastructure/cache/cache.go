// Package cache provides the shared key-value store behind the response, price-curve and
// airport autocomplete caches. Values are opaque bytes written with a TTL; each write
// replaces its key wholesale.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Store is an atomic get/set key-value contract with per-key TTL.
type Store interface {
	// Get returns the value for key and whether it was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl, replacing any previous value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases the store's resources.
	Close() error
}

// Entry is the envelope written for every cached payload.
type Entry[T any] struct {
	Payload  T         `json:"payload"`
	CachedAt time.Time `json:"cachedAt"`
}

// Fingerprint derives a fixed-size key from the JSON encoding of payload.
// encoding/json writes struct fields in declaration order and map keys sorted,
// so equal payloads always yield equal keys.
func Fingerprint(prefix string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", prefix, err)
	}
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// GetEntry reads and decodes an Entry. Undecodable values are reported as misses.
func GetEntry[T any](ctx context.Context, s Store, key string) (Entry[T], bool, error) {
	var entry Entry[T]

	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return entry, false, err
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, false, nil
	}
	return entry, true, nil
}

// SetEntry encodes payload with its write time and stores it for ttl.
func SetEntry[T any](ctx context.Context, s Store, key string, payload T, cachedAt time.Time, ttl time.Duration) error {
	data, err := json.Marshal(Entry[T]{Payload: payload, CachedAt: cachedAt})
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	return s.Set(ctx, key, data, ttl)
}
