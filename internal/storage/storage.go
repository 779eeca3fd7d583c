// Package storage defines the key-value interface the persistence adapter
// writes through. Values are opaque strings.
package storage

import "context"

// KV is a durable string key-value store.
// Backends live under internal/backend.
type KV interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Close releases the backend's resources.
	Close() error
}
