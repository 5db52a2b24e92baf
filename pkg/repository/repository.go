package repository

import "context"

// Storage is the key-value boundary the prayer book persists through.
// Values are opaque strings; the store serializes the whole collection
// into a single key on every mutation.
type Storage interface {
	// Get returns the value for key. The second return value is false
	// when the key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
