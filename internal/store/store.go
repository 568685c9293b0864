// internal/store/store.go
//
// Key-value blob persistence for the quiz server.
// The dictionary is saved as a single serialized value under a fixed key,
// mirroring the browser build's localStorage layout so exported state stays
// interchangeable between the two clients.
//
// Implementations:
//   - Memory (this package): map-backed, for tests and ephemeral runs.
//   - SQLite (this package): durable, single dictionary_blobs table.

package store

import "context"

// Blob is the persistence interface the dictionary saves through.
// Implementations may be backed by memory (tests), SQLite, Redis, etc.
type Blob interface {
	// Get retrieves the value stored under key.
	// ok is false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
