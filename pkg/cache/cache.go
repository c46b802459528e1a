// Package cache provides content-addressed memoization for plan results.
//
// Planning is deterministic, so a plan computed once for a given inventory
// and configuration never changes: results can be keyed by a hash of the
// inputs and replayed on later runs. The package offers an in-memory cache
// for long-lived processes and a null cache for one-shot runs or tests.
package cache

import "context"

// Cache stores serialized plan results keyed by content hash.
type Cache interface {
	// Get returns the cached data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, overwriting any existing entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the entry for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
