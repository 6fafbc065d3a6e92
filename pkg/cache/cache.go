// Package cache stores rendered artifacts keyed by a content hash.
//
// Three backends share the [Cache] interface: [FileCache] for the CLI,
// [RedisCache] for sharing artifacts between machines or preview server
// replicas, and [NullCache] to disable caching. [Open] picks one from a URL.
// All implementations are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour
