// Package cache stores finished runs and rendered artifacts so repeated
// invocations with the same options skip the simulation.
//
// A run is deterministic once its seed is fixed, so the final snapshot can be
// addressed by a key derived from every simulation option. Artifacts are
// addressed by the snapshot's content hash plus the render options.
//
// Three backends implement [Cache]:
//   - [FileCache] for the CLI (one JSON file per entry under the XDG cache dir)
//   - [RedisCache] for shared deployments of the HTTP driver
//   - [NullCache] when caching is disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Entry lifetimes.
const (
	TTLRun      = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
