// Package cache stores rendered artifacts keyed by graph content and render
// options.
//
// Three backends implement [Cache]:
//   - [NullCache] disables caching
//   - [FileCache] keeps entries under a local directory (CLI default)
//   - [RedisCache] shares entries between server replicas
//
// Keys are produced by a [Keyer] from a [GraphHash] and [RenderKeyOpts], so
// two structurally identical graphs share entries regardless of where they
// came from.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// A miss is reported as (nil, false, nil), never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKeyOpts are the render options that change an artifact's bytes.
type RenderKeyOpts struct {
	Mode     string `json:"mode"`
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	ArtifactKey(graphHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:" followed by the hash of graphHash and opts.
func (DefaultKeyer) ArtifactKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
