// Package storage caches parse results keyed by a digest of the raw
// message, so repeated webhook deliveries of the same commit skip the
// parser.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Store is a cache of parse results.
type Store interface {
	Get(ctx context.Context, key string) (map[string]string, bool, error)
	Set(ctx context.Context, key string, fields map[string]string) error
	Delete(ctx context.Context, key string) error
}

// Key derives the cache key for a raw commit message.
func Key(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
