// Package metadata is a small key/value store in the client cache. It keeps
// the last known settings, the category list and the time of the last
// successful sync.
package metadata

import (
	"context"
)

// Keys used by the client.
const (
	KeySettings   = "settings"
	KeyCategories = "categories"
	KeyLastSync   = "last_sync"
)

type Repository interface {
	// Get returns nil, nil when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Clear drops every key.
	Clear(ctx context.Context) error
}
