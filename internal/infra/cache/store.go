package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value store for cached API responses. Implementations
// are best-effort: a broken cache degrades to fetching upstream every time.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
