package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values with a TTL. The job board listing is
// the only consumer today; callers treat a nil Cache as "run uncached".
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
