package provider

import (
	"context"
	"time"
)

// Cache stores serialized responses under string keys with a TTL.
// A miss is reported as (nil, nil); callers treat any error as a miss
// and fall through to the source of truth.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
