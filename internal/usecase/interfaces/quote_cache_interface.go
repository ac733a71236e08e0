package interfaces

import (
	"context"
	"time"
)

// IQuoteCache abstracts the quick-quote cache (Redis in production).
//
// Get returns an empty string on a miss; a nil IQuoteCache disables caching
// entirely.
type IQuoteCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
