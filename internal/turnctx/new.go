// Package turnctx keeps the previous turn of each chat so callers can hand
// it to the router, and rate limits routing per chat. It lives beside the
// engine: the router itself never reads or writes it.
package turnctx

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is an in-memory, size and age bounded turn store.
type Store struct {
	mu      sync.Mutex // serialises read-modify-write of turns
	turns   *expirable.LRU[string, Turn]
	limiter *rateLimiter
	now     func() time.Time
}

// New creates a Store. Zero config fields take the package defaults.
func New(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxChats <= 0 {
		cfg.MaxChats = DefaultMaxChats
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}

	return &Store{
		turns:   expirable.NewLRU[string, Turn](cfg.MaxChats, nil, cfg.TTL),
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.MaxChats),
		now:     time.Now,
	}
}
