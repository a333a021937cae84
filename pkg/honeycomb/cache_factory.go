package honeycomb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/constants"
)

// CacheType selects the cache backend.
type CacheType string

// Cache backend types.
const (
	// CacheTypeMemory is an in-process cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS is a NATS JetStream KV cache shared across processes.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for cache construction.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
)

// CacheConfig configures the optional metadata cache.
type CacheConfig struct {
	// Type is the cache backend type.
	Type CacheType

	// MaxSize bounds the memory cache. Zero uses the default.
	MaxSize int

	// TTL is how long entries stay valid. Zero uses the default.
	TTL time.Duration

	// NATS configures the NATS backend; required when Type is CacheTypeNATS.
	NATS *NATSKVConfig
}

// EntryTTL returns the configured TTL or the default.
func (c *CacheConfig) EntryTTL() time.Duration {
	if c == nil || c.TTL <= 0 {
		return constants.DefaultCacheTTL
	}

	return c.TTL
}

// NewCacheFromConfig creates a cache backend from configuration. A nil
// config disables caching.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		return NewNoOpCache(), nil
	}

	switch config.Type {
	case CacheTypeMemory:
		return NewMemoryCache(config.MaxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// NoOpCache is a cache that stores nothing.
type NoOpCache struct{}

// NewNoOpCache creates a no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always reports false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
