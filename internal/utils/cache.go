package utils

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps a cached value with its expiry.
type CacheItem[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Cache is a size-bounded LRU whose entries also expire after a TTL.
// A zero TTL disables expiry.
type Cache[K comparable, V any] struct {
	lruCache *lru.Cache[K, CacheItem[V]]
	ttl      time.Duration
	now      func() time.Time
}

func NewCache[K comparable, V any](size int, ttl time.Duration) (*Cache[K, V], error) {
	l, err := lru.New[K, CacheItem[V]](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Cache[K, V]{lruCache: l, ttl: ttl, now: time.Now}, nil
}

// Set stores data and restarts its TTL.
func (c *Cache[K, V]) Set(key K, data V) {
	item := CacheItem[V]{Data: data}
	if c.ttl > 0 {
		item.ExpiresAt = c.now().Add(c.ttl)
	}
	c.lruCache.Add(key, item)
}

// Get returns the value for key, or false if it is missing or expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.lruCache.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	if !val.ExpiresAt.IsZero() && c.now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		var zero V
		return zero, false
	}

	return val.Data, true
}

func (c *Cache[K, V]) Delete(key K) {
	c.lruCache.Remove(key)
}

// Purge drops every entry.
func (c *Cache[K, V]) Purge() {
	c.lruCache.Purge()
}

func (c *Cache[K, V]) Len() int {
	return c.lruCache.Len()
}
