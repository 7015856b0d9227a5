package cache

import (
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookupsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chatpay_cache_lookups_total",
		Help: "Cache lookups by cache name and result",
	},
	[]string{
		"name",
		"result",
	},
)

// Cache is a bounded LRU cache safe for concurrent use. Lookups are counted under name.
type Cache[K comparable, V any] struct {
	cache    *cache.Cache[K, V]
	name     string
	capacity int
	ttl      time.Duration
}

type Option func(o *options)

type options struct {
	ttl time.Duration
}

// WithTTL makes every entry expire ttl after it was set.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

func NewLRUCache[K comparable, V any](capacity int, name string, opts ...Option) *Cache[K, V] {
	o := &options{}
	for i := range opts {
		opts[i](o)
	}
	return &Cache[K, V]{
		cache:    cache.New(cache.AsLRU[K, V](lru.WithCapacity(capacity))),
		name:     name,
		capacity: capacity,
		ttl:      o.ttl,
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.cache.Get(key)
	if ok {
		lookupsCounter.WithLabelValues(c.name, "hit").Inc()
		return val, ok
	}
	lookupsCounter.WithLabelValues(c.name, "miss").Inc()
	return val, ok
}

func (c *Cache[K, V]) Set(key K, val V) {
	if c.ttl > 0 {
		c.cache.Set(key, val, cache.WithExpiration(c.ttl))
		return
	}
	c.cache.Set(key, val)
}

func (c *Cache[K, V]) Delete(key K) {
	c.cache.Delete(key)
}

// Len returns the number of entries, including expired ones not evicted yet.
func (c *Cache[K, V]) Len() int {
	return len(c.cache.Keys())
}

func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}
