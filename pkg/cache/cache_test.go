package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := NewLRUCache[string, int](2, "test_get_set")
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.Equal(t, float64(1), testutil.ToFloat64(lookupsCounter.WithLabelValues("test_get_set", "hit")))
	require.Equal(t, float64(1), testutil.ToFloat64(lookupsCounter.WithLabelValues("test_get_set", "miss")))
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[string, int](2, "test_evict")
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, c.Capacity())
}

func TestCache_TTL(t *testing.T) {
	short := NewLRUCache[int, string](2, "test_ttl_short", WithTTL(time.Millisecond))
	long := NewLRUCache[int, string](2, "test_ttl_long", WithTTL(time.Hour))
	short.Set(1, "short")
	long.Set(1, "long")
	time.Sleep(10 * time.Millisecond)

	_, ok := short.Get(1)
	require.False(t, ok)
	v, ok := long.Get(1)
	require.True(t, ok)
	require.Equal(t, "long", v)
}

func TestCache_Delete(t *testing.T) {
	c := NewLRUCache[int, int](2, "test_delete")
	c.Set(1, 1)
	c.Delete(1)
	_, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}
