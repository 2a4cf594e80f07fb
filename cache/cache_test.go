package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, hit, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hit)

	value := []byte("frontier")
	require.NoError(t, c.Set(ctx, "a", value, time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("forever"), 0))
	value[0] = 'F'
	data, hit, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("frontier"), data)

	now = now.Add(2 * time.Minute)
	_, hit, _ = c.Get(ctx, "a")
	assert.False(t, hit)
	_, hit, _ = c.Get(ctx, "b")
	assert.True(t, hit)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Delete(ctx, "b"))
	_, hit, _ = c.Get(ctx, "b")
	assert.False(t, hit)
	require.NoError(t, c.Close())
}

func TestMemoryCacheSweep(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("key-%v", i), []byte("x"), time.Minute))
	}
	assert.Equal(t, 100, c.Len())

	// expired keys are dropped without being read again
	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "fresh", []byte("y"), time.Minute))
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheLimit(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)
	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Set(ctx, "a", []byte("3"), 0))
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Set(ctx, "c", []byte("4"), 0))
	assert.Equal(t, 2, c.Len())
	_, hit, _ := c.Get(ctx, "b")
	assert.False(t, hit)
	data, hit, _ := c.Get(ctx, "a")
	assert.True(t, hit)
	assert.Equal(t, []byte("3"), data)
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	require.NoError(t, c.Set(ctx, "a", []byte("x"), time.Hour))
	data, hit, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
}

func TestHashKey(t *testing.T) {
	a := HashKey("alt", "running", 4, []int{1, 2})
	assert.Equal(t, a, HashKey("alt", "running", 4, []int{1, 2}))
	assert.NotEqual(t, a, HashKey("alt", "running", 5, []int{1, 2}))
	assert.Len(t, a, len("alt:")+64)
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, c)

	c, err = New(ctx, Options{Type: "none"})
	require.NoError(t, err)
	assert.IsType(t, &NullCache{}, c)

	_, err = New(ctx, Options{Type: "memcached"})
	assert.Error(t, err)

	_, err = New(ctx, Options{Type: "redis", Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

// Runs against the server in MOSP_TEST_REDIS if set.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("MOSP_TEST_REDIS")
	if addr == "" {
		t.Skip("MOSP_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, Options{Addr: addr, Prefix: "mosp-test:" + uuid.NewString() + ":"})
	require.NoError(t, err)
	defer c.Close()

	_, hit, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, c.Set(ctx, "a", []byte("frontier"), time.Minute))
	data, hit, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("frontier"), data)
	require.NoError(t, c.Delete(ctx, "a"))
	_, hit, err = c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hit)
}
