package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New()
	c.Set("key", "value", -time.Second)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheOverwrite(t *testing.T) {
	c := New()
	c.Set("key", "first", time.Minute)
	c.Set("key", "second", time.Minute)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}
