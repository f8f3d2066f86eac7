package ucmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig(t *testing.T) {
	t.Run("nil config defaults to memory", func(t *testing.T) {
		cache, err := NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryCache{}, cache)
	})

	t.Run("memory", func(t *testing.T) {
		cache, err := NewCacheFromConfig(&CacheConfig{
			Type:   CacheTypeMemory,
			Memory: &MemoryCacheConfig{MaxSize: 5},
		})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		cache, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNATS})
		assert.ErrorIs(t, err, ErrNATSConfigRequired)
	})

	t.Run("chain", func(t *testing.T) {
		cache, err := NewCacheFromConfig(&CacheConfig{
			Type: CacheTypeChain,
			Chain: []*CacheConfig{
				{Type: CacheTypeMemory, Memory: &MemoryCacheConfig{MaxSize: 5}},
				{Type: CacheTypeNone},
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &CacheChain{}, cache)
	})

	t.Run("chain without layers", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeChain})
		assert.ErrorIs(t, err, ErrChainConfigRequired)
	})

	t.Run("chain propagates layer errors", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{
			Type: CacheTypeChain,
			Chain: []*CacheConfig{
				{Type: CacheTypeNATS},
			},
		})
		assert.ErrorIs(t, err, ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{Type: "redis"})
		assert.ErrorIs(t, err, ErrUnsupportedCacheType)
	})
}
