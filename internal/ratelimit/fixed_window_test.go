package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc-dev/snipit/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindow_Redis(t *testing.T) {
	client := testutil.StartRedis(t)
	ctx := context.Background()

	t.Run("allows up to limit", func(t *testing.T) {
		limiter := NewFixedWindow(client, 3, time.Minute)

		for i := range 3 {
			allowed, err := limiter.Allow(ctx, "1.1.1.1")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d must pass", i+1)
		}

		allowed, err := limiter.Allow(ctx, "1.1.1.1")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewFixedWindow(client, 1, time.Minute)

		first, err := limiter.Allow(ctx, "2.2.2.2")
		require.NoError(t, err)
		other, err := limiter.Allow(ctx, "3.3.3.3")
		require.NoError(t, err)

		assert.True(t, first)
		assert.True(t, other)
	})

	t.Run("window expires", func(t *testing.T) {
		limiter := NewFixedWindow(client, 1, 200*time.Millisecond)

		allowed, err := limiter.Allow(ctx, "4.4.4.4")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "4.4.4.4")
		require.NoError(t, err)
		assert.False(t, allowed)

		assert.Eventually(t, func() bool {
			allowed, err := limiter.Allow(ctx, "4.4.4.4")
			return err == nil && allowed
		}, 2*time.Second, 50*time.Millisecond)
	})

	t.Run("concurrent callers share the budget", func(t *testing.T) {
		limiter := NewFixedWindow(client, 10, time.Minute)

		var (
			wg      sync.WaitGroup
			allowed atomic.Int64
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := limiter.Allow(ctx, "5.5.5.5")
				if assert.NoError(t, err) && ok {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(10), allowed.Load())
	})
}

func TestFixedWindow_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	allowed, err := NewFixedWindow(client, 1, time.Minute).Allow(context.Background(), "key")

	assert.Error(t, err)
	assert.False(t, allowed)
}
