//go:build unit

package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staymarket/internal/pkg/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memoizes loader results", func(t *testing.T) {
		calls := 0
		store := settings.NewStore(func(_ context.Context, key string) (string, error) {
			calls++
			return "value-" + key, nil
		}, 16, time.Minute)

		for range 3 {
			v, err := store.Get(ctx, "currency")
			require.NoError(t, err)
			assert.Equal(t, "value-currency", v)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		calls := 0
		store := settings.NewStore(func(_ context.Context, _ string) (string, error) {
			calls++
			return "v", nil
		}, 16, time.Minute)

		_, err := store.Get(ctx, "k")
		require.NoError(t, err)
		store.Invalidate("k")
		_, err = store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("loader errors are not cached", func(t *testing.T) {
		fail := true
		store := settings.NewStore(func(_ context.Context, _ string) (string, error) {
			if fail {
				return "", errors.New("store down")
			}
			return "recovered", nil
		}, 16, time.Minute)

		_, err := store.Get(ctx, "k")
		require.Error(t, err)

		fail = false
		v, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "recovered", v)
	})

	t.Run("GetDefault falls back on error or empty", func(t *testing.T) {
		store := settings.NewStore(func(_ context.Context, _ string) (string, error) {
			return "", errors.New("store down")
		}, 16, time.Minute)

		assert.Equal(t, "USD", store.GetDefault(ctx, "currency", "USD"))
	})
}
