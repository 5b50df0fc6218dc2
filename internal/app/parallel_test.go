package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoth(t *testing.T) {
	t.Run("returns both results", func(t *testing.T) {
		n, s, err := Both(context.Background(),
			func(context.Context) (int, error) { return 7, nil },
			func(context.Context) (string, error) { return "camera", nil },
		)

		require.NoError(t, err)
		assert.Equal(t, 7, n)
		assert.Equal(t, "camera", s)
	})

	t.Run("first error wins and cancels the sibling", func(t *testing.T) {
		boom := errors.New("boom")

		n, s, err := Both(context.Background(),
			func(context.Context) (int, error) { return 0, boom },
			func(ctx context.Context) (string, error) {
				<-ctx.Done()
				return "late", ctx.Err()
			},
		)

		require.ErrorIs(t, err, boom)
		assert.Zero(t, n)
		assert.Empty(t, s)
	})
}

func TestFanOut(t *testing.T) {
	t.Run("visits every item", func(t *testing.T) {
		var sum atomic.Int64

		err := FanOut(context.Background(), 4, []int{1, 2, 3, 4, 5, 6}, func(_ context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, int64(21), sum.Load())
	})

	t.Run("zero workers still runs", func(t *testing.T) {
		var calls atomic.Int32

		err := FanOut(context.Background(), 0, []string{"a", "b"}, func(context.Context, string) error {
			calls.Add(1)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("stops on error", func(t *testing.T) {
		boom := errors.New("boom")

		err := FanOut(context.Background(), 2, []int{1, 2, 3}, func(_ context.Context, n int) error {
			if n == 2 {
				return boom
			}

			return nil
		})

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "fan out")
	})
}
