package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := Open(ctx, &config.StoreConfig{Driver: config.DriverMemory}, discard())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		assert.Equal(t, "memory", s.Name())
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.StoreConfig{
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "q.db")},
		}

		s, err := Open(ctx, cfg, discard())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		assert.Equal(t, "sqlite", s.Name())
		require.NoError(t, s.Check(ctx))
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(ctx, &config.StoreConfig{Driver: "cassandra"}, discard())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cassandra")
	})
}
