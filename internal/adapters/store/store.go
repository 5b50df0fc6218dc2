// Package store selects the quotation store named by configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/memory"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/mongo"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/postgres"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/sqlite"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// Open connects the configured driver. The caller owns the returned store and must Close it.
func Open(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (ports.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		s   ports.Store
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store, quotations are lost on restart")
		s = memory.New()

	case config.DriverPostgres:
		var postgresStore *postgres.Store
		postgresStore, err = postgres.Open(ctx, &postgres.Config{
			DSN:            cfg.Postgres.DSN,
			MaxConns:       cfg.Postgres.MaxConns,
			MigrateOnStart: cfg.Postgres.MigrateOnStart,
			Logger:         logger,
		})
		s = postgresStore

	case config.DriverMongo:
		var mongoStore *mongo.Store
		mongoStore, err = mongo.Open(ctx, &mongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			Collection:     cfg.Mongo.Collection,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			Logger:         logger,
		})
		s = mongoStore

	case config.DriverSQLite:
		var sqliteStore *sqlite.Store
		sqliteStore, err = sqlite.Open(ctx, &sqlite.Config{
			Path:   cfg.SQLite.Path,
			Debug:  cfg.SQLite.Debug,
			Logger: logger,
		})
		s = sqliteStore

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}

	logger.Info("store opened", slog.String("driver", s.Name()))

	return s, nil
}
