// Package postgres stores quotations in PostgreSQL through a pgx connection pool.
// The schema is managed by golang-migrate from the embedded migrations directory.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for migrations

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/telemetry"
)

// Name is the driver and health check name.
const Name = "postgres"

//go:embed migrations/*.sql
var migrationsFS embed.FS

const columns = `id::text, product, quantity, unit_price, price, gst, total, created_at, updated_at`

// Config configures the store.
type Config struct {
	DSN            string
	MaxConns       int32
	MigrateOnStart bool
	Logger         *slog.Logger
}

// Store implements ports.Store on PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects, pings and optionally migrates the database.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := Migrate(cfg.DSN, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return NewWithPool(pool, logger), nil
}

// NewWithPool wraps an existing pool. The schema must already exist.
func NewWithPool(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		pool:   pool,
		logger: logger.With(slog.String("component", "store.postgres")),
	}
}

// Migrate applies pending up migrations. No pending migrations is not an error.
func Migrate(dsn string, logger *slog.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return fmt.Errorf("applying migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("postgres migrations applied", slog.Uint64("version", uint64(version)))

	return nil
}

func scan(row pgx.Row) (*domain.Quotation, error) {
	var (
		q       domain.Quotation
		product string
	)

	err := row.Scan(&q.ID, &product, &q.Quantity, &q.UnitPrice, &q.Price, &q.GST, &q.Total, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}

	q.Product = domain.Product(product)
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()

	return &q, nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewInvalidIDError(domain.EntityQuotation, id)
	}

	return nil
}

func (s *Store) fail(op, id string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("postgres %s: %w", op, err)
	}

	s.logger.Error("postgres operation failed", slog.String("op", op), slog.Any("error", err))

	return fmt.Errorf("postgres %s: %w", op, domain.NewUnavailableError(Name, err.Error()))
}

// Create implements ports.QuotationRepository.
func (s *Store) Create(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "create")
	defer func() { telemetry.EndSpan(span, err) }()

	row := s.pool.QueryRow(ctx,
		`INSERT INTO quotations (product, quantity, unit_price, price, gst, total)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+columns,
		string(q.Product), q.Quantity, q.UnitPrice, q.Price, q.GST, q.Total,
	)

	created, err := scan(row)
	if err != nil {
		return nil, s.fail("create", "", err)
	}

	return created, nil
}

// List implements ports.QuotationRepository.
func (s *Store) List(ctx context.Context) (_ []domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "list")
	defer func() { telemetry.EndSpan(span, err) }()

	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM quotations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, s.fail("list", "", err)
	}
	defer rows.Close()

	out := make([]domain.Quotation, 0)

	for rows.Next() {
		q, err := scan(rows)
		if err != nil {
			return nil, s.fail("list", "", err)
		}

		out = append(out, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, s.fail("list", "", err)
	}

	return out, nil
}

// Get implements ports.QuotationRepository.
func (s *Store) Get(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "get")
	defer func() { telemetry.EndSpan(span, err) }()

	q, err := scan(s.pool.QueryRow(ctx, `SELECT `+columns+` FROM quotations WHERE id = $1`, id))
	if err != nil {
		return nil, s.fail("get", id, err)
	}

	return q, nil
}

// Update implements ports.QuotationRepository.
func (s *Store) Update(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	if err := checkID(q.ID); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "update")
	defer func() { telemetry.EndSpan(span, err) }()

	row := s.pool.QueryRow(ctx,
		`UPDATE quotations
		 SET product = $2, quantity = $3, unit_price = $4, price = $5, gst = $6, total = $7,
		     updated_at = clock_timestamp()
		 WHERE id = $1
		 RETURNING `+columns,
		q.ID, string(q.Product), q.Quantity, q.UnitPrice, q.Price, q.GST, q.Total,
	)

	updated, err := scan(row)
	if err != nil {
		return nil, s.fail("update", q.ID, err)
	}

	return updated, nil
}

// Delete implements ports.QuotationRepository.
func (s *Store) Delete(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "delete")
	defer func() { telemetry.EndSpan(span, err) }()

	removed, err := scan(s.pool.QueryRow(ctx, `DELETE FROM quotations WHERE id = $1 RETURNING `+columns, id))
	if err != nil {
		return nil, s.fail("delete", id, err)
	}

	return removed, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return Name }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
