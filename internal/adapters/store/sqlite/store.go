// Package sqlite stores quotations in a single SQLite file through GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/telemetry"
)

// Name is the driver and health check name.
const Name = "sqlite"

// Config configures the store.
type Config struct {
	Path   string
	Debug  bool
	Logger *slog.Logger
}

type quotationModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Product   string    `gorm:"size:16;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
	Price     float64   `gorm:"not null"`
	GST       float64   `gorm:"column:gst;not null"`
	Total     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (quotationModel) TableName() string { return "quotations" }

// BeforeCreate assigns the primary key.
func (m *quotationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}

func fromDomain(q domain.Quotation) quotationModel {
	return quotationModel{
		ID:        q.ID,
		Product:   string(q.Product),
		Quantity:  q.Quantity,
		UnitPrice: q.UnitPrice,
		Price:     q.Price,
		GST:       q.GST,
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func (m quotationModel) toDomain() *domain.Quotation {
	return &domain.Quotation{
		ID:        m.ID,
		Product:   domain.Product(m.Product),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Price:     m.Price,
		GST:       m.GST,
		Total:     m.Total,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// Store implements ports.Store on SQLite.
type Store struct {
	db     *gorm.DB
	path   string
	logger *slog.Logger
}

// Open creates the database file if needed and migrates the schema.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating sqlite directory: %w", err)
		}
	}

	level := logger.Silent
	if cfg.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&quotationModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrating sqlite: %w", err)
	}

	log.Info("sqlite store ready", slog.String("path", cfg.Path))

	return &Store{
		db:     db,
		path:   cfg.Path,
		logger: log.With(slog.String("component", "store.sqlite")),
	}, nil
}

func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", domain.NewInvalidIDError(domain.EntityQuotation, id)
	}

	return u.String(), nil
}

func (s *Store) fail(op, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("sqlite %s: %w", op, err)
	}

	s.logger.Error("sqlite operation failed", slog.String("op", op), slog.Any("error", err))

	return fmt.Errorf("sqlite %s: %w", op, domain.NewUnavailableError(Name, err.Error()))
}

// Create implements ports.QuotationRepository.
func (s *Store) Create(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "create")
	defer func() { telemetry.EndSpan(span, err) }()

	now := time.Now().UTC()
	q.ID = ""
	q.CreatedAt = now
	q.UpdatedAt = now

	m := fromDomain(q)
	if err = s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, s.fail("create", "", err)
	}

	return m.toDomain(), nil
}

// List implements ports.QuotationRepository.
func (s *Store) List(ctx context.Context) (_ []domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "list")
	defer func() { telemetry.EndSpan(span, err) }()

	var rows []quotationModel
	if err = s.db.WithContext(ctx).Order("created_at DESC, rowid DESC").Find(&rows).Error; err != nil {
		return nil, s.fail("list", "", err)
	}

	out := make([]domain.Quotation, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r.toDomain())
	}

	return out, nil
}

// Get implements ports.QuotationRepository.
func (s *Store) Get(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "get")
	defer func() { telemetry.EndSpan(span, err) }()

	var m quotationModel
	if err = s.db.WithContext(ctx).First(&m, "id = ?", key).Error; err != nil {
		return nil, s.fail("get", id, err)
	}

	return m.toDomain(), nil
}

// Update implements ports.QuotationRepository.
func (s *Store) Update(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	key, err := parseID(q.ID)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "update")
	defer func() { telemetry.EndSpan(span, err) }()

	var m quotationModel

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&quotationModel{}).Where("id = ?", key).Updates(map[string]any{
			"product":    string(q.Product),
			"quantity":   q.Quantity,
			"unit_price": q.UnitPrice,
			"price":      q.Price,
			"gst":        q.GST,
			"total":      q.Total,
			"updated_at": time.Now().UTC(),
		})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&m, "id = ?", key).Error
	})
	if err != nil {
		return nil, s.fail("update", q.ID, err)
	}

	return m.toDomain(), nil
}

// Delete implements ports.QuotationRepository.
func (s *Store) Delete(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "delete")
	defer func() { telemetry.EndSpan(span, err) }()

	var m quotationModel

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", key).Error; err != nil {
			return err
		}

		return tx.Delete(&quotationModel{}, "id = ?", key).Error
	})
	if err != nil {
		return nil, s.fail("delete", id, err)
	}

	return m.toDomain(), nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return Name }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
