// Package app contains the quotation use cases.
// It validates input, applies the pricing rule and delegates persistence to a
// ports.QuotationRepository. Transport and storage details live in adapters.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// ErrExportDisabled is returned by Export when no exporter is configured.
var ErrExportDisabled = errors.New("export is not configured")

// QuotationService orchestrates quotation use cases.
type QuotationService struct {
	repo     ports.QuotationRepository
	exporter ports.QuotationExporter
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// QuotationServiceConfig contains the dependencies of the quotation service.
type QuotationServiceConfig struct {
	Repository ports.QuotationRepository

	// Exporter renders Export documents. Optional.
	Exporter ports.QuotationExporter

	Metrics *Metrics
	Logger  *slog.Logger
}

// NewQuotationService creates a quotation service. It panics without a repository.
func NewQuotationService(cfg QuotationServiceConfig) *QuotationService {
	if cfg.Repository == nil {
		panic("app: quotation repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotationService{
		repo:     cfg.Repository,
		exporter: cfg.Exporter,
		metrics:  cfg.Metrics,
		logger:   logger.With(slog.String("component", "app.QuotationService")),
		now:      time.Now,
	}
}

func (s *QuotationService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *QuotationService) track(op string, start time.Time, errp *error) {
	s.metrics.observe(op, start, *errp)
}

// Create validates the draft, prices it and stores it.
// Invalid drafts never reach the repository.
func (s *QuotationService) Create(ctx context.Context, d domain.Draft) (q *domain.Quotation, err error) {
	defer s.track("create", time.Now(), &err)

	if err = d.Validate(); err != nil {
		s.log(ctx).DebugContext(ctx, "rejected quotation draft", slog.Any("error", err))
		return nil, err
	}

	q, err = s.repo.Create(ctx, d.Quotation())
	if err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quotation created",
		slog.String("quotation_id", q.ID),
		slog.String("product", q.Product.String()),
		slog.Int("quantity", q.Quantity),
		slog.Float64("total", q.Total),
	)

	return q, nil
}

// List returns all quotations, newest first.
func (s *QuotationService) List(ctx context.Context) (qs []domain.Quotation, err error) {
	defer s.track("list", time.Now(), &err)

	qs, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "listed quotations", slog.Int("count", len(qs)))

	return qs, nil
}

// Get returns a single quotation.
func (s *QuotationService) Get(ctx context.Context, id string) (q *domain.Quotation, err error) {
	defer s.track("get", time.Now(), &err)

	q, err = s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	return q, nil
}

// Update overlays the patch on the stored quotation. Derived amounts are
// recomputed when quantity or unit price differ from the stored values.
// Concurrent updates of the same id are last write wins.
func (s *QuotationService) Update(ctx context.Context, id string, p domain.Patch) (q *domain.Quotation, err error) {
	defer s.track("update", time.Now(), &err)

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading quotation for update: %w", err)
	}

	next, err := current.Apply(p)
	if err != nil {
		return nil, err
	}

	if err = next.Validate(); err != nil {
		return nil, err
	}

	repriced := next.Reprice(*current)

	q, err = s.repo.Update(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("updating quotation: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quotation updated",
		slog.String("quotation_id", q.ID),
		slog.Bool("repriced", repriced),
		slog.Float64("total", q.Total),
	)

	return q, nil
}

// Delete removes a quotation and returns it as it was stored.
func (s *QuotationService) Delete(ctx context.Context, id string) (q *domain.Quotation, err error) {
	defer s.track("delete", time.Now(), &err)

	q, err = s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deleting quotation: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quotation deleted", slog.String("quotation_id", q.ID))

	return q, nil
}

// Preview validates and prices a draft without storing it.
func (s *QuotationService) Preview(d domain.Draft) (domain.LinePricing, error) {
	if err := d.Validate(); err != nil {
		return domain.LinePricing{}, err
	}

	return domain.PriceLine(d.UnitPrice, d.Quantity), nil
}

// Catalog returns the quotable products with their list prices.
func (s *QuotationService) Catalog() []domain.CatalogItem {
	return domain.Catalog()
}

// ExportContentType returns the media type Export produces, or "" when export is disabled.
func (s *QuotationService) ExportContentType() string {
	if s.exporter == nil {
		return ""
	}

	return s.exporter.ContentType()
}

// Export renders every stored quotation, newest first, into one document.
func (s *QuotationService) Export(ctx context.Context) (doc []byte, err error) {
	defer s.track("export", time.Now(), &err)

	if s.exporter == nil {
		return nil, ErrExportDisabled
	}

	qs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotations for export: %w", err)
	}

	doc, err = s.exporter.Render(qs, s.now())
	if err != nil {
		return nil, fmt.Errorf("rendering export: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quotations exported",
		slog.Int("count", len(qs)),
		slog.Int("bytes", len(doc)),
	)

	return doc, nil
}
