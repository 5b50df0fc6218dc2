package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/mocks"
)

const testID = "6f1c9a52-5d0b-4c43-a6a4-2b9f0b3c1e77"

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) (*QuotationService, *mocks.MockQuotationRepository) {
	t.Helper()

	repo := mocks.NewMockQuotationRepository(t)
	svc := NewQuotationService(QuotationServiceConfig{Repository: repo, Logger: discardLogger()})

	return svc, repo
}

func stored(p domain.Product, qty int, unit float64) *domain.Quotation {
	q := domain.Draft{Product: p, Quantity: qty, UnitPrice: unit}.Quotation()
	q.ID = testID
	q.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	q.UpdatedAt = q.CreatedAt

	return &q
}

func TestNewQuotationService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuotationService(QuotationServiceConfig{})
	})
}

func TestNewQuotationService_DefaultsLogger(t *testing.T) {
	svc := NewQuotationService(QuotationServiceConfig{Repository: mocks.NewMockQuotationRepository(t)})
	require.NotNil(t, svc)
}

func TestQuotationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		draft     domain.Draft
		setupMock func(*mocks.MockQuotationRepository)
		wantTotal float64
		errCheck  func(error) bool
	}{
		{
			name:  "prices and stores a valid draft",
			draft: domain.Draft{Product: domain.ProductCamera, Quantity: 2, UnitPrice: 2500},
			setupMock: func(m *mocks.MockQuotationRepository) {
				m.EXPECT().Create(mock.Anything, mock.MatchedBy(func(q domain.Quotation) bool {
					return q.Price == 5000 && q.GST == 900 && q.Total == 5900 && q.ID == ""
				})).RunAndReturn(func(_ context.Context, q domain.Quotation) (*domain.Quotation, error) {
					q.ID = testID
					return &q, nil
				})
			},
			wantTotal: 5900,
		},
		{
			name:     "zero quantity never reaches the repository",
			draft:    domain.Draft{Product: domain.ProductCamera, Quantity: 0, UnitPrice: 2500},
			errCheck: domain.IsValidation,
		},
		{
			name:     "unknown product never reaches the repository",
			draft:    domain.Draft{Product: "Drone", Quantity: 1, UnitPrice: 100},
			errCheck: domain.IsValidation,
		},
		{
			name:  "store outage is preserved",
			draft: domain.Draft{Product: domain.ProductDVR, Quantity: 1, UnitPrice: 3200},
			setupMock: func(m *mocks.MockQuotationRepository) {
				m.EXPECT().Create(mock.Anything, mock.Anything).
					Return(nil, domain.NewUnavailableError("postgres", "connection refused"))
			},
			errCheck: domain.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Create(context.Background(), tt.draft)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testID, got.ID)
			assert.InDelta(t, tt.wantTotal, got.Total, 0)
		})
	}
}

func TestQuotationService_Update(t *testing.T) {
	qty := func(n int) *int { return &n }
	unit := func(v float64) *float64 { return &v }
	product := func(p domain.Product) *domain.Product { return &p }

	tests := []struct {
		name     string
		patch    domain.Patch
		want     domain.LinePricing
		product  domain.Product
		errCheck func(error) bool
	}{
		{
			name:    "quantity change rescales amounts",
			patch:   domain.Patch{Quantity: qty(3)},
			want:    domain.LinePricing{Price: 7500, GST: 1350, Total: 8850},
			product: domain.ProductCamera,
		},
		{
			name:    "unit price change rescales amounts",
			patch:   domain.Patch{UnitPrice: unit(2000)},
			want:    domain.LinePricing{Price: 4000, GST: 720, Total: 4720},
			product: domain.ProductCamera,
		},
		{
			name:    "product change alone keeps amounts",
			patch:   domain.Patch{Product: product(domain.ProductMonitor)},
			want:    domain.LinePricing{Price: 5000, GST: 900, Total: 5900},
			product: domain.ProductMonitor,
		},
		{
			name:    "empty patch keeps amounts",
			patch:   domain.Patch{},
			want:    domain.LinePricing{Price: 5000, GST: 900, Total: 5900},
			product: domain.ProductCamera,
		},
		{
			name:     "zero quantity is rejected",
			patch:    domain.Patch{Quantity: qty(0)},
			errCheck: domain.IsValidation,
		},
		{
			name:     "unknown product is rejected",
			patch:    domain.Patch{Product: product("Drone")},
			errCheck: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			repo.EXPECT().Get(mock.Anything, testID).Return(stored(domain.ProductCamera, 2, 2500), nil)

			if tt.errCheck == nil {
				repo.EXPECT().Update(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, q domain.Quotation) (*domain.Quotation, error) {
						return &q, nil
					})
			}

			got, err := svc.Update(context.Background(), testID, tt.patch)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testID, got.ID)
			assert.Equal(t, tt.product, got.Product)
			assert.InDelta(t, tt.want.Price, got.Price, 0)
			assert.InDelta(t, tt.want.GST, got.GST, 0)
			assert.InDelta(t, tt.want.Total, got.Total, 0)
		})
	}
}

func TestQuotationService_Update_MissingRecord(t *testing.T) {
	svc, repo := newService(t)
	repo.EXPECT().Get(mock.Anything, testID).Return(nil, domain.NewNotFoundError(domain.EntityQuotation, testID))

	one := 1
	_, err := svc.Update(context.Background(), testID, domain.Patch{Quantity: &one})

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuotationService_GetListDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("get wraps repository errors", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Get(mock.Anything, "bad").Return(nil, domain.NewInvalidIDError(domain.EntityQuotation, "bad"))

		_, err := svc.Get(ctx, "bad")
		assert.True(t, domain.IsInvalidID(err))
		assert.Contains(t, err.Error(), "getting quotation")
	})

	t.Run("list returns repository order", func(t *testing.T) {
		svc, repo := newService(t)
		newer := stored(domain.ProductDVR, 1, 3200)
		older := stored(domain.ProductCamera, 1, 2500)
		repo.EXPECT().List(mock.Anything).Return([]domain.Quotation{*newer, *older}, nil)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, domain.ProductDVR, got[0].Product)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Delete(mock.Anything, testID).Return(stored(domain.ProductMonitor, 1, 4500), nil)

		got, err := svc.Delete(ctx, testID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProductMonitor, got.Product)
	})

	t.Run("delete of missing record", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Delete(mock.Anything, testID).Return(nil, domain.NewNotFoundError(domain.EntityQuotation, testID))

		_, err := svc.Delete(ctx, testID)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuotationService_Preview(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Preview(domain.Draft{Product: domain.ProductMonitor, Quantity: 2, UnitPrice: 4500})
	require.NoError(t, err)
	assert.Equal(t, domain.PriceLine(4500, 2), got)

	_, err = svc.Preview(domain.Draft{Product: domain.ProductMonitor, Quantity: -1, UnitPrice: 4500})
	assert.True(t, domain.IsValidation(err))
}

func TestQuotationService_Catalog(t *testing.T) {
	svc, _ := newService(t)

	assert.Equal(t, domain.Catalog(), svc.Catalog())
}

func TestQuotationService_Export(t *testing.T) {
	ctx := context.Background()
	generated := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("renders the listed quotations", func(t *testing.T) {
		repo := mocks.NewMockQuotationRepository(t)
		exporter := mocks.NewMockQuotationExporter(t)
		svc := NewQuotationService(QuotationServiceConfig{Repository: repo, Exporter: exporter, Logger: discardLogger()})
		svc.now = func() time.Time { return generated }

		qs := []domain.Quotation{*stored(domain.ProductCamera, 2, 2500)}
		repo.EXPECT().List(mock.Anything).Return(qs, nil)
		exporter.EXPECT().Render(qs, generated).Return([]byte("%PDF-1.3"), nil)
		exporter.EXPECT().ContentType().Return("application/pdf")

		doc, err := svc.Export(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.3"), doc)
		assert.Equal(t, "application/pdf", svc.ExportContentType())
	})

	t.Run("render failure", func(t *testing.T) {
		repo := mocks.NewMockQuotationRepository(t)
		exporter := mocks.NewMockQuotationExporter(t)
		svc := NewQuotationService(QuotationServiceConfig{Repository: repo, Exporter: exporter, Logger: discardLogger()})

		repo.EXPECT().List(mock.Anything).Return(nil, nil)
		exporter.EXPECT().Render(mock.Anything, mock.Anything).Return(nil, errors.New("font missing"))

		_, err := svc.Export(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rendering export")
	})

	t.Run("disabled without exporter", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Export(ctx)
		require.ErrorIs(t, err, ErrExportDisabled)
		assert.Empty(t, svc.ExportContentType())
	})
}

func TestQuotationService_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	repo := mocks.NewMockQuotationRepository(t)
	svc := NewQuotationService(QuotationServiceConfig{Repository: repo, Metrics: metrics, Logger: discardLogger()})

	repo.EXPECT().Get(mock.Anything, testID).Return(stored(domain.ProductCamera, 1, 2500), nil).Once()
	repo.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.NewNotFoundError(domain.EntityQuotation, "nope")).Once()

	_, _ = svc.Get(context.Background(), testID)
	_, _ = svc.Get(context.Background(), "nope")
	_, _ = svc.Create(context.Background(), domain.Draft{})

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.operations.WithLabelValues("get", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.operations.WithLabelValues("get", "not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.operations.WithLabelValues("create", "invalid")), 0)

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice must fail")
}
