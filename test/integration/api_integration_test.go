//go:build integration

package integration

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/app"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/mocks"
)

// TestQuotationLifecycle_ThroughClient drives every operation through the
// ACL client against the real router and memory store.
func TestQuotationLifecycle_ThroughClient(t *testing.T) {
	ctx := context.Background()
	api := newStack(t, nil).client(t, 3)

	created, err := api.Create(ctx, domain.Draft{Product: domain.ProductCamera, Quantity: 2, UnitPrice: 2500})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 5000, created.Price, 0.001)
	assert.InDelta(t, 900, created.GST, 0.001)
	assert.InDelta(t, 5900, created.Total, 0.001)

	second, err := api.Create(ctx, domain.Draft{Product: domain.ProductMonitor, Quantity: 1, UnitPrice: 4500})
	require.NoError(t, err)

	qs, err := api.List(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, second.ID, qs[0].ID, "newest first")
	assert.InDelta(t, 11210, domain.GrandTotal(qs), 0.001)

	qty := 3
	updated, err := api.Update(ctx, created.ID, domain.Patch{Quantity: &qty})
	require.NoError(t, err)
	assert.InDelta(t, 7500, updated.Price, 0.001)
	assert.InDelta(t, 1350, updated.GST, 0.001)
	assert.InDelta(t, 8850, updated.Total, 0.001)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	doc, err := api.Export(ctx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	deleted, err := api.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = api.Get(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = api.Delete(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))

	require.NoError(t, api.Check(ctx))
}

func TestPreviewAndCatalog_ThroughClient(t *testing.T) {
	ctx := context.Background()
	api := newStack(t, nil).client(t, 1)

	line, err := api.Preview(ctx, domain.Draft{Product: domain.ProductDVR, Quantity: 2, UnitPrice: 3200})
	require.NoError(t, err)
	assert.Equal(t, domain.LinePricing{Price: 6400, GST: 1152, Total: 7552}, line)

	items, err := api.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), items)

	qs, err := api.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, qs, "preview stores nothing")
}

func TestValidationErrors_ThroughClient(t *testing.T) {
	ctx := context.Background()
	api := newStack(t, nil).client(t, 1)

	_, err := api.Create(ctx, domain.Draft{Product: "Drone", Quantity: 0, UnitPrice: -1})
	require.Error(t, err)

	var many *domain.ValidationErrors
	require.True(t, errors.As(err, &many))
	assert.ElementsMatch(t, []string{"product", "quantity", "unitPrice"}, many.Fields())

	_, err = api.Get(ctx, "not-a-uuid")
	assert.True(t, domain.IsInvalidID(err))
}

// TestStoreOutage_ThroughClient checks that a failing store surfaces as
// unavailable to the client and opens its breaker.
func TestStoreOutage_ThroughClient(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockQuotationRepository(t)
	repo.EXPECT().
		List(mock.Anything).
		Return(nil, domain.NewUnavailableError("postgres", "connection refused")).
		Times(3)

	api := newStack(t, repo).client(t, 1)

	for range 3 {
		_, err := api.List(ctx)
		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
		assert.NotContains(t, err.Error(), "connection refused", "driver detail stays server side")
	}

	_, err := api.List(ctx)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestConcurrentCreates_ThroughClient(t *testing.T) {
	ctx := context.Background()
	s := newStack(t, nil)
	api := s.client(t, 1)

	const workers = 20

	var (
		mu  sync.Mutex
		ids = make(map[string]struct{}, workers)
	)

	quantities := make([]int, workers)
	for i := range quantities {
		quantities[i] = i + 1
	}

	err := app.FanOut(ctx, 5, quantities, func(ctx context.Context, qty int) error {
		q, err := api.Create(ctx, domain.Draft{Product: domain.ProductCamera, Quantity: qty, UnitPrice: 2500})
		if err != nil {
			return err
		}

		assert.True(t, q.Priced())

		mu.Lock()
		ids[q.ID] = struct{}{}
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)

	assert.Len(t, ids, workers, "every create gets its own id")

	qs, err := api.List(ctx)
	require.NoError(t, err)
	assert.Len(t, qs, workers)

	assert.InDelta(t, float64(workers), s.operations(t, "create", "ok"), 0)
}
