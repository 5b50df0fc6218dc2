// Package storetest holds the behavioural contract every quotation store must satisfy.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// Factory returns an empty store. Cleanup is the caller's responsibility.
type Factory func(t *testing.T) ports.QuotationRepository

// Options tune the contract for backend id formats.
type Options struct {
	// MalformedID is an id the backend cannot parse.
	MalformedID string

	// MissingID is well-formed but never assigned.
	MissingID string
}

func draft(p domain.Product, qty int, unit float64) domain.Quotation {
	return domain.Draft{Product: p, Quantity: qty, UnitPrice: unit}.Quotation()
}

// Run executes the contract against stores built by newStore.
func Run(t *testing.T, newStore Factory, opts Options) {
	t.Helper()

	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		s := newStore(t)

		created, err := s.Create(ctx, draft(domain.ProductCamera, 2, 2500))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())
		assert.Equal(t, domain.ProductCamera, created.Product)
		assert.Equal(t, 2, created.Quantity)
		assert.InDelta(t, 2500, created.UnitPrice, 0)
		assert.InDelta(t, 5000, created.Price, 0)
		assert.InDelta(t, 900, created.GST, 0)
		assert.InDelta(t, 5900, created.Total, 0)
	})

	t.Run("get returns the created record", func(t *testing.T) {
		s := newStore(t)

		created, err := s.Create(ctx, draft(domain.ProductMonitor, 1, 4500))
		require.NoError(t, err)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Product, got.Product)
		assert.Equal(t, created.Quantity, got.Quantity)
		assert.InDelta(t, created.Total, got.Total, 0)
		assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("largest accepted line round trips", func(t *testing.T) {
		s := newStore(t)

		q := draft(domain.ProductDVR, domain.MaxQuantity, domain.MaxUnitPrice)
		require.NoError(t, q.Validate())

		created, err := s.Create(ctx, q)
		require.NoError(t, err)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.MaxQuantity, got.Quantity)
		assert.InDelta(t, domain.MaxUnitPrice, got.UnitPrice, 0)
		assert.InDelta(t, q.Total, got.Total, 0)

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("list is newest first", func(t *testing.T) {
		s := newStore(t)

		var ids []string
		for i, p := range domain.Products() {
			q, err := s.Create(ctx, draft(p, i+1, 100))
			require.NoError(t, err)

			ids = append(ids, q.ID)

			time.Sleep(5 * time.Millisecond)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)

		assert.Equal(t, ids[2], list[0].ID)
		assert.Equal(t, ids[1], list[1].ID)
		assert.Equal(t, ids[0], list[2].ID)
	})

	t.Run("list of empty store is empty", func(t *testing.T) {
		list, err := newStore(t).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("update replaces fields and bumps updatedAt", func(t *testing.T) {
		s := newStore(t)

		created, err := s.Create(ctx, draft(domain.ProductCamera, 2, 2500))
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		next := *created
		next.Quantity = 3
		next.Reprice(*created)

		updated, err := s.Update(ctx, next)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 3, updated.Quantity)
		assert.InDelta(t, 7500, updated.Price, 0)
		assert.InDelta(t, 1350, updated.GST, 0)
		assert.InDelta(t, 8850, updated.Total, 0)
		assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		s := newStore(t)

		created, err := s.Create(ctx, draft(domain.ProductDVR, 1, 3200))
		require.NoError(t, err)

		removed, err := s.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, removed.ID)
		assert.Equal(t, domain.ProductDVR, removed.Product)

		_, err = s.Get(ctx, created.ID)
		assert.True(t, domain.IsNotFound(err), "got %v", err)

		_, err = s.Delete(ctx, created.ID)
		assert.True(t, domain.IsNotFound(err), "got %v", err)
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(ctx, opts.MalformedID)
		assert.True(t, domain.IsInvalidID(err), "get: %v", err)

		_, err = s.Update(ctx, domain.Quotation{ID: opts.MalformedID, Product: domain.ProductCamera, Quantity: 1})
		assert.True(t, domain.IsInvalidID(err), "update: %v", err)

		_, err = s.Delete(ctx, opts.MalformedID)
		assert.True(t, domain.IsInvalidID(err), "delete: %v", err)
	})

	t.Run("missing id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(ctx, opts.MissingID)
		assert.True(t, domain.IsNotFound(err), "get: %v", err)

		_, err = s.Update(ctx, domain.Quotation{ID: opts.MissingID, Product: domain.ProductCamera, Quantity: 1})
		assert.True(t, domain.IsNotFound(err), "update: %v", err)

		_, err = s.Delete(ctx, opts.MissingID)
		assert.True(t, domain.IsNotFound(err), "delete: %v", err)
	})

	t.Run("concurrent creates on distinct records", func(t *testing.T) {
		s := newStore(t)

		const n = 20

		var wg sync.WaitGroup

		errs := make(chan error, n)

		for i := range n {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				if _, err := s.Create(ctx, draft(domain.ProductCamera, i+1, 10)); err != nil {
					errs <- fmt.Errorf("create %d: %w", i, err)
				}
			}(i)
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			t.Error(err)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, n)
	})
}
