package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	for _, name := range []string{"Camera", "Monitor", "DVR"} {
		p, err := ParseProduct(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
	}

	for _, name := range []string{"camera", "Lens", "", " DVR"} {
		_, err := ParseProduct(name)
		assert.True(t, IsValidation(err), "expected %q to be rejected", name)
	}
}

func TestCatalog(t *testing.T) {
	items := Catalog()
	require.Len(t, items, 3)
	assert.Equal(t, []Product{ProductCamera, ProductMonitor, ProductDVR}, Products())

	price, ok := ListPrice(ProductMonitor)
	assert.True(t, ok)
	assert.InDelta(t, 4500, price, 0)

	items[0].UnitPrice = 1
	again, _ := ListPrice(ProductCamera)
	assert.InDelta(t, 2500, again, 0, "catalog copy must not alias package state")
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name       string
		draft      Draft
		wantFields []string
	}{
		{"valid", Draft{Product: ProductCamera, Quantity: 2, UnitPrice: 2500}, nil},
		{"zero price allowed", Draft{Product: ProductDVR, Quantity: 1, UnitPrice: 0}, nil},
		{"unknown product", Draft{Product: "Lens", Quantity: 1, UnitPrice: 10}, []string{"product"}},
		{"zero quantity", Draft{Product: ProductCamera, Quantity: 0, UnitPrice: 10}, []string{"quantity"}},
		{"negative price", Draft{Product: ProductCamera, Quantity: 1, UnitPrice: -1}, []string{"unitPrice"}},
		{"nan price", Draft{Product: ProductCamera, Quantity: 1, UnitPrice: math.NaN()}, []string{"unitPrice"}},
		{"price beyond ceiling", Draft{Product: ProductCamera, Quantity: 1, UnitPrice: 1.6e308}, []string{"unitPrice"}},
		{"line would overflow", Draft{Product: ProductCamera, Quantity: 2, UnitPrice: 1e308}, []string{"unitPrice"}},
		{"quantity beyond ceiling", Draft{Product: ProductCamera, Quantity: 3_000_000_000, UnitPrice: 1}, []string{"quantity"}},
		{"largest accepted line", Draft{Product: ProductDVR, Quantity: MaxQuantity, UnitPrice: MaxUnitPrice}, nil},
		{
			"everything wrong",
			Draft{Product: "", Quantity: -3, UnitPrice: -5},
			[]string{"product", "quantity", "unitPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantFields, verrs.Fields())
		})
	}
}

func TestDraft_Quotation(t *testing.T) {
	q := Draft{Product: ProductCamera, Quantity: 2, UnitPrice: 2500}.Quotation()

	assert.Empty(t, q.ID)
	assert.InDelta(t, 5000, q.Price, 0)
	assert.InDelta(t, 900, q.GST, 0)
	assert.InDelta(t, 5900, q.Total, 0)
	assert.True(t, q.Priced())
}

func TestQuotation_ApplyAndReprice(t *testing.T) {
	current := Draft{Product: ProductCamera, Quantity: 2, UnitPrice: 2500}.Quotation()
	current.ID = "q-1"

	t.Run("quantity change rescales amounts", func(t *testing.T) {
		qty := 3
		next, err := current.Apply(Patch{Quantity: &qty})
		require.NoError(t, err)

		assert.True(t, next.Reprice(current))
		assert.InDelta(t, 7500, next.Price, 0)
		assert.InDelta(t, 1350, next.GST, 0)
		assert.InDelta(t, 8850, next.Total, 0)
		assert.Equal(t, "q-1", next.ID)
	})

	t.Run("unit price change recomputes", func(t *testing.T) {
		unit := 3000.0
		next, err := current.Apply(Patch{UnitPrice: &unit})
		require.NoError(t, err)

		assert.True(t, next.Reprice(current))
		assert.InDelta(t, 6000, next.Price, 0)
		assert.InDelta(t, 1080, next.GST, 0)
	})

	t.Run("product only change keeps amounts", func(t *testing.T) {
		product := ProductDVR
		next, err := current.Apply(Patch{Product: &product})
		require.NoError(t, err)

		assert.False(t, next.Reprice(current))
		assert.Equal(t, ProductDVR, next.Product)
		assert.InDelta(t, current.Total, next.Total, 0)
	})

	t.Run("inconsistent amounts are repaired", func(t *testing.T) {
		stale := current
		stale.GST = 1

		assert.True(t, stale.Reprice(current))
		assert.InDelta(t, 900, stale.GST, 0)
	})

	t.Run("line price is split into unit price", func(t *testing.T) {
		price := 9600.0
		qty := 3
		next, err := current.Apply(Patch{Quantity: &qty, Price: &price})
		require.NoError(t, err)

		assert.InDelta(t, 3200, next.UnitPrice, 0)
		assert.True(t, next.Reprice(current))
		assert.InDelta(t, 9600, next.Price, 0)
	})

	t.Run("negative line price is rejected", func(t *testing.T) {
		price := -50.0
		_, err := current.Apply(Patch{Price: &price})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "price", ve.Field)
	})

	t.Run("apply does not mutate receiver", func(t *testing.T) {
		qty := 10
		_, _ = current.Apply(Patch{Quantity: &qty})
		assert.Equal(t, 2, current.Quantity)
	})
}

func TestPatch_Empty(t *testing.T) {
	assert.True(t, Patch{}.Empty())

	qty := 1
	assert.False(t, Patch{Quantity: &qty}.Empty())

	price := 10.0
	assert.False(t, Patch{Price: &price}.Empty())
}
