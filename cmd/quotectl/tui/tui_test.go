package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/mocks"
)

func stored(id string, p domain.Product, qty int, unit float64) domain.Quotation {
	line := domain.PriceLine(unit, qty)

	return domain.Quotation{
		ID: id, Product: p, Quantity: qty, UnitPrice: unit,
		Price: line.Price, GST: line.GST, Total: line.Total,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to m and returns the updated model and command.
func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	model, ok := next.(Model)
	require.True(t, ok)

	return model, cmd
}

// setQuantity replaces the quantity field content through key presses.
func setQuantity(t *testing.T, m Model, qty string) Model {
	t.Helper()

	for range len(m.quantity.Value()) {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}

	m, _ = press(t, m, keyRunes(qty))

	return m
}

func newModel(t *testing.T, qs ...domain.Quotation) (Model, *mocks.MockQuotationAPI) {
	t.Helper()

	api := mocks.NewMockQuotationAPI(t)
	m := New(context.Background(), api, Options{DarkMode: true, ExportDir: t.TempDir()})
	m.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }

	m, _ = press(t, m, loadedMsg{quotations: qs, catalog: domain.Catalog()})

	return m, api
}

func TestAppState_Preview(t *testing.T) {
	s := NewAppState(true)

	tests := []struct {
		name    string
		product int
		qty     string
		want    domain.LinePricing
		wantErr bool
	}{
		{name: "camera pair", product: 0, qty: "2", want: domain.LinePricing{Price: 5000, GST: 900, Total: 5900}},
		{name: "single monitor", product: 1, qty: "1", want: domain.LinePricing{Price: 4500, GST: 810, Total: 5310}},
		{name: "dvr pair", product: 2, qty: "2", want: domain.LinePricing{Price: 6400, GST: 1152, Total: 7552}},
		{name: "zero quantity", product: 0, qty: "0", wantErr: true},
		{name: "not a number", product: 0, qty: "two", wantErr: true},
		{name: "empty", product: 0, qty: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.ProductIndex = tt.product

			got, err := s.Preview(tt.qty)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppState_CycleProduct(t *testing.T) {
	s := NewAppState(false)

	assert.Equal(t, domain.ProductCamera, s.Product())
	assert.Equal(t, domain.ProductDVR, s.CycleProduct(-1).Product())
	assert.Equal(t, domain.ProductMonitor, s.CycleProduct(1).Product())
	assert.Equal(t, domain.ProductCamera, s.CycleProduct(3).Product())
}

func TestAppState_UpsertAndRemove(t *testing.T) {
	s := NewAppState(true)
	s = s.Upsert(stored("a", domain.ProductCamera, 1, 2500))
	s = s.Upsert(stored("b", domain.ProductDVR, 1, 3200))

	require.Len(t, s.Quotations, 2)
	assert.Equal(t, "b", s.Quotations[0].ID, "new records go first")

	s = s.Upsert(stored("a", domain.ProductCamera, 3, 2500))
	require.Len(t, s.Quotations, 2)
	assert.Equal(t, 3, s.Quotations[1].Quantity)
	assert.InDelta(t, 8850+3776, s.GrandTotal(), 0.001)

	s.Editing = "a"
	s.Selected = 1
	s = s.Remove("a")
	assert.Empty(t, s.Editing)
	assert.Equal(t, 0, s.Selected)
	require.Len(t, s.Quotations, 1)
}

func TestAppState_PatchKeepsStoredUnitPrice(t *testing.T) {
	s := NewAppState(true)
	s.Quotations = []domain.Quotation{stored("a", domain.ProductCamera, 2, 2000)}

	s, ok := s.Edit()
	require.True(t, ok)
	assert.InDelta(t, 2000, s.UnitPrice(), 0.001)

	p, err := s.Patch("3")
	require.NoError(t, err)
	assert.Nil(t, p.Product)
	assert.Nil(t, p.UnitPrice)
	require.NotNil(t, p.Quantity)
	assert.Equal(t, 3, *p.Quantity)

	s = s.CycleProduct(1)
	assert.InDelta(t, 4500, s.UnitPrice(), 0.001, "a new product takes its list price")

	p, err = s.Patch("2")
	require.NoError(t, err)
	require.NotNil(t, p.Product)
	assert.Equal(t, domain.ProductMonitor, *p.Product)
	assert.InDelta(t, 4500, *p.UnitPrice, 0.001)
	assert.Nil(t, p.Quantity)
}

func TestModel_Init(t *testing.T) {
	api := mocks.NewMockQuotationAPI(t)
	qs := []domain.Quotation{stored("a", domain.ProductCamera, 2, 2500)}
	api.EXPECT().List(mock.Anything).Return(qs, nil).Once()
	api.EXPECT().Catalog(mock.Anything).Return(domain.Catalog(), nil).Once()

	m := New(context.Background(), api, Options{})

	msg := loadCmd(m.ctx, m.api)()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)

	m, _ = press(t, m, loaded)
	assert.Equal(t, qs, m.State().Quotations)
	assert.NotNil(t, m.Init())
}

func TestModel_CreateFromForm(t *testing.T) {
	m, api := newModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = setQuantity(t, m, "2")

	assert.Contains(t, m.View(), "7552.00", "live preview of two DVRs")

	created := stored("new", domain.ProductDVR, 2, 3200)
	api.EXPECT().
		Create(mock.Anything, domain.Draft{Product: domain.ProductDVR, Quantity: 2, UnitPrice: 3200}).
		Return(&created, nil).
		Once()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())

	state := m.State()
	require.Len(t, state.Quotations, 1)
	assert.Equal(t, "new", state.Quotations[0].ID)
	assert.Contains(t, state.Status, "Created quotation new")
	assert.Equal(t, "1", m.quantity.Value(), "form resets after save")
}

func TestModel_InvalidQuantityIsNotSent(t *testing.T) {
	m, _ := newModel(t)

	m = setQuantity(t, m, "0")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	require.Error(t, m.State().Err)
	assert.Contains(t, m.View(), "Quantity must be at least 1")
}

func TestModel_FormIgnoresLetters(t *testing.T) {
	m, _ := newModel(t)

	m, _ = press(t, m, keyRunes("x"))
	assert.Equal(t, "1", m.quantity.Value())
}

func TestModel_EditFromList(t *testing.T) {
	m, api := newModel(t, stored("a", domain.ProductCamera, 2, 2500))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusList, m.State().Focus)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "a", m.State().Editing)
	assert.Equal(t, FocusForm, m.State().Focus)
	assert.Equal(t, "2", m.quantity.Value())

	m = setQuantity(t, m, "3")

	updated := stored("a", domain.ProductCamera, 3, 2500)
	api.EXPECT().
		Update(mock.Anything, "a", mock.MatchedBy(func(p domain.Patch) bool {
			return p.Product == nil && p.UnitPrice == nil && p.Quantity != nil && *p.Quantity == 3
		})).
		Return(&updated, nil).
		Once()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())

	state := m.State()
	assert.Empty(t, state.Editing)
	assert.InDelta(t, 8850, state.Quotations[0].Total, 0.001)
	assert.InDelta(t, 8850, state.GrandTotal(), 0.001)
}

func TestModel_DeleteFromList(t *testing.T) {
	a := stored("a", domain.ProductCamera, 1, 2500)
	m, api := newModel(t, a, stored("b", domain.ProductMonitor, 1, 4500))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	api.EXPECT().Delete(mock.Anything, "a").Return(&a, nil).Once()

	m, cmd := press(t, m, keyRunes("d"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	require.Len(t, m.State().Quotations, 1)
	assert.Equal(t, "b", m.State().Quotations[0].ID)
}

func TestModel_ServiceErrorShown(t *testing.T) {
	m, api := newModel(t, stored("a", domain.ProductCamera, 1, 2500))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	api.EXPECT().Delete(mock.Anything, "a").Return(nil, domain.NewNotFoundError(domain.EntityQuotation, "a")).Once()

	m, cmd := press(t, m, keyRunes("d"))
	m, _ = press(t, m, cmd())

	assert.True(t, domain.IsNotFound(m.State().Err))
	assert.Len(t, m.State().Quotations, 1)
}

func TestModel_Export(t *testing.T) {
	m, api := newModel(t)

	api.EXPECT().Export(mock.Anything).Return([]byte("%PDF-1.3"), nil).Once()

	m, cmd := press(t, m, keyRunes("e"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())

	path := filepath.Join(m.exportDir, "quotations-20261017-090000.pdf")
	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(doc))
	assert.Contains(t, m.State().Status, path)
}

func TestModel_ToggleDarkMode(t *testing.T) {
	m, _ := newModel(t)
	require.True(t, m.State().DarkMode)

	m, _ = press(t, m, keyRunes("t"))
	assert.False(t, m.State().DarkMode)
	assert.Contains(t, m.View(), "light mode")

	m, _ = press(t, m, keyRunes("t"))
	assert.True(t, m.State().DarkMode)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := press(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRender_ListAndGrandTotal(t *testing.T) {
	s := NewAppState(true)
	s.Quotations = []domain.Quotation{
		stored("a", domain.ProductCamera, 2, 2500),
		stored("b", domain.ProductMonitor, 1, 4500),
	}

	out := render(s, screen{quantityText: "1"})

	assert.Contains(t, out, "Quotations (2)")
	assert.Contains(t, out, "Grand total")
	assert.Contains(t, out, "11210.00")
	assert.Contains(t, out, "dark mode")
}
