// Package tui is the interactive quotation screen of quotectl.
package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// Focus names the pane that receives key presses.
type Focus int

const (
	FocusForm Focus = iota
	FocusList
)

// AppState is everything the screen shows. It is owned by the Model and
// passed by value to the render functions.
type AppState struct {
	Quotations []domain.Quotation
	Catalog    []domain.CatalogItem

	// Editing is the id of the quotation loaded into the form, or empty when
	// the form creates a new one.
	Editing string

	DarkMode     bool
	Focus        Focus
	Selected     int
	ProductIndex int

	Status string
	Err    error
}

// NewAppState returns the initial state with the built-in catalog, so the
// form works before the service answers.
func NewAppState(dark bool) AppState {
	return AppState{
		Catalog:  domain.Catalog(),
		DarkMode: dark,
	}
}

// Product is the product selected in the form.
func (s AppState) Product() domain.Product {
	if len(s.Catalog) == 0 {
		return ""
	}

	return s.Catalog[s.ProductIndex%len(s.Catalog)].Product
}

// CycleProduct moves the product selector by delta, wrapping at both ends.
func (s AppState) CycleProduct(delta int) AppState {
	n := len(s.Catalog)
	if n == 0 {
		return s
	}

	s.ProductIndex = ((s.ProductIndex+delta)%n + n) % n

	return s
}

// editing returns the quotation loaded into the form.
func (s AppState) editing() (domain.Quotation, bool) {
	if s.Editing == "" {
		return domain.Quotation{}, false
	}

	for _, q := range s.Quotations {
		if q.ID == s.Editing {
			return q, true
		}
	}

	return domain.Quotation{}, false
}

// UnitPrice is the price per unit the form will submit. An edited quotation
// keeps its stored unit price until its product changes.
func (s AppState) UnitPrice() float64 {
	product := s.Product()

	if q, ok := s.editing(); ok && q.Product == product {
		return q.UnitPrice
	}

	for _, item := range s.Catalog {
		if item.Product == product {
			return item.UnitPrice
		}
	}

	return 0
}

// errQuantity is reported while the quantity field does not hold a whole number.
var errQuantity = errors.New("quantity must be a whole number")

// Draft builds the line the form describes from the raw quantity text.
func (s AppState) Draft(quantityText string) (domain.Draft, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil {
		return domain.Draft{}, errQuantity
	}

	d := domain.Draft{Product: s.Product(), Quantity: qty, UnitPrice: s.UnitPrice()}

	return d, d.Validate()
}

// Preview prices the form with the same rule the service applies.
func (s AppState) Preview(quantityText string) (domain.LinePricing, error) {
	d, err := s.Draft(quantityText)
	if err != nil {
		return domain.LinePricing{}, err
	}

	return domain.PriceLine(d.UnitPrice, d.Quantity), nil
}

// GrandTotal sums every listed quotation.
func (s AppState) GrandTotal() float64 {
	return domain.GrandTotal(s.Quotations)
}

// Patch returns the changes the form makes to the edited quotation.
func (s AppState) Patch(quantityText string) (domain.Patch, error) {
	d, err := s.Draft(quantityText)
	if err != nil {
		return domain.Patch{}, err
	}

	prev, _ := s.editing()

	var p domain.Patch

	if d.Product != prev.Product {
		p.Product = &d.Product
		p.UnitPrice = &d.UnitPrice
	}

	if d.Quantity != prev.Quantity {
		p.Quantity = &d.Quantity
	}

	return p, nil
}

// Upsert replaces the quotation with the same id or prepends q, keeping the
// newest-first order of the list.
func (s AppState) Upsert(q domain.Quotation) AppState {
	qs := make([]domain.Quotation, 0, len(s.Quotations)+1)

	found := false

	for _, existing := range s.Quotations {
		if existing.ID == q.ID {
			qs = append(qs, q)
			found = true

			continue
		}

		qs = append(qs, existing)
	}

	if !found {
		qs = append([]domain.Quotation{q}, qs...)
		s.Selected = 0
	}

	s.Quotations = qs

	return s
}

// Remove drops the quotation with id and clears the form if it was editing it.
func (s AppState) Remove(id string) AppState {
	qs := make([]domain.Quotation, 0, len(s.Quotations))

	for _, q := range s.Quotations {
		if q.ID != id {
			qs = append(qs, q)
		}
	}

	s.Quotations = qs

	if s.Editing == id {
		s.Editing = ""
	}

	return s.clampSelection()
}

// Edit loads the selected quotation into the form.
func (s AppState) Edit() (AppState, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Quotations) {
		return s, false
	}

	q := s.Quotations[s.Selected]
	s.Editing = q.ID
	s.Focus = FocusForm

	for i, item := range s.Catalog {
		if item.Product == q.Product {
			s.ProductIndex = i
		}
	}

	return s, true
}

// MoveSelection moves the list cursor by delta within bounds.
func (s AppState) MoveSelection(delta int) AppState {
	s.Selected += delta

	return s.clampSelection()
}

func (s AppState) clampSelection() AppState {
	if s.Selected >= len(s.Quotations) {
		s.Selected = len(s.Quotations) - 1
	}

	if s.Selected < 0 {
		s.Selected = 0
	}

	return s
}
