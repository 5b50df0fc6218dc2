package domain

import "time"

// EntityQuotation names the quotation entity in errors.
const EntityQuotation = "quotation"

// Quotation is a persisted price quote for one product line.
// Price, GST and Total are derived from UnitPrice and Quantity and are never
// taken from callers.
type Quotation struct {
	ID        string
	Product   Product
	Quantity  int
	UnitPrice float64
	Price     float64
	GST       float64
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft is the caller-supplied content of a new quotation.
type Draft struct {
	Product   Product
	Quantity  int
	UnitPrice float64
}

// Patch carries the fields of an update. Nil fields are left unchanged.
type Patch struct {
	Product   *Product
	Quantity  *int
	UnitPrice *float64

	// Price is a quantity-scaled line price. The unit price is derived from
	// it and the resulting quantity.
	Price *float64
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Product == nil && p.Quantity == nil && p.UnitPrice == nil && p.Price == nil
}

// Validate checks every field of the draft and reports all failures at once.
func (d Draft) Validate() error {
	errs := &ValidationErrors{}
	validateFields(errs, d.Product, d.Quantity, d.UnitPrice)

	return errs.Err()
}

// Quotation builds an unsaved, fully priced quotation from the draft.
func (d Draft) Quotation() Quotation {
	q := Quotation{
		Product:   d.Product,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
	}
	q.applyPricing()

	return q
}

// Validate checks the mutable fields of a quotation.
func (q Quotation) Validate() error {
	errs := &ValidationErrors{}
	validateFields(errs, q.Product, q.Quantity, q.UnitPrice)

	return errs.Err()
}

// Apply returns a copy of q with the patch fields overlaid.
// Derived amounts are not touched; call Reprice afterwards. It fails only
// when the patch carries a line price that cannot be split into a unit price.
func (q Quotation) Apply(p Patch) (Quotation, error) {
	if p.Product != nil {
		q.Product = *p.Product
	}

	if p.Quantity != nil {
		q.Quantity = *p.Quantity
	}

	if p.UnitPrice != nil {
		q.UnitPrice = *p.UnitPrice
	}

	if p.Price != nil {
		unit, err := UnitPriceFromLine(*p.Price, q.Quantity, p.UnitPrice)
		if err != nil {
			return q, err
		}

		q.UnitPrice = unit
	}

	return q, nil
}

// Reprice recomputes Price, GST and Total when the priced inputs differ from
// prev, or when the derived amounts are inconsistent with them. It reports
// whether anything was recomputed.
func (q *Quotation) Reprice(prev Quotation) bool {
	changed := q.Quantity != prev.Quantity || q.UnitPrice != prev.UnitPrice
	if !changed && q.Priced() {
		return false
	}

	q.applyPricing()

	return true
}

// Priced reports whether the derived amounts match the pricing rule.
func (q Quotation) Priced() bool {
	want := PriceLine(q.UnitPrice, q.Quantity)
	return q.Price == want.Price && q.GST == want.GST && q.Total == want.Total
}

func (q *Quotation) applyPricing() {
	line := PriceLine(q.UnitPrice, q.Quantity)
	q.Price = line.Price
	q.GST = line.GST
	q.Total = line.Total
}

func validateFields(errs *ValidationErrors, product Product, quantity int, unitPrice float64) {
	if !product.Valid() {
		errs.Add("product", "must be one of Camera, Monitor, DVR", string(product))
	}

	switch {
	case quantity < 1:
		errs.Add("quantity", "Quantity must be at least 1", quantity)
	case quantity > MaxQuantity:
		errs.Add("quantity", "Quantity must be at most 1000000", quantity)
	}

	switch {
	case !finite(unitPrice):
		errs.Add("unitPrice", "must be a finite number", unitPrice)
	case unitPrice < 0:
		errs.Add("unitPrice", "must not be negative", unitPrice)
	case unitPrice > MaxUnitPrice:
		errs.Add("unitPrice", "must not exceed 1000000000000", unitPrice)
	}
}
