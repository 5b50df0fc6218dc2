package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// GSTRate is the fixed goods and services tax applied to every quotation.
var GSTRate = decimal.RequireFromString("0.18")

// Bounds on caller input. Quantities fit a 32-bit integer column and every
// amount priced within them is a finite float64.
const (
	MaxQuantity  = 1_000_000
	MaxUnitPrice = 1e12
	MaxLinePrice = MaxUnitPrice * MaxQuantity
)

// TaxBreakdown holds the amounts derived from a pre-tax price.
type TaxBreakdown struct {
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}

// LinePricing is the full pricing of one quotation line.
type LinePricing struct {
	Price float64 `json:"price"`
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ComputeTax applies the GST rate to price. It is the single pricing rule used
// by the service, the stores and the client preview, so all of them agree.
// A non-finite price yields non-finite amounts instead of a panic.
func ComputeTax(price float64) TaxBreakdown {
	if !finite(price) {
		return TaxBreakdown{GST: price * GSTRate.InexactFloat64(), Total: price + price*GSTRate.InexactFloat64()}
	}

	p := decimal.NewFromFloat(price)
	gst := p.Mul(GSTRate)

	return TaxBreakdown{
		GST:   gst.InexactFloat64(),
		Total: p.Add(gst).InexactFloat64(),
	}
}

// PriceLine multiplies unitPrice by quantity and applies ComputeTax to the result.
func PriceLine(unitPrice float64, quantity int) LinePricing {
	var price float64
	if finite(unitPrice) {
		price = decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
	} else {
		price = unitPrice * float64(quantity)
	}

	tax := ComputeTax(price)

	return LinePricing{Price: price, GST: tax.GST, Total: tax.Total}
}

// UnitPriceFromLine splits a quantity-scaled line price into the unit price
// it was built from. unitPrice, when given, must agree with it. The line must
// split evenly to eight decimal places so the stored price equals the one
// supplied. Failures name the price field.
func UnitPriceFromLine(price float64, quantity int, unitPrice *float64) (float64, error) {
	switch {
	case !finite(price):
		return 0, NewValidationErrorWithValue("price", "must be a finite number", price)
	case price < 0:
		return 0, NewValidationErrorWithValue("price", "must not be negative", price)
	case price > MaxLinePrice:
		return 0, NewValidationErrorWithValue("price", "must not exceed 1000000000000000000", price)
	}

	if quantity < 1 {
		// The quantity failure is reported by validation.
		if unitPrice != nil {
			return *unitPrice, nil
		}

		return 0, nil
	}

	line := decimal.NewFromFloat(price)
	qty := decimal.NewFromInt(int64(quantity))
	unit := line.DivRound(qty, 8)

	if !unit.Mul(qty).Equal(line) {
		return 0, NewValidationErrorWithValue("price", "does not split evenly across quantity; send unitPrice instead", price)
	}

	u := unit.InexactFloat64()
	if unitPrice != nil && *unitPrice != u {
		return 0, NewValidationErrorWithValue("price", "must equal unitPrice × quantity", price)
	}

	return u, nil
}

// GrandTotal sums the totals of qs.
func GrandTotal(qs []Quotation) float64 {
	sum := decimal.Zero
	overflow := 0.0

	for i := range qs {
		if !finite(qs[i].Total) {
			overflow += qs[i].Total
			continue
		}

		sum = sum.Add(decimal.NewFromFloat(qs[i].Total))
	}

	return sum.InexactFloat64() + overflow
}
