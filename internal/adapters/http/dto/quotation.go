package dto

import (
	"time"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// DeletedMessage is the confirmation returned by the delete endpoint.
const DeletedMessage = "Quotation deleted successfully"

// CreateQuotationRequest is the body of POST /quotations and POST /quotations/preview.
// GST and total are derived server-side; if a client sends them they are ignored.
type CreateQuotationRequest struct {
	Product  string `json:"product"  validate:"required,notempty"`
	Quantity *int   `json:"quantity" validate:"required"`

	// UnitPrice defaults to the catalog list price when neither it nor Price is sent.
	UnitPrice *float64 `json:"unitPrice,omitempty"`

	// Price is the quantity-scaled line price. When sent, the unit price is
	// derived from it.
	Price *float64 `json:"price,omitempty"`
}

// Draft converts the request into a domain draft. A line price that cannot
// be split into a unit price fails with a validation error naming price;
// every other range check happens in the domain.
func (r *CreateQuotationRequest) Draft() (domain.Draft, error) {
	d := domain.Draft{Product: domain.Product(r.Product)}

	if r.Quantity != nil {
		d.Quantity = *r.Quantity
	}

	switch {
	case r.Price != nil:
		unit, err := domain.UnitPriceFromLine(*r.Price, d.Quantity, r.UnitPrice)
		if err != nil {
			return d, err
		}

		d.UnitPrice = unit

	case r.UnitPrice != nil:
		d.UnitPrice = *r.UnitPrice

	default:
		if list, ok := domain.ListPrice(d.Product); ok {
			d.UnitPrice = list
		}
	}

	return d, nil
}

// UpdateQuotationRequest is the body of PUT /quotations/:id. Omitted fields keep their value.
type UpdateQuotationRequest struct {
	Product   *string  `json:"product,omitempty"   validate:"omitempty,notempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

// Patch converts the request into a domain patch.
func (r *UpdateQuotationRequest) Patch() domain.Patch {
	p := domain.Patch{Quantity: r.Quantity, UnitPrice: r.UnitPrice, Price: r.Price}

	if r.Product != nil {
		product := domain.Product(*r.Product)
		p.Product = &product
	}

	return p
}

// QuotationResponse is the wire form of a stored quotation.
type QuotationResponse struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Price     float64   `json:"price"`
	GST       float64   `json:"gst"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewQuotationResponse converts a domain quotation.
func NewQuotationResponse(q *domain.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:        q.ID,
		Product:   q.Product.String(),
		Quantity:  q.Quantity,
		UnitPrice: q.UnitPrice,
		Price:     q.Price,
		GST:       q.GST,
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// NewQuotationListResponse converts a list, never returning nil so the body is [] when empty.
func NewQuotationListResponse(qs []domain.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for i := range qs {
		out = append(out, NewQuotationResponse(&qs[i]))
	}

	return out
}

// DeleteQuotationResponse confirms a delete and echoes the removed record.
type DeleteQuotationResponse struct {
	Message          string            `json:"message"`
	DeletedQuotation QuotationResponse `json:"deletedQuotation"`
}

// PreviewResponse is the priced draft returned by the preview endpoint.
type PreviewResponse struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"`
	GST       float64 `json:"gst"`
	Total     float64 `json:"total"`
}

// NewPreviewResponse combines the draft with its pricing.
func NewPreviewResponse(d domain.Draft, line domain.LinePricing) PreviewResponse {
	return PreviewResponse{
		Product:   d.Product.String(),
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		Price:     line.Price,
		GST:       line.GST,
		Total:     line.Total,
	}
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	Product   string  `json:"product"`
	UnitPrice float64 `json:"unitPrice"`
}

// NewProductListResponse converts the catalog.
func NewProductListResponse(items []domain.CatalogItem) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProductResponse{Product: it.Product.String(), UnitPrice: it.UnitPrice})
	}

	return out
}
