package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// quotationWire is the API's JSON form of a quotation.
type quotationWire struct {
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

type draftWire struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type patchWire struct {
	Product   *string  `json:"product,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

type deleteWire struct {
	Message          string        `json:"message"`
	DeletedQuotation quotationWire `json:"deletedQuotation"`
}

type previewWire struct {
	Price float64 `json:"price"`
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}

type productWire struct {
	Product   string  `json:"product"`
	UnitPrice float64 `json:"unitPrice"`
}

// translateQuotation validates a wire record and converts it. Records naming
// a product this client does not know are rejected.
func translateQuotation(w *quotationWire) (domain.Quotation, error) {
	if w.ID == "" {
		return domain.Quotation{}, domain.NewValidationError("id", "is required")
	}

	product, err := domain.ParseProduct(w.Product)
	if err != nil {
		return domain.Quotation{}, err
	}

	return domain.Quotation{
		ID:        w.ID,
		Product:   product,
		Quantity:  w.Quantity,
		UnitPrice: w.UnitPrice,
		Price:     w.Price,
		GST:       w.GST,
		Total:     w.Total,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, nil
}

func translateProduct(w *productWire) (domain.CatalogItem, error) {
	product, err := domain.ParseProduct(w.Product)
	if err != nil {
		return domain.CatalogItem{}, err
	}

	return domain.CatalogItem{Product: product, UnitPrice: w.UnitPrice}, nil
}

func newDraftWire(d domain.Draft) draftWire {
	return draftWire{Product: d.Product.String(), Quantity: d.Quantity, UnitPrice: d.UnitPrice}
}

func newPatchWire(p domain.Patch) patchWire {
	w := patchWire{Quantity: p.Quantity, UnitPrice: p.UnitPrice, Price: p.Price}
	if p.Product != nil {
		s := p.Product.String()
		w.Product = &s
	}

	return w
}

// Translator converts one wire value into a domain value.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies translate to every item and fails on the first error.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// BaseAdapter sends requests through the client and maps failures to domain
// errors. On success the caller owns the returned body.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{client: client, serviceName: serviceName}
}

// ServiceName returns the name used in unavailable errors.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// call runs one request. method is an HTTP method; payload, when non-nil, is
// sent as JSON. id is used for not found and invalid id errors.
func (a *BaseAdapter) call(ctx context.Context, method, path string, payload any, operation, id string) (*http.Response, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("encoding %s request: %w", operation, err)
		}
	}

	var (
		resp *http.Response
		err  error
	)

	switch method {
	case http.MethodPost:
		resp, err = a.client.Post(ctx, path, body)
	case http.MethodPut:
		resp, err = a.client.Put(ctx, path, body)
	case http.MethodDelete:
		resp, err = a.client.Delete(ctx, path)
	default:
		resp, err = a.client.Get(ctx, path)
	}

	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, id)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation, id)
	}

	return resp, nil
}

// decode reads a successful JSON response into T. A body that does not decode
// means the API is not speaking the expected protocol.
func decode[T any](a *BaseAdapter, resp *http.Response, operation string) (*T, error) {
	v, err := DecodeResponse[T](resp.Body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.serviceName, fmt.Sprintf("%s: %v", operation, err))
	}

	return v, nil
}
