package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

const (
	quotationsPath = "/api/v1/quotations"
	productsPath   = "/api/v1/products"
	exportPath     = "/api/v1/exports/quotations.pdf"
	readyPath      = "/-/ready"

	maxExportSize = 32 << 20
)

var (
	_ ports.QuotationAPI  = (*QuotationClient)(nil)
	_ ports.HealthChecker = (*QuotationClient)(nil)
)

// QuotationClientConfig contains configuration for the quotation client.
type QuotationClientConfig struct {
	// Client must have its BaseURL set to the API root.
	Client *clients.Client

	Logger *slog.Logger
}

// QuotationClient implements ports.QuotationAPI over the REST API.
type QuotationClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewQuotationClient creates a quotation client. It panics without a client.
func NewQuotationClient(cfg QuotationClientConfig) *QuotationClient {
	if cfg.Client == nil {
		panic("acl: QuotationClient requires a client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotationClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger.With(slog.String("component", "acl.QuotationClient")),
	}
}

func quotationPath(id string) string {
	return quotationsPath + "/" + url.PathEscape(id)
}

// Create posts a new quotation.
func (c *QuotationClient) Create(ctx context.Context, d domain.Draft) (*domain.Quotation, error) {
	resp, err := c.call(ctx, http.MethodPost, quotationsPath, newDraftWire(d), "create quotation", "")
	if err != nil {
		return nil, err
	}

	return c.decodeQuotation(ctx, resp, "create quotation")
}

// List returns every quotation, newest first.
func (c *QuotationClient) List(ctx context.Context) ([]domain.Quotation, error) {
	resp, err := c.call(ctx, http.MethodGet, quotationsPath, nil, "list quotations", "")
	if err != nil {
		return nil, err
	}

	wire, err := decode[[]quotationWire](&c.BaseAdapter, resp, "list quotations")
	if err != nil {
		return nil, err
	}

	qs, err := TranslateSlice(*wire, translateQuotation)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.logger.Log(ctx, logging.LevelTrace, "listed quotations", slog.Int("count", len(qs)))

	return qs, nil
}

// Get fetches one quotation.
func (c *QuotationClient) Get(ctx context.Context, id string) (*domain.Quotation, error) {
	resp, err := c.call(ctx, http.MethodGet, quotationPath(id), nil, "get quotation", id)
	if err != nil {
		return nil, err
	}

	return c.decodeQuotation(ctx, resp, "get quotation")
}

// Update applies a partial update.
func (c *QuotationClient) Update(ctx context.Context, id string, p domain.Patch) (*domain.Quotation, error) {
	resp, err := c.call(ctx, http.MethodPut, quotationPath(id), newPatchWire(p), "update quotation", id)
	if err != nil {
		return nil, err
	}

	return c.decodeQuotation(ctx, resp, "update quotation")
}

// Delete removes a quotation and returns the deleted record.
func (c *QuotationClient) Delete(ctx context.Context, id string) (*domain.Quotation, error) {
	resp, err := c.call(ctx, http.MethodDelete, quotationPath(id), nil, "delete quotation", id)
	if err != nil {
		return nil, err
	}

	wire, err := decode[deleteWire](&c.BaseAdapter, resp, "delete quotation")
	if err != nil {
		return nil, err
	}

	q, err := translateQuotation(&wire.DeletedQuotation)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.logger.DebugContext(ctx, "quotation deleted", slog.String("quotation_id", q.ID))

	return &q, nil
}

// Preview asks the API to price a draft without storing it.
func (c *QuotationClient) Preview(ctx context.Context, d domain.Draft) (domain.LinePricing, error) {
	resp, err := c.call(ctx, http.MethodPost, quotationsPath+"/preview", newDraftWire(d), "preview quotation", "")
	if err != nil {
		return domain.LinePricing{}, err
	}

	wire, err := decode[previewWire](&c.BaseAdapter, resp, "preview quotation")
	if err != nil {
		return domain.LinePricing{}, err
	}

	return domain.LinePricing{Price: wire.Price, GST: wire.GST, Total: wire.Total}, nil
}

// Catalog returns the products the API quotes.
func (c *QuotationClient) Catalog(ctx context.Context) ([]domain.CatalogItem, error) {
	resp, err := c.call(ctx, http.MethodGet, productsPath, nil, "list products", "")
	if err != nil {
		return nil, err
	}

	wire, err := decode[[]productWire](&c.BaseAdapter, resp, "list products")
	if err != nil {
		return nil, err
	}

	items, err := TranslateSlice(*wire, translateProduct)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	return items, nil
}

// Export downloads the PDF of every quotation.
func (c *QuotationClient) Export(ctx context.Context) ([]byte, error) {
	resp, err := c.call(ctx, http.MethodGet, exportPath, nil, "export quotations", "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("export returned %q", ct))
	}

	doc, err := io.ReadAll(io.LimitReader(resp.Body, maxExportSize))
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), "reading export: "+err.Error())
	}

	c.logger.DebugContext(ctx, "export downloaded", slog.Int("bytes", len(doc)))

	return doc, nil
}

// Name implements ports.HealthChecker.
func (c *QuotationClient) Name() string {
	return c.ServiceName()
}

// Check reports whether the API and its store are ready.
func (c *QuotationClient) Check(ctx context.Context) error {
	resp, err := c.call(ctx, http.MethodGet, readyPath, nil, "readiness check", "")
	if err != nil {
		return err
	}

	return resp.Body.Close()
}

func (c *QuotationClient) decodeQuotation(ctx context.Context, resp *http.Response, operation string) (*domain.Quotation, error) {
	wire, err := decode[quotationWire](&c.BaseAdapter, resp, operation)
	if err != nil {
		return nil, err
	}

	q, err := translateQuotation(wire)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated quotation", slog.String("quotation_id", q.ID))

	return &q, nil
}
