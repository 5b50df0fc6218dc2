package acl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
)

const storedCamera = `{"id":"q-1","product":"Camera","quantity":2,"unitPrice":2500,"price":5000,"gst":900,"total":5900,` +
	`"createdAt":"2026-10-17T09:00:00Z","updatedAt":"2026-10-17T09:00:00Z"}`

// newTestQuotationClient serves mux and returns a client with retries disabled.
func newTestQuotationClient(t *testing.T, mux *http.ServeMux) *QuotationClient {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "quotations-api",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	})
	require.NoError(t, err)

	return NewQuotationClient(QuotationClientConfig{Client: client})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewQuotationClient_RequiresClient(t *testing.T) {
	assert.Panics(t, func() { NewQuotationClient(QuotationClientConfig{}) })
}

func TestQuotationClient_Create(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/quotations", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, `{}`)
			return
		}

		if body["product"] != "Camera" || body["quantity"] != float64(2) || body["unitPrice"] != float64(2500) {
			writeJSON(w, http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST","message":"unexpected body"}}`)
			return
		}

		writeJSON(w, http.StatusCreated, storedCamera)
	})

	c := newTestQuotationClient(t, mux)

	q, err := c.Create(context.Background(), domain.Draft{Product: domain.ProductCamera, Quantity: 2, UnitPrice: 2500})
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.ID)
	assert.InDelta(t, 900, q.GST, 0.001)
	assert.InDelta(t, 5900, q.Total, 0.001)
}

func TestQuotationClient_CreateValidation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/quotations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest,
			`{"error":{"code":"VALIDATION_ERROR","message":"request validation failed","details":{"quantity":"Quantity must be at least 1"}}}`)
	})

	c := newTestQuotationClient(t, mux)

	_, err := c.Create(context.Background(), domain.Draft{Product: domain.ProductCamera})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Quantity must be at least 1")
}

func TestQuotationClient_List(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/quotations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, "["+storedCamera+"]")
	})

	c := newTestQuotationClient(t, mux)

	qs, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, domain.ProductCamera, qs[0].Product)
}

func TestQuotationClient_ListUnknownProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/quotations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"q-9","product":"Drone","quantity":1}]`)
	})

	c := newTestQuotationClient(t, mux)

	_, err := c.List(context.Background())
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuotationClient_GetNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/quotations/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":{"code":"NOT_FOUND","message":"quotation `+r.PathValue("id")+` not found"}}`)
	})

	c := newTestQuotationClient(t, mux)

	_, err := c.Get(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestQuotationClient_Update(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/quotations/{id}", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if string(raw) != `{"quantity":3}` || r.PathValue("id") != "q-1" {
			writeJSON(w, http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST","message":"`+string(raw)+`"}}`)
			return
		}

		writeJSON(w, http.StatusOK, `{"id":"q-1","product":"Camera","quantity":3,"unitPrice":2500,"price":7500,"gst":1350,"total":8850}`)
	})

	c := newTestQuotationClient(t, mux)

	qty := 3
	q, err := c.Update(context.Background(), "q-1", domain.Patch{Quantity: &qty})
	require.NoError(t, err)
	assert.InDelta(t, 8850, q.Total, 0.001)
}

func TestQuotationClient_Delete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/quotations/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"message":"Quotation deleted successfully","deletedQuotation":`+storedCamera+`}`)
	})

	c := newTestQuotationClient(t, mux)

	q, err := c.Delete(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.ID)
}

func TestQuotationClient_PreviewAndCatalog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/quotations/preview", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"product":"DVR","quantity":2,"unitPrice":3200,"price":6400,"gst":1152,"total":7552}`)
	})
	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[{"product":"Camera","unitPrice":2500},{"product":"Monitor","unitPrice":4500},{"product":"DVR","unitPrice":3200}]`)
	})

	c := newTestQuotationClient(t, mux)
	ctx := context.Background()

	line, err := c.Preview(ctx, domain.Draft{Product: domain.ProductDVR, Quantity: 2, UnitPrice: 3200})
	require.NoError(t, err)
	assert.Equal(t, domain.LinePricing{Price: 6400, GST: 1152, Total: 7552}, line)

	items, err := c.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Catalog(), items)
}

func TestQuotationClient_Export(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/exports/quotations.pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.3 test")
	})

	c := newTestQuotationClient(t, mux)

	doc, err := c.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 test", string(doc))
}

func TestQuotationClient_ExportWrongContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/exports/quotations.pdf", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	c := newTestQuotationClient(t, mux)

	_, err := c.Export(context.Background())
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuotationClient_ExportDisabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/exports/quotations.pdf", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":{"code":"NOT_FOUND","message":"export is not configured"}}`)
	})

	c := newTestQuotationClient(t, mux)

	_, err := c.Export(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "export is not configured")
	assert.NotContains(t, err.Error(), "quotation not found")
}

func TestQuotationClient_Check(t *testing.T) {
	var notReady atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /-/ready", func(w http.ResponseWriter, _ *http.Request) {
		if notReady.Load() {
			writeJSON(w, http.StatusServiceUnavailable, `{"status":"not ready"}`)
			return
		}

		writeJSON(w, http.StatusOK, `{"status":"ready"}`)
	})

	c := newTestQuotationClient(t, mux)

	assert.Equal(t, "quotations-api", c.Name())
	require.NoError(t, c.Check(context.Background()))

	notReady.Store(true)
	assert.True(t, domain.IsUnavailable(c.Check(context.Background())))
}
