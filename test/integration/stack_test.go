//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/cctv-quotations/internal/adapters/http"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/handlers"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/pdf"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/memory"
	"github.com/jsamuelsen/cctv-quotations/internal/app"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stack is the whole service wired in process the way cmd/service wires it,
// served over a real listener.
type stack struct {
	server   *httptest.Server
	registry *prometheus.Registry
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newStack serves repo through the full router. A nil repo uses a fresh
// memory store.
func newStack(tb testing.TB, repo ports.QuotationRepository) *stack {
	tb.Helper()

	if repo == nil {
		repo = memory.New()
	}

	registry := prometheus.NewRegistry()

	metrics, err := app.NewMetrics(registry)
	require.NoError(tb, err)

	service := app.NewQuotationService(app.QuotationServiceConfig{
		Repository: repo,
		Exporter:   pdf.New(pdf.Config{Title: "CCTV Quotations", Currency: "Rs."}),
		Metrics:    metrics,
		Logger:     discardLogger(),
	})

	health := ports.NewHealthRegistry()
	if checker, ok := repo.(ports.HealthChecker); ok {
		require.NoError(tb, health.Register(checker))
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:           discardLogger(),
		AppConfig:        &config.AppConfig{Name: "cctv-quotations", Version: "test", Environment: "test"},
		CORS:             &config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		HealthHandler:    handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "none", "now"), registry),
		QuotationHandler: handlers.NewQuotationHandler(service),
		Timeout:          5 * time.Second,
	})

	server := httptest.NewServer(engine)
	tb.Cleanup(server.Close)

	return &stack{server: server, registry: registry}
}

// client returns an ACL client pointed at the stack.
func (s *stack) client(tb testing.TB, maxAttempts int) *acl.QuotationClient {
	tb.Helper()

	httpClient, err := clients.New(&clients.Config{
		ServiceName: "quotations-api",
		BaseURL:     s.server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     maxAttempts,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Logger: discardLogger(),
	})
	require.NoError(tb, err)

	return acl.NewQuotationClient(acl.QuotationClientConfig{Client: httpClient, Logger: discardLogger()})
}

// operations reads quotations_operations_total for one operation and result.
func (s *stack) operations(tb testing.TB, op, result string) float64 {
	tb.Helper()

	families, err := s.registry.Gather()
	require.NoError(tb, err)

	for _, mf := range families {
		if mf.GetName() != "quotations_operations_total" {
			continue
		}

		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}

			if labels["operation"] == op && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}
