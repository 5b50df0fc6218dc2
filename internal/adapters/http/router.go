package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/handlers"
	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/middleware"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/config"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig names the service in spans.
	AppConfig *config.AppConfig

	// CORS lists the allowed browser origins. Nil allows any origin.
	CORS *config.CORSConfig

	// HealthHandler handles the /-/ probe and metrics endpoints.
	HealthHandler *handlers.HealthHandler

	// QuotationHandler handles the quotation API. Nil leaves /api/v1 empty.
	QuotationHandler *handlers.QuotationHandler

	// Timeout bounds each /api/v1 request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing, then metrics and X-Trace-ID
//  5. Logging (skips /-/ probes)
//  6. CORS
//  7. Timeout on /api/v1 only
//
// Unknown routes return NOT_FOUND and unsupported methods METHOD_NOT_ALLOWED,
// both in the error envelope.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "cctv-quotations"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	var origins []string
	if cfg.CORS != nil {
		origins = cfg.CORS.AllowedOrigins
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
		middleware.CORS(origins),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.QuotationHandler != nil {
		cfg.QuotationHandler.RegisterQuotationRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default request timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	quotationHandler *handlers.QuotationHandler,
) RouterConfig {
	return RouterConfig{
		Logger:           logger,
		AppConfig:        appCfg,
		HealthHandler:    healthHandler,
		QuotationHandler: quotationHandler,
		Timeout:          DefaultRequestTimeout,
	}
}
