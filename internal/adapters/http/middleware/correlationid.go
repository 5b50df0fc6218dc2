package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header name for correlation ID.
	// quotectl sends one per command so every request it makes can be found together.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates or starts a correlation ID.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrichers:  []contextEnricher{logging.WithCorrelationID, ContextWithCorrelationID},
	})
}

// GetCorrelationID extracts the correlation ID from the gin.Context.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
