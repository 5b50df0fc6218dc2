package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/dto"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
)

// Timeout returns middleware that bounds each request with a context deadline.
// Store calls observe the deadline. If it expired and the handler wrote
// nothing, the client gets a 504 TIMEOUT envelope.
// Paths in skipPaths run without a deadline.
func Timeout(timeout time.Duration, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok || timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request timeout",
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.Duration("timeout", timeout),
		)

		if !c.Writer.Written() {
			dto.AbortWithErrorCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
		}
	}
}
