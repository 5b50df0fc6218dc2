package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/dto"
)

// notFound answers unknown routes with the standard error envelope.
func notFound(c *gin.Context) {
	dto.AbortWithErrorCode(c, dto.ErrorCodeNotFound, "route "+c.Request.Method+" "+c.Request.URL.Path+" not found")
}

// methodNotAllowed answers known paths called with an unsupported method.
// gin has already set the Allow header.
func methodNotAllowed(c *gin.Context) {
	dto.AbortWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed on "+c.Request.URL.Path)
}
