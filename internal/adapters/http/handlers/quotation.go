package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/http/dto"
	"github.com/jsamuelsen/cctv-quotations/internal/app"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/logging"
)

// QuotationHandler serves the quotation CRUD, preview, catalog and export endpoints.
type QuotationHandler struct {
	service *app.QuotationService
	now     func() time.Time
}

// NewQuotationHandler creates a quotation handler.
func NewQuotationHandler(service *app.QuotationService) *QuotationHandler {
	return &QuotationHandler{
		service: service,
		now:     time.Now,
	}
}

// withQuotationID tags the request logger with the path id.
func withQuotationID(c *gin.Context) (context.Context, string) {
	id := c.Param("id")
	return logging.WithQuotationID(c.Request.Context(), id), id
}

// Create handles POST /api/v1/quotations.
//
// @Summary Create a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	d, err := req.Draft()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", c.FullPath()+"/"+q.ID)
	c.JSON(http.StatusCreated, dto.NewQuotationResponse(q))
}

// List handles GET /api/v1/quotations. Records are returned newest first.
func (h *QuotationHandler) List(c *gin.Context) {
	qs, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationListResponse(qs))
}

// Get handles GET /api/v1/quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	ctx, id := withQuotationID(c)

	q, err := h.service.Get(ctx, id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q))
}

// Update handles PUT /api/v1/quotations/:id. Omitted fields keep their stored value.
func (h *QuotationHandler) Update(c *gin.Context) {
	ctx, id := withQuotationID(c)

	var req dto.UpdateQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	q, err := h.service.Update(ctx, id, req.Patch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(q))
}

// Delete handles DELETE /api/v1/quotations/:id.
func (h *QuotationHandler) Delete(c *gin.Context) {
	ctx, id := withQuotationID(c)

	q, err := h.service.Delete(ctx, id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuotationResponse{
		Message:          dto.DeletedMessage,
		DeletedQuotation: dto.NewQuotationResponse(q),
	})
}

// Preview handles POST /api/v1/quotations/preview. Nothing is stored.
func (h *QuotationHandler) Preview(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	d, err := req.Draft()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	line, err := h.service.Preview(d)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPreviewResponse(d, line))
}

// Products handles GET /api/v1/products.
func (h *QuotationHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewProductListResponse(h.service.Catalog()))
}

// Export handles GET /api/v1/exports/quotations.pdf.
func (h *QuotationHandler) Export(c *gin.Context) {
	doc, err := h.service.Export(c.Request.Context())
	if errors.Is(err, app.ErrExportDisabled) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, err.Error())
		return
	}

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("quotations-%s.pdf", h.now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, h.service.ExportContentType(), doc)
}

// RegisterQuotationRoutes registers quotation routes on the given router group.
func (h *QuotationHandler) RegisterQuotationRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	quotations.POST("", h.Create)
	quotations.GET("", h.List)
	quotations.POST("/preview", h.Preview)
	quotations.GET("/:id", h.Get)
	quotations.PUT("/:id", h.Update)
	quotations.DELETE("/:id", h.Delete)

	rg.GET("/products", h.Products)
	rg.GET("/exports/quotations.pdf", h.Export)
}
