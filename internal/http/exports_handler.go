package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/service"
)

// ExportsHandler serves the export log.
type ExportsHandler struct {
	log service.ExportLogService
}

// NewExportsHandler creates an ExportsHandler. A nil log makes every
// request fail with ErrExportLogDisabled.
func NewExportsHandler(log service.ExportLogService) *ExportsHandler {
	return &ExportsHandler{log: log}
}

// ListExports handles GET /api/exports requests.
//
// @Summary      List recorded exports
// @Description  Returns recorded CSV and WhatsApp exports, newest first. Requires MongoDB.
// @Tags         Exports
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Param        order_id query string false "Filter by order ID"
// @Param        channel query string false "Filter by channel" Enums(csv, whatsapp)
// @Param        limit query int false "Page size (default 50, max 500)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.ExportListResponse} "Page of exports"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Export log unavailable"
// @Security     ApiKeyAuth
// @Router       /api/exports [get]
func (h *ExportsHandler) ListExports(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.log == nil {
		builder.Fail(ErrExportLogDisabled)
		return
	}

	query, err := BindQueryAndValidate[dto.ListExportsQuery](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	ctx := c.Request.Context()
	opts := query.Options()

	records, err := h.log.List(ctx, opts)
	if err != nil {
		builder.Fail(err)
		return
	}

	total, err := h.log.Count(ctx, opts)
	if err != nil {
		builder.Fail(err)
		return
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = service.DefaultExportQueryLimit
	}
	if limit > service.MaxExportQueryLimit {
		limit = service.MaxExportQueryLimit
	}

	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}
	if records == nil {
		records = []model.ExportRecord{}
	}

	builder.SuccessOK(dto.ExportListResponse{
		Exports: records,
		Total:   total,
		Limit:   limit,
		Skip:    skip,
	})
}
