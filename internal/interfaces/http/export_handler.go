package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/application/movements"
	"github.com/jhoicas/logistics-panel-api/internal/domain"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/export"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/metrics"
)

// ExportHandler genera las descargas del reporte de movimientos. El reporte
// refleja exactamente la vista actual: mismos filtros y mismo orden que
// GET /api/movements.
type ExportHandler struct {
	store     *movements.Store
	projector *movements.Projector
	resolver  export.Resolver
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(store *movements.Store, projector *movements.Projector, resolver export.Resolver, m *metrics.Metrics, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{store: store, projector: projector, resolver: resolver, metrics: m, log: log}
}

// Download godoc
// @Summary      Descargar el reporte de movimientos (CSV o PDF)
// @Tags         movements
// @Produce      text/csv
// @Param        format    query  string  false  "csv|pdf"  default(csv)
// @Param        search    query  string  false  "Búsqueda por SKU, descripción o centro"
// @Param        status    query  string  false  "all|pending|approved|rejected"  default(all)
// @Param        priority  query  string  false  "all|high|medium|low"            default(all)
// @Param        sort_by   query  string  false  "Clave de orden"                 default(createdAt)
// @Param        sort_dir  query  string  false  "asc|desc"                       default(desc)
// @Success      200  {string}  string  "archivo adjunto"
// @Success      204  "la vista actual no tiene movimientos"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/export [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	if format != "csv" && format != "pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser csv o pdf"})
	}

	var in dto.MovementFilterQuery
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	view := h.projector.Project(h.store.Movements(), paramsFromQuery(in))

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		payload, err = export.WriteCSV(view, h.resolver)
	case "pdf":
		contentType = "application/pdf"
		payload, err = export.WritePDF(view, h.resolver, "Inventory Movements")
	}
	if err != nil {
		h.metrics.RecordExport(format, false)
		if errors.Is(err, domain.ErrNoData) {
			h.log.Warn().Str("format", format).Msg("exportación sin movimientos en la vista actual")
			return c.SendStatus(fiber.StatusNoContent)
		}
		h.log.Error().Err(err).Str("format", format).Msg("generación del reporte")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	h.metrics.RecordExport(format, true)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(format, time.Now())+`"`)
	return c.Send(payload)
}
