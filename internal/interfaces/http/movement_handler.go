package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/application/movements"
	"github.com/jhoicas/logistics-panel-api/internal/domain"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/metrics"
)

// MovementHandler maneja las peticiones HTTP del panel de movimientos.
type MovementHandler struct {
	store     *movements.Store
	projector *movements.Projector
	resolver  dto.NameResolver
	validate  *validator.Validate
	metrics   *metrics.Metrics
}

// NewMovementHandler construye el handler.
func NewMovementHandler(store *movements.Store, projector *movements.Projector, resolver dto.NameResolver, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{
		store:     store,
		projector: projector,
		resolver:  resolver,
		validate:  validator.New(),
		metrics:   m,
	}
}

// List godoc
// @Summary      Listar movimientos (vista filtrada y ordenada)
// @Tags         movements
// @Produce      json
// @Param        search    query  string  false  "Búsqueda por SKU, descripción o centro"
// @Param        status    query  string  false  "all|pending|approved|rejected"  default(all)
// @Param        priority  query  string  false  "all|high|medium|low"            default(all)
// @Param        sort_by   query  string  false  "Clave de orden"                 default(createdAt)
// @Param        sort_dir  query  string  false  "asc|desc"                       default(desc)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementFilterQuery
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	params := paramsFromQuery(in)
	view := h.projector.Project(h.store.Movements(), params)

	return c.JSON(dto.MovementListResponse{
		Movements:    dto.ToMovementDTOs(view, h.resolver),
		Total:        len(view),
		PendingCount: h.store.PendingCount(),
		Loading:      h.store.Loading(),
		Error:        h.store.Err(),
	})
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	m, ok := h.store.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(dto.ToMovementDTO(m, h.resolver))
}

// Approve godoc
// @Summary      Aprobar un movimiento pendiente
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.ActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/approve [post]
func (h *MovementHandler) Approve(c *fiber.Ctx) error {
	res := h.store.Approve(c.Context(), c.Params("id"))
	h.metrics.RecordOperation("approve", res.Success)
	return respondAction(c, res)
}

// Reject godoc
// @Summary      Rechazar un movimiento y retirarlo de la vista
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.ActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/reject [post]
func (h *MovementHandler) Reject(c *fiber.Ctx) error {
	res := h.store.Reject(c.Context(), c.Params("id"))
	h.metrics.RecordOperation("reject", res.Success)
	return respondAction(c, res)
}

// ClearError godoc
// @Summary      Limpiar el último error registrado por el store
// @Tags         movements
// @Router       /api/movements/error [delete]
func (h *MovementHandler) ClearError(c *fiber.Ctx) error {
	h.store.ClearError()
	return c.SendStatus(fiber.StatusNoContent)
}

// respondAction mapea el desenlace de una operación del store al código HTTP.
// Un fallo del backend simulado no es un error del cliente: se responde 200
// con success=false, igual que el panel lo mostraría.
func respondAction(c *fiber.Ctx, res movements.Result) error {
	switch {
	case errors.Is(res.Kind, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: res.Message})
	case errors.Is(res.Kind, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: res.Message})
	case errors.Is(res.Kind, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: res.Message})
	}
	return c.JSON(dto.ActionResponse{Success: res.Success, Message: res.Message})
}

// paramsFromQuery arma los parámetros de la proyección partiendo de los
// valores por defecto de la vista.
func paramsFromQuery(in dto.MovementFilterQuery) movements.Params {
	params := movements.DefaultParams()
	params.Search = in.Search
	if in.Status != "" {
		params.Status = in.Status
	}
	if in.Priority != "" {
		params.Priority = in.Priority
	}
	if in.SortBy != "" {
		params.SortBy = in.SortBy
	}
	if in.SortDir != "" {
		params.SortDir = in.SortDir
	}
	return params
}
