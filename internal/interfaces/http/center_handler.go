package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
	"github.com/jhoicas/logistics-panel-api/internal/infrastructure/seed"
)

// CenterHandler expone la red de centros de distribución (solo lectura).
type CenterHandler struct {
	registry *seed.Registry
}

// NewCenterHandler construye el handler.
func NewCenterHandler(registry *seed.Registry) *CenterHandler {
	return &CenterHandler{registry: registry}
}

// List godoc
// @Summary      Listar centros de distribución
// @Tags         centers
// @Produce      json
// @Success      200  {array}  dto.CenterDTO
// @Router       /api/distribution-centers [get]
func (h *CenterHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToCenterDTOs(h.registry.List()))
}

// GetByID godoc
// @Summary      Obtener un centro de distribución por ID
// @Tags         centers
// @Produce      json
// @Param        id   path  string  true  "ID del centro"
// @Success      200  {object}  dto.CenterDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribution-centers/{id} [get]
func (h *CenterHandler) GetByID(c *fiber.Ctx) error {
	dc, ok := h.registry.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "centro no encontrado"})
	}
	return c.JSON(dto.ToCenterDTOs([]entity.DistributionCenter{dc})[0])
}
