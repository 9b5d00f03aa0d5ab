package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-panel-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de los widgets del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// NetworkHealth godoc
// @Summary      Salud de la red de centros de distribución
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.NetworkHealthDTO
// @Router       /api/dashboard/network-health [get]
func (h *DashboardHandler) NetworkHealth(c *fiber.Ctx) error {
	return c.JSON(h.uc.NetworkHealth())
}

// Issues godoc
// @Summary      Resumen de incidencias por grupo y severidad
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.IssuesSummaryDTO
// @Router       /api/dashboard/issues [get]
func (h *DashboardHandler) Issues(c *fiber.Ctx) error {
	return c.JSON(h.uc.IssuesSummary())
}

// Impact godoc
// @Summary      Impacto económico de los movimientos activos
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.MovementImpactDTO
// @Router       /api/dashboard/impact [get]
func (h *DashboardHandler) Impact(c *fiber.Ctx) error {
	return c.JSON(h.uc.MovementImpact())
}
