package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/application/notify"
)

// NotificationHandler expone la cola de notificaciones activas del panel.
type NotificationHandler struct {
	queue *notify.Queue
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(queue *notify.Queue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List godoc
// @Summary      Listar notificaciones activas (más antigua primero)
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationDTO
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToNotificationDTOs(h.queue.List()))
}

// Dismiss godoc
// @Summary      Descartar una notificación
// @Tags         notifications
// @Param        id  path  string  true  "ID de la notificación"
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	// Remove es idempotente: descartar un ID ya expirado no es un error
	h.queue.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Descartar todas las notificaciones activas
// @Tags         notifications
// @Router       /api/notifications [delete]
func (h *NotificationHandler) Clear(c *fiber.Ctx) error {
	h.queue.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
