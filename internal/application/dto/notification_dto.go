package dto

import (
	"time"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// NotificationDTO representación de una notificación activa.
type NotificationDTO struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	CreatedAt  time.Time `json:"created_at"`
	DurationMs int64     `json:"duration_ms"` // 0 = sin expiración automática
}

// ToNotificationDTOs mapea la lista de notificaciones activas.
func ToNotificationDTOs(list []entity.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationDTO{
			ID:         n.ID,
			Message:    n.Message,
			Severity:   n.Severity,
			CreatedAt:  n.CreatedAt,
			DurationMs: n.Duration.Milliseconds(),
		})
	}
	return out
}
