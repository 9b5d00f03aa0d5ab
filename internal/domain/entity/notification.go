package entity

import "time"

// Severidades de una notificación del panel.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Notification es un mensaje transitorio para el usuario del panel.
// Las notificaciones con Duration cero no expiran solas: deben descartarse
// explícitamente o con un Clear.
type Notification struct {
	ID        string
	Message   string // siempre recortado y no vacío
	Severity  string // success, error, warning, info
	CreatedAt time.Time
	Duration  time.Duration // 0 = sin expiración automática
}
