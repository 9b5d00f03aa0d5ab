package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrOperationFailed = errors.New("la operación remota simulada falló")
	ErrNoData          = errors.New("no hay datos para exportar")
)
