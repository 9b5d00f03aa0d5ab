package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un movimiento de inventario entre centros de distribución.
const (
	MovementStatusPending  = "pending"  // esperando decisión
	MovementStatusApproved = "approved" // aprobado por operaciones
	MovementStatusRejected = "rejected" // rechazado y retirado de la colección
)

// Niveles de prioridad de un movimiento.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Movement representa una propuesta de traslado de inventario entre dos
// centros de distribución, pendiente de aprobación o rechazo.
//
// El ID es inmutable una vez creado. Las únicas transiciones válidas de
// Status son pending→approved y pending→rejected; un movimiento rechazado
// sale de la colección activa en lugar de quedar marcado.
type Movement struct {
	ID               string
	SKU              string
	Description      string
	Category         string // opcional
	Quantity         int    // siempre positivo
	EstimatedSavings decimal.Decimal
	Priority         string // high, medium, low
	OriginDC         string // ID del centro de distribución origen
	DestinationDC    string // ID del centro de distribución destino
	Status           string // pending, approved, rejected
	CreatedAt        time.Time
	RequiredBy       time.Time
	ApprovedAt       *time.Time // solo presente tras aprobar
}

// IsPending indica si el movimiento aún espera decisión.
func (m *Movement) IsPending() bool { return m.Status == MovementStatusPending }

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	return s == MovementStatusPending || s == MovementStatusApproved || s == MovementStatusRejected
}

// ValidPriority indica si p es una prioridad conocida.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}
