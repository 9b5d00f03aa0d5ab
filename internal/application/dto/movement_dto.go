package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// MovementFilterQuery parámetros de filtrado/ordenamiento de GET /api/movements.
type MovementFilterQuery struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all pending approved rejected"`
	Priority string `query:"priority" validate:"omitempty,oneof=all high medium low"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=createdAt requiredBy sku description quantity estimatedSavings priority status originDC destinationDC"`
	SortDir  string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// MovementDTO representación de un movimiento para el panel, con los nombres
// de centro ya resueltos.
type MovementDTO struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Description      string          `json:"description"`
	Category         string          `json:"category,omitempty"`
	Quantity         int             `json:"quantity"`
	EstimatedSavings decimal.Decimal `json:"estimated_savings"`
	Priority         string          `json:"priority"`
	OriginDC         string          `json:"origin_dc"`
	OriginName       string          `json:"origin_name"`
	DestinationDC    string          `json:"destination_dc"`
	DestinationName  string          `json:"destination_name"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	RequiredBy       time.Time       `json:"required_by"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
}

// MovementListResponse respuesta de GET /api/movements: la proyección más el
// estado observable del store.
type MovementListResponse struct {
	Movements    []MovementDTO `json:"movements"`
	Total        int           `json:"total"`
	PendingCount int           `json:"pending_count"`
	Loading      bool          `json:"loading"`
	Error        string        `json:"error,omitempty"`
}

// NameResolver resuelve IDs de centros a nombres para armar los DTOs.
type NameResolver interface {
	ResolveName(id string) string
}

// ToMovementDTO mapea la entidad al DTO del panel.
func ToMovementDTO(m entity.Movement, resolver NameResolver) MovementDTO {
	d := MovementDTO{
		ID:               m.ID,
		SKU:              m.SKU,
		Description:      m.Description,
		Category:         m.Category,
		Quantity:         m.Quantity,
		EstimatedSavings: m.EstimatedSavings,
		Priority:         m.Priority,
		OriginDC:         m.OriginDC,
		OriginName:       m.OriginDC,
		DestinationDC:    m.DestinationDC,
		DestinationName:  m.DestinationDC,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		RequiredBy:       m.RequiredBy,
		ApprovedAt:       m.ApprovedAt,
	}
	if resolver != nil {
		d.OriginName = resolver.ResolveName(m.OriginDC)
		d.DestinationName = resolver.ResolveName(m.DestinationDC)
	}
	return d
}

// ToMovementDTOs mapea la proyección completa.
func ToMovementDTOs(list []entity.Movement, resolver NameResolver) []MovementDTO {
	out := make([]MovementDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementDTO(m, resolver))
	}
	return out
}
