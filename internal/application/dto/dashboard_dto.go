package dto

import "github.com/shopspring/decimal"

// NetworkHealthDTO respuesta de GET /api/dashboard/network-health.
type NetworkHealthDTO struct {
	Centers         []CenterHealthDTO `json:"centers"`
	Healthy         int               `json:"healthy"`
	Warning         int               `json:"warning"`
	Critical        int               `json:"critical"`
	TotalOpenIssues int               `json:"total_open_issues"`
}

// CenterHealthDTO estado operativo de un centro para el mapa de la red.
type CenterHealthDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Status      string  `json:"status"`
	Utilization float64 `json:"utilization"` // fracción de la capacidad máxima
	Orders      int     `json:"orders"`
	OpenIssues  int     `json:"open_issues"`
}

// IssuesSummaryDTO respuesta de GET /api/dashboard/issues.
type IssuesSummaryDTO struct {
	Groups []IssueGroupDTO `json:"groups"`
	Total  int             `json:"total"`
}

// IssueGroupDTO conteos de un grupo de incidencias (orders, inbound, inventory).
type IssueGroupDTO struct {
	Group    string `json:"group"`
	Total    int    `json:"total"`
	High     int    `json:"high"`
	Medium   int    `json:"medium"`
	Low      int    `json:"low"`
	Affected int    `json:"affected"` // pedidos, envíos o SKUs según el grupo
}

// MovementImpactDTO respuesta de GET /api/dashboard/impact.
type MovementImpactDTO struct {
	Movements      int             `json:"movements"`
	PendingCount   int             `json:"pending_count"`
	TotalSavings   decimal.Decimal `json:"total_savings"`
	PendingSavings decimal.Decimal `json:"pending_savings"`
}
