// Package analytics contiene los casos de uso de solo lectura que alimentan
// los widgets del panel: salud de la red de centros, resumen de incidencias e
// impacto económico de los movimientos.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-panel-api/internal/application/dto"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// MovementReader acceso de lectura al store de movimientos.
type MovementReader interface {
	Movements() []entity.Movement
	PendingCount() int
}

// CenterLister acceso de lectura a la red de centros.
type CenterLister interface {
	List() []entity.DistributionCenter
}

// DashboardUseCase agrega los resúmenes del panel. Todas las consultas son
// puras sobre el estado actual; nunca mutan nada.
type DashboardUseCase struct {
	centers CenterLister
	reader  MovementReader
	issues  []entity.Issue
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(centers CenterLister, reader MovementReader, issues []entity.Issue) *DashboardUseCase {
	return &DashboardUseCase{centers: centers, reader: reader, issues: issues}
}

// NetworkHealth resume el estado de la red: ocupación por centro y conteos
// por estado de salud.
func (uc *DashboardUseCase) NetworkHealth() dto.NetworkHealthDTO {
	out := dto.NetworkHealthDTO{}
	for _, dc := range uc.centers.List() {
		out.Centers = append(out.Centers, dto.CenterHealthDTO{
			ID:          dc.ID,
			Name:        dc.Name,
			Code:        dc.Code,
			Status:      dc.Status,
			Utilization: dc.Utilization(),
			Orders:      dc.Details.Orders,
			OpenIssues:  dc.Details.Issues,
		})
		switch dc.Status {
		case entity.DCStatusHealthy:
			out.Healthy++
		case entity.DCStatusWarning:
			out.Warning++
		case entity.DCStatusCritical:
			out.Critical++
		}
		out.TotalOpenIssues += dc.Details.Issues
	}
	return out
}

// IssuesSummary agrupa las incidencias por origen (pedidos, recepciones,
// inventario) con conteos por severidad y unidades afectadas.
func (uc *DashboardUseCase) IssuesSummary() dto.IssuesSummaryDTO {
	groups := map[string]*dto.IssueGroupDTO{}
	order := []string{entity.IssueGroupOrders, entity.IssueGroupInbound, entity.IssueGroupInventory}
	for _, g := range order {
		groups[g] = &dto.IssueGroupDTO{Group: g}
	}

	for _, issue := range uc.issues {
		g, ok := groups[issue.Group]
		if !ok {
			continue
		}
		g.Total++
		g.Affected += issue.Affected
		switch issue.Severity {
		case entity.PriorityHigh:
			g.High++
		case entity.PriorityMedium:
			g.Medium++
		case entity.PriorityLow:
			g.Low++
		}
	}

	out := dto.IssuesSummaryDTO{}
	for _, g := range order {
		out.Groups = append(out.Groups, *groups[g])
		out.Total += groups[g].Total
	}
	return out
}

// MovementImpact totaliza el ahorro estimado de los movimientos activos,
// separando lo aún pendiente de decisión.
func (uc *DashboardUseCase) MovementImpact() dto.MovementImpactDTO {
	total := decimal.Zero
	pending := decimal.Zero
	count := 0
	for _, m := range uc.reader.Movements() {
		total = total.Add(m.EstimatedSavings)
		if m.Status == entity.MovementStatusPending {
			pending = pending.Add(m.EstimatedSavings)
		}
		count++
	}
	return dto.MovementImpactDTO{
		Movements:      count,
		PendingCount:   uc.reader.PendingCount(),
		TotalSavings:   total,
		PendingSavings: pending,
	}
}
