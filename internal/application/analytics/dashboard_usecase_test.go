package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-panel-api/internal/application/analytics"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type stubCenters []entity.DistributionCenter

func (s stubCenters) List() []entity.DistributionCenter { return s }

type stubReader struct {
	list []entity.Movement
}

func (s stubReader) Movements() []entity.Movement { return s.list }

func (s stubReader) PendingCount() int {
	n := 0
	for _, m := range s.list {
		if m.Status == entity.MovementStatusPending {
			n++
		}
	}
	return n
}

func testCenters() stubCenters {
	return stubCenters{
		{ID: "dc-a", Name: "Alpha DC", Code: "A001", Status: entity.DCStatusHealthy,
			Details: entity.DCDetails{Capacity: 50, MaxCapacity: 100, Orders: 300, Issues: 0}},
		{ID: "dc-b", Name: "Beta DC", Code: "B001", Status: entity.DCStatusWarning,
			Details: entity.DCDetails{Capacity: 90, MaxCapacity: 100, Orders: 700, Issues: 4}},
		{ID: "dc-c", Name: "Gamma DC", Code: "C001", Status: entity.DCStatusCritical,
			Details: entity.DCDetails{Capacity: 110, MaxCapacity: 100, Orders: 900, Issues: 7}},
	}
}

func testMovements() stubReader {
	return stubReader{list: []entity.Movement{
		{ID: "mov-a", Status: entity.MovementStatusPending, EstimatedSavings: decimal.NewFromInt(1000)},
		{ID: "mov-b", Status: entity.MovementStatusApproved, EstimatedSavings: decimal.NewFromInt(2500)},
		{ID: "mov-c", Status: entity.MovementStatusPending, EstimatedSavings: decimal.NewFromInt(400)},
	}}
}

func testIssues() []entity.Issue {
	return []entity.Issue{
		{ID: "ord-1", Group: entity.IssueGroupOrders, Severity: entity.PriorityHigh, Affected: 10},
		{ID: "ord-2", Group: entity.IssueGroupOrders, Severity: entity.PriorityLow, Affected: 2},
		{ID: "inb-1", Group: entity.IssueGroupInbound, Severity: entity.PriorityMedium, Affected: 5},
		{ID: "inv-1", Group: entity.IssueGroupInventory, Severity: entity.PriorityHigh, Affected: 3},
		{ID: "inv-2", Group: entity.IssueGroupInventory, Severity: entity.PriorityMedium, Affected: 1},
		// Grupo desconocido: se ignora
		{ID: "x-1", Group: "returns", Severity: entity.PriorityHigh, Affected: 99},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NetworkHealth
// ──────────────────────────────────────────────────────────────────────────────

func TestNetworkHealth_ConteosPorEstado(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), nil)

	out := uc.NetworkHealth()

	assert.Equal(t, 1, out.Healthy)
	assert.Equal(t, 1, out.Warning)
	assert.Equal(t, 1, out.Critical)
	assert.Equal(t, 11, out.TotalOpenIssues)
	require.Len(t, out.Centers, 3)
}

func TestNetworkHealth_OcupacionPorCentro(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), nil)

	out := uc.NetworkHealth()

	require.Len(t, out.Centers, 3)
	assert.InDelta(t, 0.5, out.Centers[0].Utilization, 0.0001)
	assert.InDelta(t, 1.1, out.Centers[2].Utilization, 0.0001,
		"un centro crítico puede exceder su capacidad máxima")
}

// ──────────────────────────────────────────────────────────────────────────────
// IssuesSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestIssuesSummary_AgrupaPorOrigenEnOrdenFijo(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), testIssues())

	out := uc.IssuesSummary()

	require.Len(t, out.Groups, 3)
	assert.Equal(t, entity.IssueGroupOrders, out.Groups[0].Group)
	assert.Equal(t, entity.IssueGroupInbound, out.Groups[1].Group)
	assert.Equal(t, entity.IssueGroupInventory, out.Groups[2].Group)
	assert.Equal(t, 5, out.Total, "el grupo desconocido no cuenta")
}

func TestIssuesSummary_ConteosPorSeveridad(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), testIssues())

	out := uc.IssuesSummary()

	orders := out.Groups[0]
	assert.Equal(t, 2, orders.Total)
	assert.Equal(t, 1, orders.High)
	assert.Equal(t, 0, orders.Medium)
	assert.Equal(t, 1, orders.Low)
	assert.Equal(t, 12, orders.Affected)

	inventory := out.Groups[2]
	assert.Equal(t, 2, inventory.Total)
	assert.Equal(t, 1, inventory.High)
	assert.Equal(t, 1, inventory.Medium)
	assert.Equal(t, 4, inventory.Affected)
}

func TestIssuesSummary_SinIncidencias(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), nil)

	out := uc.IssuesSummary()

	require.Len(t, out.Groups, 3, "los tres grupos aparecen aunque estén vacíos")
	assert.Zero(t, out.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementImpact
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementImpact_TotalizaAhorros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), testMovements(), nil)

	out := uc.MovementImpact()

	assert.Equal(t, 3, out.Movements)
	assert.Equal(t, 2, out.PendingCount)
	assert.True(t, decimal.NewFromInt(3900).Equal(out.TotalSavings),
		"total: %s", out.TotalSavings)
	assert.True(t, decimal.NewFromInt(1400).Equal(out.PendingSavings),
		"pendiente: %s", out.PendingSavings)
}

func TestMovementImpact_SinMovimientos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(testCenters(), stubReader{}, nil)

	out := uc.MovementImpact()

	assert.Zero(t, out.Movements)
	assert.True(t, out.TotalSavings.IsZero())
	assert.True(t, out.PendingSavings.IsZero())
}
