// Package seed contiene el dataset de demostración del panel: la red de
// centros de distribución, los movimientos propuestos y las incidencias
// abiertas. Sustituye a una base de datos; el panel no persiste nada.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// DistributionCenters devuelve la red de centros de demostración.
func DistributionCenters() []entity.DistributionCenter {
	return []entity.DistributionCenter{
		{
			ID: "dc-ny-001", Name: "New York DC", Code: "NY001",
			Latitude: 40.7128, Longitude: -74.0060,
			Status: entity.DCStatusHealthy,
			Details: entity.DCDetails{
				Capacity: 95, MaxCapacity: 100, Orders: 1250, Issues: 0,
				Address: "123 Industrial Blvd, Queens, NY 11101",
				Manager: "Sarah Johnson",
			},
		},
		{
			ID: "dc-chi-001", Name: "Chicago DC", Code: "CHI001",
			Latitude: 41.8781, Longitude: -87.6298,
			Status: entity.DCStatusWarning,
			Details: entity.DCDetails{
				Capacity: 87, MaxCapacity: 100, Orders: 890, Issues: 3,
				Address: "456 Logistics Way, Chicago, IL 60601",
				Manager: "Michael Chen",
			},
		},
		{
			ID: "dc-la-001", Name: "Los Angeles DC", Code: "LA001",
			Latitude: 34.0522, Longitude: -118.2437,
			Status: entity.DCStatusCritical,
			Details: entity.DCDetails{
				Capacity: 112, MaxCapacity: 100, Orders: 1450, Issues: 8,
				Address: "789 Port Ave, Los Angeles, CA 90021",
				Manager: "Jennifer Rodriguez",
			},
		},
		{
			ID: "dc-dal-001", Name: "Dallas DC", Code: "DAL001",
			Latitude: 32.7767, Longitude: -96.7970,
			Status: entity.DCStatusHealthy,
			Details: entity.DCDetails{
				Capacity: 78, MaxCapacity: 100, Orders: 675, Issues: 1,
				Address: "321 Freight Rd, Dallas, TX 75201",
				Manager: "Robert Wilson",
			},
		},
		{
			ID: "dc-atl-001", Name: "Atlanta DC", Code: "ATL001",
			Latitude: 33.7490, Longitude: -84.3880,
			Status: entity.DCStatusWarning,
			Details: entity.DCDetails{
				Capacity: 92, MaxCapacity: 100, Orders: 1100, Issues: 2,
				Address: "654 Distribution Dr, Atlanta, GA 30309",
				Manager: "Lisa Thompson",
			},
		},
		{
			ID: "dc-sea-001", Name: "Seattle DC", Code: "SEA001",
			Latitude: 47.6062, Longitude: -122.3321,
			Status: entity.DCStatusHealthy,
			Details: entity.DCDetails{
				Capacity: 68, MaxCapacity: 100, Orders: 520, Issues: 0,
				Address: "987 Harbor St, Seattle, WA 98101",
				Manager: "Kevin Park",
			},
		},
	}
}

// Movements devuelve los movimientos de inventario de demostración.
func Movements() []entity.Movement {
	return []entity.Movement{
		{
			ID:               "mov-001",
			Description:      "Rebalance high-demand SKU to meet seasonal demand",
			Status:           entity.MovementStatusPending,
			SKU:              "DHL-8834-XL",
			OriginDC:         "dc-chi-001",
			DestinationDC:    "dc-la-001",
			Quantity:         150,
			EstimatedSavings: decimal.NewFromInt(12500),
			Priority:         entity.PriorityHigh,
			CreatedAt:        date(2024, 11, 1),
			RequiredBy:       date(2024, 11, 10),
			Category:         "demand-balancing",
		},
		{
			ID:               "mov-002",
			Description:      "Seasonal inventory adjustment for Q4 preparation",
			Status:           entity.MovementStatusApproved,
			SKU:              "DHL-2156-MD",
			OriginDC:         "dc-ny-001",
			DestinationDC:    "dc-atl-001",
			Quantity:         89,
			EstimatedSavings: decimal.NewFromInt(6750),
			Priority:         entity.PriorityMedium,
			CreatedAt:        date(2024, 10, 28),
			RequiredBy:       date(2024, 11, 15),
			Category:         "seasonal-adjustment",
		},
		{
			ID:               "mov-003",
			Description:      "Overflow capacity management to optimize storage",
			Status:           entity.MovementStatusPending,
			SKU:              "DHL-9944-SM",
			OriginDC:         "dc-sea-001",
			DestinationDC:    "dc-dal-001",
			Quantity:         205,
			EstimatedSavings: decimal.NewFromInt(8900),
			Priority:         entity.PriorityLow,
			CreatedAt:        date(2024, 11, 2),
			RequiredBy:       date(2024, 11, 20),
			Category:         "capacity-optimization",
		},
		{
			ID:               "mov-004",
			Description:      "Critical shortage replenishment for key customer",
			Status:           entity.MovementStatusPending,
			SKU:              "DHL-3367-LG",
			OriginDC:         "dc-dal-001",
			DestinationDC:    "dc-la-001",
			Quantity:         75,
			EstimatedSavings: decimal.NewFromInt(15600),
			Priority:         entity.PriorityHigh,
			CreatedAt:        date(2024, 11, 3),
			RequiredBy:       date(2024, 11, 8),
			Category:         "shortage-replenishment",
		},
		{
			ID:               "mov-005",
			Description:      "Cost optimization transfer to reduce handling fees",
			Status:           entity.MovementStatusApproved,
			SKU:              "DHL-7728-XS",
			OriginDC:         "dc-atl-001",
			DestinationDC:    "dc-chi-001",
			Quantity:         120,
			EstimatedSavings: decimal.NewFromInt(4200),
			Priority:         entity.PriorityMedium,
			CreatedAt:        date(2024, 10, 30),
			RequiredBy:       date(2024, 11, 12),
			Category:         "cost-optimization",
		},
	}
}

// Issues devuelve las incidencias abiertas agrupadas para los widgets.
func Issues() []entity.Issue {
	return []entity.Issue{
		// Pedidos
		{ID: "ord-001", Group: entity.IssueGroupOrders, Description: "Delayed shipment to Los Angeles DC due to carrier issues", Severity: entity.PriorityHigh, Affected: 15, EstimatedResolution: date(2024, 11, 6)},
		{ID: "ord-002", Group: entity.IssueGroupOrders, Description: "Missing documentation for SKU DHL-8834", Severity: entity.PriorityMedium, Affected: 3, EstimatedResolution: date(2024, 11, 5)},
		{ID: "ord-003", Group: entity.IssueGroupOrders, Description: "Customer complaint - wrong item delivered", Severity: entity.PriorityMedium, Affected: 1, EstimatedResolution: date(2024, 11, 5)},
		{ID: "ord-004", Group: entity.IssueGroupOrders, Description: "Payment processing error for Order #45621", Severity: entity.PriorityLow, Affected: 1, EstimatedResolution: date(2024, 11, 7)},
		{ID: "ord-005", Group: entity.IssueGroupOrders, Description: "Address validation failed for 3 orders", Severity: entity.PriorityMedium, Affected: 3, EstimatedResolution: date(2024, 11, 6)},
		// Recepciones
		{ID: "inb-001", Group: entity.IssueGroupInbound, Description: "Chicago DC receiving dock capacity exceeded", Severity: entity.PriorityHigh, Affected: 8, EstimatedResolution: date(2024, 11, 8)},
		{ID: "inb-002", Group: entity.IssueGroupInbound, Description: "Quality control inspection backlog", Severity: entity.PriorityHigh, Affected: 12, EstimatedResolution: date(2024, 11, 7)},
		{ID: "inb-003", Group: entity.IssueGroupInbound, Description: "Supplier delay from Manufacturing Partner A", Severity: entity.PriorityMedium, Affected: 5, EstimatedResolution: date(2024, 11, 10)},
		{ID: "inb-004", Group: entity.IssueGroupInbound, Description: "Temperature-sensitive items require immediate processing", Severity: entity.PriorityHigh, Affected: 3, EstimatedResolution: date(2024, 11, 5)},
		{ID: "inb-005", Group: entity.IssueGroupInbound, Description: "Customs clearance pending for international shipment", Severity: entity.PriorityMedium, Affected: 2, EstimatedResolution: date(2024, 11, 9)},
		// Inventario
		{ID: "inv-001", Group: entity.IssueGroupInventory, Description: "Stock-out risk for DHL-3367-LG in Los Angeles", Severity: entity.PriorityHigh, Affected: 1, EstimatedResolution: date(2024, 11, 6)},
		{ID: "inv-002", Group: entity.IssueGroupInventory, Description: "Overstock situation in Seattle DC for seasonal items", Severity: entity.PriorityMedium, Affected: 4, EstimatedResolution: date(2024, 11, 15)},
		{ID: "inv-003", Group: entity.IssueGroupInventory, Description: "Inventory discrepancy found during cycle count", Severity: entity.PriorityMedium, Affected: 2, EstimatedResolution: date(2024, 11, 8)},
		{ID: "inv-004", Group: entity.IssueGroupInventory, Description: "Expired items need immediate removal from Dallas DC", Severity: entity.PriorityHigh, Affected: 3, EstimatedResolution: date(2024, 11, 5)},
		{ID: "inv-005", Group: entity.IssueGroupInventory, Description: "Safety stock levels below threshold for 8 SKUs", Severity: entity.PriorityHigh, Affected: 8, EstimatedResolution: date(2024, 11, 7)},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
