package entity

import "time"

// Grupos de incidencias que alimentan los widgets del panel.
const (
	IssueGroupOrders    = "orders"
	IssueGroupInbound   = "inbound"
	IssueGroupInventory = "inventory"
)

// Issue representa una incidencia operativa abierta (pedidos, recepciones o
// inventario). Solo lectura para el panel.
type Issue struct {
	ID                  string
	Group               string // orders, inbound, inventory
	Description         string
	Severity            string // reutiliza los niveles de prioridad: high, medium, low
	Affected            int    // pedidos, envíos o SKUs afectados según el grupo
	EstimatedResolution time.Time
}
