package entity

// Estados de salud de un centro de distribución.
const (
	DCStatusHealthy  = "healthy"
	DCStatusWarning  = "warning"
	DCStatusCritical = "critical"
)

// DistributionCenter representa un centro de distribución de la red logística.
// Es una entidad de referencia: el panel solo la lee, nunca la modifica.
type DistributionCenter struct {
	ID        string
	Name      string
	Code      string
	Latitude  float64
	Longitude float64
	Status    string // healthy, warning, critical
	Details   DCDetails
}

// DCDetails datos operativos del centro para los widgets del panel.
type DCDetails struct {
	Capacity    int // % de ocupación actual (puede superar 100)
	MaxCapacity int
	Orders      int
	Issues      int
	Address     string
	Manager     string
}

// Utilization devuelve la ocupación como fracción de la capacidad máxima.
func (dc *DistributionCenter) Utilization() float64 {
	if dc.Details.MaxCapacity == 0 {
		return 0
	}
	return float64(dc.Details.Capacity) / float64(dc.Details.MaxCapacity)
}
