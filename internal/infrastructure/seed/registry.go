package seed

import (
	"sync"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// Registry resolvedor en memoria de centros de distribución. Implementa
// movements.LocationResolver. Solo lectura tras la construcción, pero el
// RWMutex lo deja listo para recargas futuras.
type Registry struct {
	mu      sync.RWMutex
	byID    map[string]entity.DistributionCenter
	ordered []entity.DistributionCenter
}

// NewRegistry construye el registro a partir de la lista de centros.
func NewRegistry(centers []entity.DistributionCenter) *Registry {
	byID := make(map[string]entity.DistributionCenter, len(centers))
	ordered := make([]entity.DistributionCenter, len(centers))
	copy(ordered, centers)
	for _, dc := range centers {
		byID[dc.ID] = dc
	}
	return &Registry{byID: byID, ordered: ordered}
}

// ResolveName devuelve el nombre visible del centro. Un ID sin coincidencia
// se devuelve tal cual, para que la vista nunca muestre un hueco.
func (r *Registry) ResolveName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if dc, ok := r.byID[id]; ok {
		return dc.Name
	}
	return id
}

// Get devuelve el centro por ID.
func (r *Registry) Get(id string) (entity.DistributionCenter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dc, ok := r.byID[id]
	return dc, ok
}

// List devuelve una copia de los centros en su orden original.
func (r *Registry) List() []entity.DistributionCenter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.DistributionCenter, len(r.ordered))
	copy(out, r.ordered)
	return out
}
