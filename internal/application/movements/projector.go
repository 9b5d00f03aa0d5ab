package movements

import (
	"sort"
	"strings"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// Claves de ordenamiento de la vista.
const (
	SortByCreatedAt        = "createdAt"
	SortByRequiredBy       = "requiredBy"
	SortBySKU              = "sku"
	SortByDescription      = "description"
	SortByQuantity         = "quantity"
	SortByEstimatedSavings = "estimatedSavings"
	SortByPriority         = "priority"
	SortByStatus           = "status"
	SortByOriginDC         = "originDC"
	SortByDestinationDC    = "destinationDC"
)

// Direcciones de ordenamiento.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterAll comodín que deja pasar cualquier estado o prioridad.
const FilterAll = "all"

// Params parámetros de filtrado y ordenamiento de la proyección.
type Params struct {
	Search   string // subcadena, sin distinguir mayúsculas; "" pasa todo
	Status   string // all | pending | approved | rejected
	Priority string // all | high | medium | low
	SortBy   string
	SortDir  string // asc | desc
}

// DefaultParams parámetros iniciales de la vista: todo visible, ordenado por
// fecha de creación descendente.
func DefaultParams() Params {
	return Params{
		Status:   FilterAll,
		Priority: FilterAll,
		SortBy:   SortByCreatedAt,
		SortDir:  SortDesc,
	}
}

// Toggle devuelve los parámetros tras pulsar una columna: la clave activa
// invierte la dirección; una clave nueva se selecciona ascendente.
func Toggle(p Params, key string) Params {
	if p.SortBy == key {
		if p.SortDir == SortAsc {
			p.SortDir = SortDesc
		} else {
			p.SortDir = SortAsc
		}
		return p
	}
	p.SortBy = key
	p.SortDir = SortAsc
	return p
}

// Projector deriva la vista filtrada y ordenada de la colección. Es una
// función pura de (colección, parámetros): nunca muta la entrada y recalcula
// una proyección fresca en cada llamada.
type Projector struct {
	resolver LocationResolver
}

// NewProjector construye el proyector con el resolvedor de nombres de centros
// (el ordenamiento y la búsqueda por origen/destino comparan nombres
// resueltos, no IDs crudos).
func NewProjector(resolver LocationResolver) *Projector {
	return &Projector{resolver: resolver}
}

// Project aplica búsqueda, filtros y ordenamiento sobre una copia de list.
func (p *Projector) Project(list []entity.Movement, params Params) []entity.Movement {
	out := make([]entity.Movement, 0, len(list))
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, m := range list {
		if !p.matches(m, search, params) {
			continue
		}
		out = append(out, m)
	}
	p.sortMovements(out, params)
	return out
}

// matches evalúa el predicado de inclusión: búsqueda + estado + prioridad.
func (p *Projector) matches(m entity.Movement, search string, params Params) bool {
	if search != "" {
		if !strings.Contains(strings.ToLower(m.SKU), search) &&
			!strings.Contains(strings.ToLower(m.Description), search) &&
			!strings.Contains(strings.ToLower(p.resolve(m.OriginDC)), search) &&
			!strings.Contains(strings.ToLower(p.resolve(m.DestinationDC)), search) {
			return false
		}
	}
	if params.Status != "" && params.Status != FilterAll && m.Status != params.Status {
		return false
	}
	if params.Priority != "" && params.Priority != FilterAll && m.Priority != params.Priority {
		return false
	}
	return true
}

// sortMovements ordena in-place con sort.SliceStable: las claves iguales
// conservan su orden relativo previo.
func (p *Projector) sortMovements(list []entity.Movement, params Params) {
	key := params.SortBy
	if key == "" {
		key = SortByCreatedAt
	}
	asc := params.SortDir != SortDesc

	sort.SliceStable(list, func(i, j int) bool {
		less := p.less(&list[i], &list[j], key)
		if asc {
			return less
		}
		return p.less(&list[j], &list[i], key)
	})
}

// less compara dos movimientos según la clave activa. Las cadenas comparan en
// minúsculas; los centros comparan por nombre resuelto.
func (p *Projector) less(a, b *entity.Movement, key string) bool {
	switch key {
	case SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortByRequiredBy:
		return a.RequiredBy.Before(b.RequiredBy)
	case SortByQuantity:
		return a.Quantity < b.Quantity
	case SortByEstimatedSavings:
		return a.EstimatedSavings.LessThan(b.EstimatedSavings)
	case SortBySKU:
		return lowerLess(a.SKU, b.SKU)
	case SortByDescription:
		return lowerLess(a.Description, b.Description)
	case SortByPriority:
		return lowerLess(a.Priority, b.Priority)
	case SortByStatus:
		return lowerLess(a.Status, b.Status)
	case SortByOriginDC:
		return lowerLess(p.resolve(a.OriginDC), p.resolve(b.OriginDC))
	case SortByDestinationDC:
		return lowerLess(p.resolve(a.DestinationDC), p.resolve(b.DestinationDC))
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// resolve traduce un ID de centro a nombre; sin resolvedor devuelve el ID.
func (p *Projector) resolve(dcID string) string {
	if p.resolver == nil {
		return dcID
	}
	return p.resolver.ResolveName(dcID)
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
