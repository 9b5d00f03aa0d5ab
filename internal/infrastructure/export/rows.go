// Package export serializa la proyección de movimientos a formatos planos
// para descarga: CSV y PDF. No tiene efectos secundarios más allá de la
// emisión de bytes.
package export

import (
	"fmt"
	"time"

	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// Columns etiquetas de columna, en el orden del reporte.
var Columns = []string{
	"ID", "SKU", "Description", "Status", "Priority", "Category",
	"Origin DC", "Destination DC", "Quantity", "Estimated Savings",
	"Created At", "Required By",
}

// Resolver traduce el ID de un centro a su nombre visible.
type Resolver interface {
	ResolveName(id string) string
}

// Rows aplana la proyección: un registro por movimiento, un valor de texto
// por columna. Una categoría vacía se reporta como "N/A".
func Rows(list []entity.Movement, resolver Resolver) [][]string {
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		category := m.Category
		if category == "" {
			category = "N/A"
		}
		rows = append(rows, []string{
			m.ID,
			m.SKU,
			m.Description,
			m.Status,
			m.Priority,
			category,
			resolveName(resolver, m.OriginDC),
			resolveName(resolver, m.DestinationDC),
			fmt.Sprintf("%d", m.Quantity),
			m.EstimatedSavings.String(),
			formatTime(m.CreatedAt),
			formatTime(m.RequiredBy),
		})
	}
	return rows
}

// Filename nombre de archivo por defecto con la fecha actual embebida.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("inventory-movements-%s.%s", now.Format("2006-01-02"), ext)
}

func resolveName(r Resolver, id string) string {
	if r == nil {
		return id
	}
	return r.ResolveName(id)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
