package export

import (
	"strings"

	"github.com/jhoicas/logistics-panel-api/internal/domain"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// WriteCSV produce el CSV del reporte: todos los campos van entre comillas
// dobles (también los vacíos, que quedan como ""), las comillas internas se
// duplican, una fila de cabecera con las etiquetas y las filas unidas por
// saltos de línea.
//
// Nota: encoding/csv solo entrecomilla cuando es necesario; el formato del
// reporte exige comillas en todos los campos, por eso se arma a mano.
func WriteCSV(list []entity.Movement, resolver Resolver) ([]byte, error) {
	if len(list) == 0 {
		return nil, domain.ErrNoData
	}

	var b strings.Builder
	writeRecord(&b, Columns)
	for _, row := range Rows(list, resolver) {
		b.WriteByte('\n')
		writeRecord(&b, row)
	}
	return []byte(b.String()), nil
}

// writeRecord escribe una fila: campos entrecomillados separados por comas.
func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
