package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-panel-api/internal/domain"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
	"github.com/jhoicas/logistics-panel-api/pkg/format"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// WritePDF genera el reporte de movimientos como tabla PDF (A4 apaisado,
// una columna de la grilla de 12 por campo) y devuelve sus bytes.
func WritePDF(list []entity.Movement, resolver Resolver, title string) ([]byte, error) {
	if len(list) == 0 {
		return nil, domain.ErrNoData
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title, len(list)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow())
	for _, r := range Rows(list, resolver) {
		m.AddRows(dataRow(r))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(list))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRow título del reporte, conteo de movimientos y fecha de generación.
func titleRow(title string, count int) core.Row {
	caption := fmt.Sprintf("%s movimientos — %s", format.Number(count), format.Date(time.Now()))
	return row.New(8).Add(
		text.NewCol(8, title, props.Text{
			Size: 12, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(4, caption, props.Text{
			Size: 9, Align: align.Right, Color: colorGray,
		}),
	)
}

// headerRow cabecera de la tabla: una columna de grilla por campo.
func headerRow() core.Row {
	r := row.New(6)
	for _, label := range Columns {
		r.Add(text.NewCol(1, label, props.Text{
			Size: 6, Style: fontstyle.Bold, Color: colorPrimary,
		}))
	}
	return r
}

// dataRow fila de datos.
func dataRow(fields []string) core.Row {
	r := row.New(5)
	for _, f := range fields {
		r.Add(text.NewCol(1, f, props.Text{Size: 6}))
	}
	return r
}

// totalsRow pie del reporte: ahorro estimado total de la proyección.
func totalsRow(list []entity.Movement) core.Row {
	total := decimal.Zero
	for _, m := range list {
		total = total.Add(m.EstimatedSavings)
	}
	return row.New(6).Add(
		text.NewCol(12, "Total estimated savings: "+format.Currency(total), props.Text{
			Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
		}),
	)
}
