// Package pdf genera el reporte imprimible del inventario de una sesión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                     │  Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR CATEGORÍA: Producto | Cantidad   (+ subtotal)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE UNIDADES                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÚLTIMOS ENVÍOS / ÚLTIMOS PEDIDOS                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

var _ appinventory.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIn      = &props.Color{Red: 27, Green: 122, Blue: 62}
	colorOut     = &props.Color{Red: 166, Green: 38, Blue: 38}
)

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, data appinventory.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := decimal.Zero
	for _, c := range data.Categories {
		rows, subtotal := categoryRows(c)
		m.AddRows(rows...)
		total = total.Add(subtotal)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	m.AddRows(line.NewRow(4))
	m.AddRows(logRows("ÚLTIMOS ENVÍOS", "+", colorIn, data.Shipments)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(logRows("ÚLTIMOS PEDIDOS", "-", colorOut, data.Orders)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data appinventory.ReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// categoryRows: título de la categoría, una fila por producto y subtotal.
func categoryRows(c entity.Category) ([]core.Row, decimal.Decimal) {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	if len(c.Products) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 8, Color: colorGray, Left: 4, Top: 1}),
		)))
		return rows, decimal.Zero
	}
	subtotal := decimal.Zero
	for _, p := range c.Products {
		qty := decimal.NewFromInt(int64(p.Quantity))
		subtotal = subtotal.Add(qty)
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(p.Name, props.Text{Size: 9, Left: 4, Top: 1})),
			col.New(3).Add(text.New(formatThousands(qty.StringFixed(0)), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 1,
			})),
		))
	}
	return rows, subtotal
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL DE UNIDADES:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatThousands(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// logRows: encabezado de sección y una fila por movimiento (más reciente primero).
func logRows(title, sign string, color *props.Color, entries []entity.LogEntry) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 1}),
		)),
	}
	if len(entries) == 0 {
		return append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sin registros", props.Text{Size: 8, Color: colorGray, Left: 4}),
		)))
	}
	for _, e := range entries {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(e.Timestamp, props.Text{Size: 8, Color: colorGray, Left: 4})),
			col.New(6).Add(text.New(fmt.Sprintf("%s (%s)", e.Product, e.Category), props.Text{Size: 8})),
			col.New(2).Add(text.New(sign+formatThousands(fmt.Sprint(e.Quantity)), props.Text{
				Size: 8, Align: align.Right, Color: color, Right: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatThousands inserta puntos de miles en un entero sin signo.
// Ej: "25000" → "25.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
