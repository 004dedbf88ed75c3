// Package pdf implementa la orden de compra imprimible que acompaña al mensaje de reposición.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio              │  N° Orden + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + contacto / teléfono / email            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL UNIDADES + Notas                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del enlace wa.me (si hay contacto)               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/reposicion-api/internal/application/replenishment"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	corerep "github.com/jhoicas/reposicion-api/internal/domain/replenishment"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ replenishment.PurchaseOrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa replenishment.PurchaseOrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	businessName string
}

// NewMarotoPDFGenerator construye el generador. businessName va en el encabezado.
func NewMarotoPDFGenerator(businessName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{businessName: businessName}
}

// GeneratePurchaseOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(_ context.Context, order replenishment.PurchaseOrder) ([]byte, error) {
	if order.Supplier == nil {
		return nil, fmt.Errorf("pdf: orden sin proveedor")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+order.Number, true).
		WithAuthor(nonEmpty(g.businessName, "Reposición"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(order.Supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order.Items))
	if order.Notes != "" {
		m.AddRows(notesRow(order.Notes))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(order.WhatsAppURL)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio (izq) y N° de orden + fecha (der).
func headerRow(businessName string, order replenishment.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(businessName, "Reposición"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+order.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos del proveedor.
func supplierRow(s *entity.Supplier) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Contacto: %s   |   WhatsApp: %s   |   Tel: %s   |   Email: %s",
				nonEmptyPtr(s.ContactName, "—"),
				nonEmptyPtr(s.WhatsApp, "—"),
				nonEmptyPtr(s.Phone, "—"),
				nonEmptyPtr(s.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 7, align.Left),
		h("SKU", 3, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por ítem, en el orden de la solicitud.
func tableDetailRows(items []corerep.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				formatThousands(strconv.FormatInt(it.Quantity, 10)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(7).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(it.SKU, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalsRow: total de unidades pedidas.
func totalsRow(items []corerep.LineItem) core.Row {
	var units int64
	for _, it := range items {
		units += it.Quantity
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL UNIDADES:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatThousands(strconv.FormatInt(units, 10)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Notas", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

// footerRows: QR con el enlace wa.me, o una leyenda si el proveedor no tiene contacto.
func footerRows(whatsappURL string) []core.Row {
	if whatsappURL == "" {
		return []core.Row{
			row.New(10).Add(col.New(12).Add(
				text.New("El proveedor no tiene WhatsApp ni teléfono registrado.", props.Text{
					Size: 8, Align: align.Center, Color: colorGray, Top: 2,
				}),
			)),
		}
	}
	return []core.Row{
		row.New(45).Add(
			col.New(4).Add(code.NewQr(whatsappURL, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para enviar\neste pedido por WhatsApp.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("ORDEN DE COMPRA", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 22, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonEmptyPtr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return nonEmpty(*s, fallback)
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
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
