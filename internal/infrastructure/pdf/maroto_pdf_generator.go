// Package pdf implementa la representación gráfica de cotizaciones y
// facturas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa emisora  │  Tipo doc + N° + Fechas          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: Razón social + RUT + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total línea            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA 19%% / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS                                                       │
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

	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// EmpresaEmisora datos fijos de la empresa impresos en la cabecera.
type EmpresaEmisora struct {
	RazonSocial string
	RUT         string
	Email       string
	Telefono    string
}

var _ billing.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	emisora EmpresaEmisora
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(emisora EmpresaEmisora) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{emisora: emisora}
}

// CotizacionPDF genera el PDF de una cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) CotizacionPDF(_ context.Context, cot *entity.Cotizacion, receptor billing.ReceptorPDF) ([]byte, error) {
	fechas := fmt.Sprintf("Emisión: %s   |   Válida hasta: %s",
		cot.FechaEmision.Format("02/01/2006"), cot.FechaValidez.Format("02/01/2006"))
	return g.documento(documentoPDF{
		titulo:   "COTIZACIÓN",
		numero:   cot.Numero,
		fechas:   fechas,
		receptor: receptor,
		items:    cot.Items,
		subtotal: cot.Subtotal,
		impuesto: cot.Impuesto,
		total:    cot.Total,
		moneda:   cot.Moneda,
		conIVA:   cot.AplicaIVA,
		notas:    cot.Notas,
	})
}

// FacturaPDF genera el PDF de una factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) FacturaPDF(_ context.Context, fact *entity.Factura, receptor billing.ReceptorPDF) ([]byte, error) {
	fechas := fmt.Sprintf("Emisión: %s   |   Vence: %s",
		fact.FechaEmision.Format("02/01/2006"), fact.FechaVencimiento.Format("02/01/2006"))
	return g.documento(documentoPDF{
		titulo:   "FACTURA",
		numero:   fact.Numero,
		fechas:   fechas,
		receptor: receptor,
		items:    fact.Items,
		subtotal: fact.Subtotal,
		impuesto: fact.Impuesto,
		total:    fact.Total,
		moneda:   fact.Moneda,
		conIVA:   fact.AplicaIVA,
		notas:    fact.Notas,
	})
}

// documentoPDF campos comunes a ambos documentos.
type documentoPDF struct {
	titulo   string
	numero   string
	fechas   string
	receptor billing.ReceptorPDF
	items    []entity.ItemLinea
	subtotal decimal.Decimal
	impuesto decimal.Decimal
	total    decimal.Decimal
	moneda   string
	conIVA   bool
	notas    string
}

func (g *MarotoPDFGenerator) documento(d documentoPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.titulo+" "+d.numero, true).
		WithAuthor(g.emisora.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receptorRow(d.receptor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(d.items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(d))

	if d.notas != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notasRow(d.notas))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa emisora (izq) y tipo de documento + número + fechas (der).
func (g *MarotoPDFGenerator) headerRow(d documentoPDF) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.emisora.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUT: "+g.emisora.RUT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s   |   %s",
				nonEmpty(g.emisora.Email, "—"),
				nonEmpty(g.emisora.Telefono, "—"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(d.titulo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(d.numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New(d.fechas, props.Text{
				Size: 7.5, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// receptorRow: datos del destinatario (cliente registrado o prospecto).
func receptorRow(receptor billing.ReceptorPDF) core.Row {
	rut := receptor.RUT
	if rut == "" {
		rut = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SEÑOR(ES)", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(receptor.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RUT: %s   |   Email: %s",
				rut, nonEmpty(receptor.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción del servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []entity.ItemLinea) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Cantidad.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.PrecioUnit.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(it.Total.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(d documentoPDF) core.Row {
	ivaLabel := "IVA (19%):"
	if !d.conIVA {
		ivaLabel = "IVA (exento):"
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	totalLbl := "TOTAL:"
	if d.moneda != "" {
		totalLbl = "TOTAL " + d.moneda + ":"
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label(ivaLabel),
			grandLabel(totalLbl),
		),
		col.New(3).Add(
			value("$"+formatMoney(d.subtotal.StringFixed(0))),
			value("$"+formatMoney(d.impuesto.StringFixed(0))),
			grandValue("$"+formatMoney(d.total.StringFixed(0))),
		),
		col.New(3),
	)
}

// notasRow: observaciones al pie del documento.
func notasRow(notas string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notas, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
