// Package pdf implementa la representación gráfica de la factura
// electrónica simplificada ZATCA (Arabia Saudita) en inglés o árabe.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  IMAGEN DE CABECERA (opcional)                               │
//	│  TAX INVOICE + N° Factura / N° PO / Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDOR: Nombre + VAT + Dirección                          │
//	│  COMPRADOR: Nombre + VAT + Dirección                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción | Cant | Tarifa | Importe            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / VAT (15%) / Grand Total SAR             │
//	│  MONTO EN PALABRAS                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR ZATCA + leyenda                                          │
//	│  IMAGEN DE PIE (opcional)                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoPDFGenerator implementa InvoicePDFGenerator.
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 92, Blue: 69}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc *appbilling.InvoiceDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento nil")
	}
	lb := labelsFor(doc.Lang)
	inv := doc.Invoice

	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(lb.title+" "+inv.InvoiceNo, true).
		WithAuthor(inv.SellerName, true)

	if lb.rtl {
		fonts, err := arabicFonts()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuentes árabes: %w", err)
		}
		b = b.WithCustomFonts(fonts).
			WithDefaultFont(&props.Font{Family: arabicFontFamily, Size: 9})
	}
	if raw, ext, ok := watermarkImage(inv.WatermarkImageURL); ok {
		b = b.WithBackgroundImage(raw, ext)
	}

	m := maroto.New(b.Build())

	if r, ok := imageRow(inv.HeaderImageURL, 25); ok {
		m.AddRows(r)
	}
	m.AddRows(headerRow(&inv, lb))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(lb.seller, inv.SellerName, inv.SellerVATNo, inv.SellerAddress, lb))
	m.AddRows(partyRow(lb.buyer, inv.BuyerName, inv.BuyerVATNo, inv.BuyerAddress, lb))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(lb))
	m.AddRows(tableDetailRows(inv.Items, lb)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc, lb))
	m.AddRows(wordsRow(doc, lb))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(doc.QRPayload, lb))

	if r, ok := imageRow(inv.FooterImageURL, 20); ok {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y N° factura + PO + fecha (der). En árabe se invierte.
func headerRow(inv *entity.Invoice, lb labels) core.Row {
	title := col.New(6).Add(
		lb.text(lb.title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2, Align: lb.start,
		}),
	)
	meta := col.New(6).Add(
		lb.text(lb.invoiceNo+": "+inv.InvoiceNo, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: lb.end, Top: 1,
		}),
		lb.text(lb.poNo+": "+nonEmpty(inv.PONo, "—"), props.Text{
			Size: 8, Align: lb.end, Top: 7, Color: colorGray,
		}),
		lb.text(lb.date+": "+inv.InvoiceDate, props.Text{
			Size: 8, Align: lb.end, Top: 12, Color: colorGray,
		}),
	)
	if lb.rtl {
		return row.New(18).Add(meta, title)
	}
	return row.New(18).Add(title, meta)
}

// partyRow: bloque de vendedor o comprador.
func partyRow(heading, name, vatNo, address string, lb labels) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			lb.text(heading, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: lb.start,
			}),
			lb.text(nonEmpty(name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5, Align: lb.start,
			}),
			lb.text(fmt.Sprintf("%s: %s   |   %s", lb.vatNo, nonEmpty(vatNo, "—"), nonEmpty(address, "—")),
				props.Text{Size: 8, Top: 11, Color: colorGray, Align: lb.start}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow(lb labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(lb.text(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	cols := []core.Col{
		h("#", 1, align.Center),
		h(lb.description, 5, lb.start),
		h(lb.quantity, 2, align.Center),
		h(lb.rate, 2, lb.end),
		h(lb.amount, 2, lb.end),
	}
	return row.New(8).Add(orderCols(cols, lb.rtl)...)
}

// tableDetailRows: una fila por ítem; en árabe usa el texto traducido si existe.
func tableDetailRows(items []entity.InvoiceItem, lb labels) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		title, desc := it.Title, it.Description
		if lb.rtl && it.TitleArabic != "" {
			title, desc = it.TitleArabic, it.DescriptionArabic
		}
		descCol := col.New(5).Add(lb.text(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: lb.start, Top: 1, Left: 1, Right: 1,
		}))
		height := 7.0
		if desc != "" {
			descCol.Add(lb.text(desc, props.Text{
				Size: 7, Align: lb.start, Top: 5, Left: 1, Right: 1, Color: colorGray,
			}))
			height = 11
		}
		cols := []core.Col{
			col.New(1).Add(lb.text(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			descCol,
			col.New(2).Add(lb.text(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(lb.text(formatMoney(it.Rate), props.Text{Size: 8, Align: lb.end, Top: 1, Right: 1})),
			col.New(2).Add(lb.text(formatMoney(it.Amount()), props.Text{Size: 8, Align: lb.end, Top: 1, Right: 1})),
		}
		result = append(result, row.New(height).Add(orderCols(cols, lb.rtl)...))
	}
	return result
}

// totalsRow: subtotal, IVA y gran total.
func totalsRow(doc *appbilling.InvoiceDocument, lb labels) core.Row {
	label := func(s string, top float64) core.Component {
		return lb.text(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: lb.end, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return lb.text(s, props.Text{Size: 9, Align: lb.end, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return lb.text(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: lb.end, Color: colorPrimary, Right: 1, Top: top,
		})
	}

	vatPct := doc.VATRate.Mul(decimal.NewFromInt(100)).String() + "%"
	cols := []core.Col{
		col.New(6),
		col.New(3).Add(
			label(lb.subtotal+":", 1),
			label(fmt.Sprintf("%s (%s):", lb.vat, vatPct), 7),
			grand(fmt.Sprintf("%s %s:", lb.grandTotal, doc.Currency), 13),
		),
		col.New(3).Add(
			value(formatMoney(doc.Totals.Taxable), 1),
			value(formatMoney(doc.Totals.VAT), 7),
			grand(formatMoney(doc.Totals.Net), 13),
		),
	}
	return row.New(20).Add(orderCols(cols, lb.rtl)...)
}

// wordsRow: gran total en letras.
func wordsRow(doc *appbilling.InvoiceDocument, lb labels) core.Row {
	caption := doc.CaptionEN
	if lb.rtl {
		caption = doc.CaptionAR
	}
	return row.New(10).Add(col.New(12).Add(
		lb.text(lb.inWords+": "+caption, props.Text{
			Style: fontstyle.BoldItalic, Size: 8, Top: 2, Align: lb.start,
		}),
	))
}

// qrRow: código QR ZATCA + leyenda.
func qrRow(payload string, lb labels) core.Row {
	if payload == "" {
		return row.New(10).Add(col.New(12).Add(
			lb.text(lb.legend, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 2}),
		))
	}
	cols := []core.Col{
		col.New(3).Add(code.NewQr(payload, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			lb.text(lb.scan, props.Text{Size: 8, Top: 4, Left: 3, Right: 3, Color: colorGray, Align: lb.start}),
			lb.text(lb.legend, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Right: 3, Color: colorPrimary, Align: lb.start,
			}),
		),
	}
	return row.New(40).Add(orderCols(cols, lb.rtl)...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// orderCols invierte el orden de columnas para documentos de derecha a izquierda.
func orderCols(cols []core.Col, rtl bool) []core.Col {
	if !rtl {
		return cols
	}
	out := make([]core.Col, len(cols))
	for i, c := range cols {
		out[len(cols)-1-i] = c
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
