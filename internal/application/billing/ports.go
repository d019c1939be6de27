package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
	domainzatca "github.com/jhoicas/facturador-zatca/internal/domain/zatca"
)

// PayloadBuilder construye el payload Base64 del QR ZATCA (implementado por domain/zatca.Builder).
type PayloadBuilder interface {
	Build(meta domainzatca.QRMeta) (string, error)
}

// QRImageRenderer dibuja el payload como imagen PNG cuadrada de size píxeles.
type QRImageRenderer interface {
	RenderPNG(payload string, size int) ([]byte, error)
}

// InvoicePDFGenerator genera la representación gráfica de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// InvoiceDocument agrupa la factura con todo lo calculado para pintarla.
type InvoiceDocument struct {
	Invoice       entity.Invoice
	Totals        entity.Totals
	VATRate       decimal.Decimal
	QRPayload     string
	AmountInWords string
	CaptionEN     string
	CaptionAR     string
	Currency      string // código ISO para la línea del gran total (SAR)
	Lang          string // entity.LangEnglish | entity.LangArabic
}
