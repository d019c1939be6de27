package entity

import "github.com/shopspring/decimal"

// Idiomas de la representación gráfica.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// Invoice representa la factura tal como la captura el editor (vendedor, comprador e ítems).
type Invoice struct {
	SellerName        string
	SellerVATNo       string
	SellerAddress     string
	InvoiceNo         string
	PONo              string
	InvoiceDate       string // ISO-8601 (fecha o fecha-hora)
	BuyerName         string
	BuyerVATNo        string
	BuyerAddress      string
	Items             []InvoiceItem
	HeaderImageURL    string // data URL o URL http(s); opcional
	FooterImageURL    string
	WatermarkImageURL string
}

// Totals son los totales calculados de la factura.
type Totals struct {
	Taxable decimal.Decimal // suma de cantidad × tarifa
	VAT     decimal.Decimal // IVA sobre Taxable
	Net     decimal.Decimal // Taxable + VAT (gran total)
}
