package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de la factura con su traducción al árabe.
type InvoiceItem struct {
	ID                string
	Title             string
	Description       string
	TitleArabic       string
	DescriptionArabic string
	Quantity          decimal.Decimal
	Rate              decimal.Decimal
}

// Amount devuelve cantidad × tarifa sin redondear.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// NeedsTranslation indica si la línea tiene texto en inglés que traducir.
func (i InvoiceItem) NeedsTranslation() bool {
	return i.Title != "" || i.Description != ""
}
