package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-zatca/internal/domain/invoice"
)

// Config parámetros de facturación (desde pkg/config).
type Config struct {
	VATRate      decimal.Decimal
	CurrencyCode string // SAR
	CurrencyEN   string // Riyals
	CurrencyAR   string // ريال
	QRSize       int    // píxeles por defecto del PNG
}

// DefaultConfig valores de Arabia Saudita.
func DefaultConfig() Config {
	return Config{
		VATRate:      invoice.DefaultVATRate,
		CurrencyCode: "SAR",
		CurrencyEN:   "Riyals",
		CurrencyAR:   "ريال",
		QRSize:       128,
	}
}
