// Package invoice contiene el cálculo de totales y las validaciones de la factura (servicio de dominio).
package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-zatca/internal/domain"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// DefaultVATRate es la tarifa general de IVA en Arabia Saudita (15%).
var DefaultVATRate = decimal.RequireFromString("0.15")

// ComputeTotals calcula subtotal, IVA y gran total.
// Taxable = Σ cantidad × tarifa; VAT = Taxable × vatRate; Net = Taxable + VAT. Todo redondeado a 2 decimales.
func ComputeTotals(items []entity.InvoiceItem, vatRate decimal.Decimal) entity.Totals {
	taxable := decimal.Zero
	for _, it := range items {
		taxable = taxable.Add(it.Amount())
	}
	taxable = taxable.Round(2)
	vat := taxable.Mul(vatRate).Round(2)
	return entity.Totals{
		Taxable: taxable,
		VAT:     vat,
		Net:     taxable.Add(vat),
	}
}

// Validate revisa que la factura tenga ítems con cantidades y tarifas no negativas.
func Validate(inv *entity.Invoice) error {
	if inv == nil {
		return fmt.Errorf("%w: factura nula", domain.ErrInvalidInput)
	}
	var errs []error
	if len(inv.Items) == 0 {
		errs = append(errs, errors.New("la factura debe tener al menos un ítem"))
	}
	for i, it := range inv.Items {
		if it.Quantity.IsNegative() {
			errs = append(errs, fmt.Errorf("ítem %d: cantidad negativa", i+1))
		}
		if it.Rate.IsNegative() {
			errs = append(errs, fmt.Errorf("ítem %d: tarifa negativa", i+1))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidInput}, errs...)...)
	}
	return nil
}
