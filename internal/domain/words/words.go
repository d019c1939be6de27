// Package words convierte montos a texto en inglés para la leyenda "Amount in Words" de la factura.
//
// Reglas: enteros por grupos (Hundred / Thousand / Million) y centavos como fracción "NN/100".
// El rango soportado llega a 999,999,999.99.
package words

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// MaxInteger es el primer entero fuera de rango.
const MaxInteger = 1_000_000_000

var (
	ErrAmountOutOfRange = errors.New("words: monto fuera de rango")
	ErrNegativeAmount   = errors.New("words: el monto no puede ser negativo")
)

// AmountOutOfRangeError se devuelve cuando la parte entera es >= 1,000,000,000.
type AmountOutOfRangeError struct {
	Amount decimal.Decimal
}

func (e *AmountOutOfRangeError) Error() string {
	return fmt.Sprintf("words: %s supera el máximo soportado (999,999,999.99)", e.Amount.StringFixed(2))
}

func (e *AmountOutOfRangeError) Is(target error) bool { return target == ErrAmountOutOfRange }

var belowTwenty = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// Convert devuelve el monto en palabras. El monto se redondea a 2 decimales antes de convertir.
func Convert(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	a := amount.Round(2)
	if a.IsZero() {
		return "Zero", nil
	}

	integer := a.Truncate(0)
	if integer.GreaterThanOrEqual(decimal.NewFromInt(MaxInteger)) {
		return "", &AmountOutOfRangeError{Amount: amount}
	}
	cents := a.Sub(integer).Shift(2).IntPart()

	out := integerWords(integer.IntPart())
	if cents > 0 {
		if out != "" {
			out += " "
		}
		out += "and " + strconv.FormatInt(cents, 10) + "/100"
	}
	return out, nil
}

// Caption arma la leyenda completa del total: "<palabras> <moneda> Only".
func Caption(amount decimal.Decimal, currency string) (string, error) {
	w, err := Convert(amount)
	if err != nil {
		return "", err
	}
	if currency == "" {
		return w + " Only", nil
	}
	return w + " " + currency + " Only", nil
}

// integerWords expande n en [0, 999,999,999]; 0 produce "".
func integerWords(n int64) string {
	switch {
	case n < 20:
		return belowTwenty[n]
	case n < 100:
		return tens[n/10] + joinIf(n%10 != 0, " ", belowTwenty[n%10])
	case n < 1000:
		return belowTwenty[n/100] + " Hundred" + joinIf(n%100 != 0, " and ", integerWords(n%100))
	case n < 1_000_000:
		return integerWords(n/1000) + " Thousand" + joinIf(n%1000 != 0, ", ", integerWords(n%1000))
	default:
		return integerWords(n/1_000_000) + " Million" + joinIf(n%1_000_000 != 0, ", ", integerWords(n%1_000_000))
	}
}

func joinIf(ok bool, sep, s string) string {
	if !ok {
		return ""
	}
	return sep + s
}
