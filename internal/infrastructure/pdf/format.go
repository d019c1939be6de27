package pdf

import (
	"encoding/base64"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Los importes se imprimen con dígitos occidentales y separador de miles en ambos idiomas.
var moneyPrinter = message.NewPrinter(language.English)

// formatMoney formatea con separador de miles y dos decimales.
// Ej: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	frac := d.StringFixed(2)
	frac = frac[strings.IndexByte(frac, '.'):]
	return sign + moneyPrinter.Sprintf("%d", d.IntPart()) + frac
}

// imageRow construye una fila de imagen a partir de un data URL (PNG o JPEG).
// Las URLs remotas no se descargan: el servicio no hace llamadas salientes al renderizar.
func imageRow(dataURL string, height float64) (core.Row, bool) {
	raw, ext, ok := decodeDataImage(dataURL)
	if !ok {
		return nil, false
	}
	return image.NewFromBytesRow(height, raw, ext, props.Rect{Percent: 100, Center: true}), true
}

// decodeDataImage extrae los bytes y la extensión de un data URL base64.
func decodeDataImage(dataURL string) ([]byte, extension.Type, bool) {
	const prefix = "data:image/"
	if !strings.HasPrefix(dataURL, prefix) {
		return nil, "", false
	}
	meta, payload, ok := strings.Cut(dataURL[len(prefix):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", false
	}

	var ext extension.Type
	switch strings.TrimSuffix(meta, ";base64") {
	case "png":
		ext = extension.Png
	case "jpeg", "jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return nil, "", false
	}
	return raw, ext, true
}
