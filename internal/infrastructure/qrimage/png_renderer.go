package qrimage

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/jhoicas/facturador-zatca/internal/application/billing"
)

// Verificar en tiempo de compilación que PNGRenderer implementa QRImageRenderer.
var _ billing.QRImageRenderer = (*PNGRenderer)(nil)

// PNGRenderer dibuja el payload Base64 como código QR en PNG.
// Usa corrección de errores L, la misma del QR de la factura impresa.
type PNGRenderer struct {
	level qrcode.RecoveryLevel
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{level: qrcode.Low}
}

// RenderPNG devuelve la imagen de size×size píxeles.
func (r *PNGRenderer) RenderPNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qrimage: payload vacío")
	}
	png, err := qrcode.Encode(payload, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("qrimage: codificar QR: %w", err)
	}
	return png, nil
}
