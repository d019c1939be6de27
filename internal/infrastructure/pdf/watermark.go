package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // decodificador para marcas de agua JPEG
	"image/png"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// watermarkOpacity: la marca de agua se imprime al 10% sobre fondo blanco.
const watermarkOpacity = 0.10

// watermarkImage decodifica el data URL y devuelve un PNG aclarado listo para
// usarse como imagen de fondo de cada página. El motor PDF no maneja alfa por
// imagen, así que la opacidad se aplica mezclando cada píxel con blanco.
func watermarkImage(dataURL string) ([]byte, extension.Type, bool) {
	raw, _, ok := decodeDataImage(dataURL)
	if !ok {
		return nil, "", false
	}
	out, err := fadeImage(raw, watermarkOpacity)
	if err != nil {
		return nil, "", false
	}
	return out, extension.Png, true
}

func fadeImage(raw []byte, opacity float64) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("pdf: decodificar marca de agua: %w", err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			a := opacity * float64(c.A) / 255
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{
				R: blendWhite(c.R, a),
				G: blendWhite(c.G, a),
				B: blendWhite(c.B, a),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("pdf: codificar marca de agua: %w", err)
	}
	return buf.Bytes(), nil
}

func blendWhite(v uint8, a float64) uint8 {
	return uint8(255 - a*(255-float64(v)) + 0.5)
}
