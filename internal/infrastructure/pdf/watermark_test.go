package pdf

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermarkImage(t *testing.T) {
	out, ext, ok := watermarkImage(pixelDataURL)
	require.True(t, ok)
	assert.Equal(t, extension.Png, ext)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	// Al 10% sobre blanco ningún canal baja de ~230.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			for _, c := range []uint32{r >> 8, g >> 8, b >> 8} {
				assert.GreaterOrEqual(t, c, uint32(229))
			}
		}
	}
}

func TestWatermarkImage_Invalid(t *testing.T) {
	for _, bad := range []string{"", "https://example.com/mark.png", "data:image/png;base64,aGVsbG8="} {
		_, _, ok := watermarkImage(bad)
		assert.False(t, ok, bad)
	}
}

func TestBlendWhite(t *testing.T) {
	assert.Equal(t, uint8(255), blendWhite(0, 0))
	assert.Equal(t, uint8(0), blendWhite(0, 1))
	assert.Equal(t, uint8(230), blendWhite(0, 0.1))
}
