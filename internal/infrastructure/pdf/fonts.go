package pdf

import (
	_ "embed"
	"sync"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// Las fuentes core del PDF solo cubren cp1252; el árabe necesita una TTF
// con las formas de presentación. DejaVu Sans cubre latín y árabe.
const arabicFontFamily = "dejavu"

var (
	//go:embed fonts/DejaVuSans.ttf
	dejavuRegular []byte
	//go:embed fonts/DejaVuSans-Bold.ttf
	dejavuBold []byte
)

// arabicFonts registra la familia en todos los estilos que usa la plantilla.
var arabicFonts = sync.OnceValues(func() ([]*entity.CustomFont, error) {
	return repository.New().
		AddUTF8FontFromBytes(arabicFontFamily, fontstyle.Normal, dejavuRegular).
		AddUTF8FontFromBytes(arabicFontFamily, fontstyle.Italic, dejavuRegular).
		AddUTF8FontFromBytes(arabicFontFamily, fontstyle.Bold, dejavuBold).
		AddUTF8FontFromBytes(arabicFontFamily, fontstyle.BoldItalic, dejavuBold).
		Load()
})
