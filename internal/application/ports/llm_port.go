package ports

import (
	"context"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
)

// Translator define el puerto de salida para traducir las líneas de la factura al árabe.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type Translator interface {
	// TranslateItem traduce título y descripción de un producto para una factura técnica.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	TranslateItem(ctx context.Context, title, description string) (*dto.ItemTranslation, error)
}
