package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/application/ports"
	"github.com/jhoicas/facturador-zatca/internal/domain"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
)

// translateTimeout aplica a la traducción de todas las líneas de una factura.
const translateTimeout = 10 * time.Second

// maxConcurrentTranslations limita las llamadas simultáneas al LLM.
const maxConcurrentTranslations = 4

// TranslateUseCase traduce al árabe las líneas de la factura usando el puerto Translator.
// Si cualquier traducción falla, copia el texto en inglés en los campos árabes para no bloquear la factura.
type TranslateUseCase struct {
	translator ports.Translator
	log        *logger.Logger
}

// NewTranslateUseCase construye el caso de uso inyectando el puerto Translator.
func NewTranslateUseCase(translator ports.Translator, log *logger.Logger) *TranslateUseCase {
	return &TranslateUseCase{translator: translator, log: log}
}

// TranslateItems traduce todas las líneas en paralelo y devuelve una copia con los campos árabes completos.
func (uc *TranslateUseCase) TranslateItems(ctx context.Context, in dto.TranslateItemsRequest) (*dto.TranslateItemsResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items es obligatorio", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, translateTimeout)
	defer cancel()

	items := make([]dto.InvoiceItemRequest, len(in.Items))
	copy(items, in.Items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTranslations)
	for i := range items {
		line := entity.InvoiceItem{Title: items[i].Title, Description: items[i].Description}
		if !line.NeedsTranslation() {
			items[i].TitleArabic, items[i].DescriptionArabic = "", ""
			continue
		}
		g.Go(func() error {
			tr, err := uc.translator.TranslateItem(gctx, items[i].Title, items[i].Description)
			if err != nil {
				return fmt.Errorf("ítem %d: %w", i+1, err)
			}
			items[i].TitleArabic = strings.TrimSpace(tr.Title)
			items[i].DescriptionArabic = strings.TrimSpace(tr.Description)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.log.Warn().Err(err).Int("items", len(items)).Msg("traducción al árabe fallida, se usa el texto en inglés")
		fallback := make([]dto.InvoiceItemRequest, len(in.Items))
		for i, it := range in.Items {
			it.TitleArabic = it.Title
			it.DescriptionArabic = it.Description
			fallback[i] = it
		}
		return &dto.TranslateItemsResponse{Items: fallback, Fallback: true}, nil
	}
	return &dto.TranslateItemsResponse{Items: items}, nil
}
