package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura en inglés o árabe.
type PDFUseCase struct {
	preview   *PreviewUseCase
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(preview *PreviewUseCase, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{preview: preview, generator: generator}
}

// Render calcula la factura y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename = invoice-<no>-<lang>.pdf
//     (en <no> todo carácter fuera de [A-Za-z0-9._-] se reemplaza por "_")
//   - domain.ErrInvalidInput     si el idioma no es "en" ni "ar" o la factura no es válida.
func (uc *PDFUseCase) Render(ctx context.Context, in dto.InvoiceRequest, lang string) (pdfBytes []byte, filename string, err error) {
	if lang == "" {
		lang = entity.LangEnglish
	}
	if lang != entity.LangEnglish && lang != entity.LangArabic {
		return nil, "", fmt.Errorf("%w: idioma %q no soportado", domain.ErrInvalidInput, lang)
	}

	doc, err := uc.preview.BuildDocument(ctx, in, lang)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice-%s-%s.pdf", filenamePart(doc.Invoice.InvoiceNo), lang)
	return pdfBytes, filename, nil
}

// filenamePart deja el número de factura apto para un nombre de archivo en
// Content-Disposition.
func filenamePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
}
