package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
	"github.com/jhoicas/facturador-zatca/internal/domain/invoice"
	"github.com/jhoicas/facturador-zatca/internal/domain/words"
	domainzatca "github.com/jhoicas/facturador-zatca/internal/domain/zatca"
)

// PreviewUseCase calcula totales, QR y monto en palabras de una factura.
type PreviewUseCase struct {
	qr  PayloadBuilder
	cfg Config
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(qr PayloadBuilder, cfg Config) *PreviewUseCase {
	return &PreviewUseCase{qr: qr, cfg: cfg}
}

// Preview devuelve la vista previa para la plantilla.
func (uc *PreviewUseCase) Preview(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoicePreviewResponse, error) {
	doc, err := uc.BuildDocument(ctx, in, entity.LangEnglish)
	if err != nil {
		return nil, err
	}
	return &dto.InvoicePreviewResponse{
		InvoiceNo: doc.Invoice.InvoiceNo,
		Items:     itemsToDTO(doc.Invoice.Items),
		Totals: dto.TotalsResponse{
			Taxable: doc.Totals.Taxable,
			VAT:     doc.Totals.VAT,
			Net:     doc.Totals.Net,
		},
		QRPayload:     doc.QRPayload,
		AmountInWords: doc.AmountInWords,
		CaptionEN:     doc.CaptionEN,
		CaptionAR:     doc.CaptionAR,
	}, nil
}

// BuildDocument valida la factura y calcula todo lo necesario para pintarla.
//
// El tag 4 del QR lleva el gran total (con IVA) y el tag 5 el IVA.
// Retorna domain.ErrInvalidInput, zatca.ErrFieldTooLarge, zatca.ErrInvalidTimestamp o words.ErrAmountOutOfRange envueltos.
func (uc *PreviewUseCase) BuildDocument(_ context.Context, in dto.InvoiceRequest, lang string) (*InvoiceDocument, error) {
	inv := toEntity(in)
	if err := invoice.Validate(&inv); err != nil {
		return nil, err
	}
	totals := invoice.ComputeTotals(inv.Items, uc.cfg.VATRate)

	payload, err := uc.qr.Build(domainzatca.QRMeta{
		SellerName:   inv.SellerName,
		SellerVATNo:  inv.SellerVATNo,
		Timestamp:    inv.InvoiceDate,
		InvoiceTotal: totals.Net.StringFixed(2),
		VATTotal:     totals.VAT.StringFixed(2),
	})
	if err != nil {
		return nil, fmt.Errorf("qr zatca: %w", err)
	}

	amountWords, err := words.Convert(totals.Net)
	if err != nil {
		return nil, fmt.Errorf("monto en palabras: %w", err)
	}
	captionEN, err := words.Caption(totals.Net, uc.cfg.CurrencyEN)
	if err != nil {
		return nil, fmt.Errorf("monto en palabras: %w", err)
	}

	return &InvoiceDocument{
		Invoice:       inv,
		Totals:        totals,
		VATRate:       uc.cfg.VATRate,
		QRPayload:     payload,
		AmountInWords: amountWords,
		CaptionEN:     captionEN,
		CaptionAR:     amountWords + " " + uc.cfg.CurrencyAR + " فقط",
		Currency:      uc.cfg.CurrencyCode,
		Lang:          lang,
	}, nil
}
