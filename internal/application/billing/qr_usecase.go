package billing

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain"
	domainzatca "github.com/jhoicas/facturador-zatca/internal/domain/zatca"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

// MaxBatchSize límite de facturas por petición de lote.
const MaxBatchSize = 1000

// Límites del PNG en píxeles.
const (
	minQRSize = 64
	maxQRSize = 1024
)

// QRUseCase expone el QR ZATCA de forma independiente a la factura completa.
type QRUseCase struct {
	builder  PayloadBuilder
	codec    zatca.Codec
	renderer QRImageRenderer
	cfg      Config
}

// NewQRUseCase construye el caso de uso.
func NewQRUseCase(builder PayloadBuilder, codec zatca.Codec, renderer QRImageRenderer, cfg Config) *QRUseCase {
	return &QRUseCase{builder: builder, codec: codec, renderer: renderer, cfg: cfg}
}

// Generate construye el payload de un QR.
func (uc *QRUseCase) Generate(in dto.QRRequest) (*dto.QRResponse, error) {
	payload, err := uc.builder.Build(toMeta(in))
	if err != nil {
		return nil, err
	}
	return &dto.QRResponse{Payload: payload}, nil
}

// GenerateBatch construye los payloads en paralelo y los devuelve en el orden de entrada.
// El primer error cancela el lote e indica la posición de la factura que falló.
func (uc *QRUseCase) GenerateBatch(ctx context.Context, in dto.QRBatchRequest) (*dto.QRBatchResponse, error) {
	if len(in.Invoices) == 0 {
		return nil, fmt.Errorf("%w: el lote está vacío", domain.ErrInvalidInput)
	}
	if len(in.Invoices) > MaxBatchSize {
		return nil, fmt.Errorf("%w: el lote supera %d facturas", domain.ErrInvalidInput, MaxBatchSize)
	}

	payloads := make([]string, len(in.Invoices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range in.Invoices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := uc.builder.Build(toMeta(req))
			if err != nil {
				return fmt.Errorf("factura %d: %w", i, err)
			}
			payloads[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.QRBatchResponse{Payloads: payloads}, nil
}

// Decode inspecciona un payload: Base64 → registros TLV.
func (uc *QRUseCase) Decode(in dto.QRDecodeRequest) (*dto.QRDecodeResponse, error) {
	raw, err := uc.codec.DecodeString(in.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload no es Base64 válido", domain.ErrInvalidInput)
	}
	fields, err := zatca.Decode(raw)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QRFieldResponse, 0, len(fields))
	for _, f := range fields {
		r := dto.QRFieldResponse{Tag: int(f.Tag), Name: zatca.TagName(f.Tag), Length: len(f.Value)}
		if zatca.IsTextTag(f.Tag) {
			r.Value = string(f.Value)
		} else {
			r.ValueBase64 = uc.codec.EncodeToString(f.Value)
		}
		out = append(out, r)
	}
	return &dto.QRDecodeResponse{Fields: out}, nil
}

// PNG construye el payload y lo dibuja. size <= 0 usa el tamaño configurado.
func (uc *QRUseCase) PNG(in dto.QRRequest, size int) ([]byte, error) {
	if size <= 0 {
		size = uc.cfg.QRSize
	}
	if size < minQRSize || size > maxQRSize {
		return nil, fmt.Errorf("%w: size debe estar entre %d y %d", domain.ErrInvalidInput, minQRSize, maxQRSize)
	}
	payload, err := uc.builder.Build(toMeta(in))
	if err != nil {
		return nil, err
	}
	png, err := uc.renderer.RenderPNG(payload, size)
	if err != nil {
		return nil, fmt.Errorf("qr png: %w", err)
	}
	return png, nil
}

func toMeta(in dto.QRRequest) domainzatca.QRMeta {
	return domainzatca.QRMeta{
		SellerName:   in.SellerName,
		SellerVATNo:  in.SellerVATNo,
		Timestamp:    in.Timestamp,
		InvoiceTotal: in.InvoiceTotal,
		VATTotal:     in.VATTotal,
	}
}
