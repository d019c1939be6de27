package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/application/usecase"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
)

// InvoiceHandler maneja la vista previa, el PDF y la traducción de facturas.
type InvoiceHandler struct {
	preview   *billing.PreviewUseCase
	pdf       *billing.PDFUseCase
	translate *usecase.TranslateUseCase
	log       *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(preview *billing.PreviewUseCase, pdf *billing.PDFUseCase, translate *usecase.TranslateUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{preview: preview, pdf: pdf, translate: translate, log: log}
}

// Preview godoc
// @Summary      Vista previa de la factura
// @Description  Calcula totales (IVA 15% por defecto), el payload del QR ZATCA y el monto en palabras.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InvoiceRequest  true  "factura"
// @Success      200   {object}  dto.InvoicePreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.preview.Preview(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Representación gráfica en PDF
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        lang  query     string              false  "en | ar"
// @Param        body  body      dto.InvoiceRequest  true   "factura"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/pdf [post]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, filename, err := h.pdf.Render(c.Context(), in, c.Query("lang", entity.LangEnglish))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(filename)
	return c.Send(out)
}

// Translate godoc
// @Summary      Traducir ítems al árabe con IA
// @Description  Si el proveedor falla se copia el texto en inglés y fallback=true.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TranslateItemsRequest  true  "ítems"
// @Success      200   {object}  dto.TranslateItemsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/translate [post]
func (h *InvoiceHandler) Translate(c *fiber.Ctx) error {
	var in dto.TranslateItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.translate.TranslateItems(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
