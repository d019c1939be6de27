package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
)

// ZATCAHandler expone el QR de factura simplificada.
type ZATCAHandler struct {
	uc  *billing.QRUseCase
	log *logger.Logger
}

// NewZATCAHandler construye el handler.
func NewZATCAHandler(uc *billing.QRUseCase, log *logger.Logger) *ZATCAHandler {
	return &ZATCAHandler{uc: uc, log: log}
}

// QR godoc
// @Summary      Payload Base64 del QR ZATCA
// @Tags         zatca
// @Accept       json
// @Produce      json
// @Param        body  body      dto.QRRequest  true  "campos del QR"
// @Success      200   {object}  dto.QRResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/zatca/qr [post]
func (h *ZATCAHandler) QR(c *fiber.Ctx) error {
	var in dto.QRRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Generate(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Batch POST /api/zatca/qr/batch
func (h *ZATCAHandler) Batch(c *fiber.Ctx) error {
	var in dto.QRBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GenerateBatch(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("client_id", GetClientID(c)).Int("count", len(out.Payloads)).Msg("lote de QR generado")
	return c.JSON(out)
}

// Decode POST /api/zatca/qr/decode
func (h *ZATCAHandler) Decode(c *fiber.Ctx) error {
	var in dto.QRDecodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Decode(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// PNG POST /api/zatca/qr.png?size=N
func (h *ZATCAHandler) PNG(c *fiber.Ctx) error {
	var in dto.QRRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	png, err := h.uc.PNG(in, c.QueryInt("size", 0))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
