package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
)

// WordsHandler convierte montos a palabras.
type WordsHandler struct {
	uc  *billing.WordsUseCase
	log *logger.Logger
}

func NewWordsHandler(uc *billing.WordsUseCase, log *logger.Logger) *WordsHandler {
	return &WordsHandler{uc: uc, log: log}
}

// Convert godoc
// @Summary      Monto en palabras (inglés)
// @Tags         amounts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AmountWordsRequest  true  "monto"
// @Success      200   {object}  dto.AmountWordsResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/amounts/words [post]
func (h *WordsHandler) Convert(c *fiber.Ctx) error {
	var in dto.AmountWordsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Convert(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
