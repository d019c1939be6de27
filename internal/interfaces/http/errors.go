package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain"
	"github.com/jhoicas/facturador-zatca/internal/domain/words"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

// errorMapping traduce errores de dominio a status + código. El orden importa:
// los tipos concretos van antes que los sentinel genéricos.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{zatca.ErrFieldTooLarge, fiber.StatusUnprocessableEntity, "FIELD_TOO_LARGE"},
	{zatca.ErrInvalidTimestamp, fiber.StatusUnprocessableEntity, "INVALID_TIMESTAMP"},
	{words.ErrAmountOutOfRange, fiber.StatusUnprocessableEntity, "AMOUNT_OUT_OF_RANGE"},
	{words.ErrNegativeAmount, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidAmount, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{zatca.ErrMalformedTLV, fiber.StatusBadRequest, "VALIDATION"},
	{zatca.ErrInvalidTag, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{context.DeadlineExceeded, fiber.StatusRequestTimeout, "TIMEOUT"},
}

// writeError responde con el ErrorResponse correspondiente. Los errores no mapeados
// se registran y se devuelven como 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}
