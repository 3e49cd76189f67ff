package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Pranshau/Rating-App/internal/application/dto"
)

// serverError registra el error real y responde un 500 genérico: el detalle
// interno (SQL, driver, etc.) nunca viaja al cliente.
func serverError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error del servidor"})
}
