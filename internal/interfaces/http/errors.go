package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
)

// respondError mapea los errores de dominio a respuestas HTTP. Cualquier
// error no clasificado se reporta como fallo del backend remoto (502): la
// consola no tiene estado propio que pueda fallar con 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionClosed):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: err.Error()})
	}
}

// paramID lee el parámetro de ruta :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int64(id), nil
}
