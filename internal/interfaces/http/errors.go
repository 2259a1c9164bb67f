package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
)

// paramID lee :id como entero positivo; responde 400 si no lo es.
func paramID(c *fiber.Ctx) (int, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	return id, true, nil
}

// paramInt lee :id como entero sin acotar su valor; responde 400 solo si no es numérico.
// El carrito decide qué hacer con IDs que no existen.
func paramInt(c *fiber.Ctx) (int, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	return id, true, nil
}

// writeDomainError traduce errores de dominio a status HTTP.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrMalformed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
