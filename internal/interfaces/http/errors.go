package http

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
	"github.com/jhoicas/ilms-api/internal/domain"
)

// respondError traduce errores de dominio a HTTP. 404 va sin cuerpo.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// SendStatus escribiría "Not Found" como cuerpo
		c.Status(fiber.StatusNotFound)
		return nil
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, appmirror.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MIRROR_DISABLED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s debe ser un entero positivo", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// pathParam devuelve el segmento de ruta decodificado ("BX%20100" -> "BX 100", "LOTE%2F1" -> "LOTE/1").
// Fiber entrega los parámetros tal como llegan; un escape inválido se deja sin tocar.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}
