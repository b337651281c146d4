package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
)

// WarehouseHandler mantenimiento de bodegas con sus ubicaciones.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener bodega por código
// @Tags         warehouses
// @Produce      json
// @Param        code  path  string  true  "Código de bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404
// @Router       /api/warehouses/{code} [get]
func (h *WarehouseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), pathParam(c, "code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar bodega
// @Description  Alta o reemplazo del agregado completo. Las ubicaciones que no vienen se eliminan.
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Bodega con ubicaciones"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Save(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar bodega existente
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        code  path  string                true  "Código de bodega"
// @Param        body  body  dto.WarehouseRequest  true  "Bodega con ubicaciones"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{code} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), pathParam(c, "code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bodega
// @Tags         warehouses
// @Param        code  path  string  true  "Código de bodega"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{code} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), pathParam(c, "code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Location godoc
// @Summary      Ubicación por ID con su bodega
// @Tags         warehouses
// @Produce      json
// @Param        id  path  int  true  "ID de ubicación"
// @Success      200  {object}  dto.LocationLookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/locations/{id} [get]
func (h *WarehouseHandler) Location(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.LocationByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
