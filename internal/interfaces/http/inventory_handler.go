package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/inventory"
)

// InventoryHandler registro de lotes, empaque y consultas de unidades.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar unidades de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InventoryUnitResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Counts godoc
// @Summary      Conteo de unidades por estado
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.StatusCountResponse
// @Router       /api/inventory/counts [get]
func (h *InventoryHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.CountByStatus(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySerial godoc
// @Summary      Obtener unidad por número de serie
// @Tags         inventory
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {object}  dto.InventoryUnitResponse
// @Failure      404
// @Router       /api/inventory/{serial} [get]
func (h *InventoryHandler) GetBySerial(c *fiber.Ctx) error {
	out, err := h.uc.GetBySerial(c.UserContext(), pathParam(c, "serial"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterBatch godoc
// @Summary      Registrar lote de unidades serializadas
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBatchRequest  true  "materialCode, batchNumber, quantity"
// @Success      200   {array}   dto.InventoryUnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/register-batch [post]
func (h *InventoryHandler) RegisterBatch(c *fiber.Ctx) error {
	var in dto.RegisterBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterBatch(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PackBox godoc
// @Summary      Empacar unidades en una caja nueva
// @Description  Crea una caja FULL con la serie indicada. Los ids inexistentes se omiten.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackBoxRequest  true  "inventoryIds, boxSerial"
// @Success      200   {object}  dto.ContainerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/pack-box [post]
func (h *InventoryHandler) PackBox(c *fiber.Ctx) error {
	var in dto.PackBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PackItemsIntoBox(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
