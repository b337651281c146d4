package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
)

// PackagingHandler jerarquías de empaque con sus niveles.
type PackagingHandler struct {
	uc *usecase.PackagingUseCase
}

// NewPackagingHandler construye el handler.
func NewPackagingHandler(uc *usecase.PackagingUseCase) *PackagingHandler {
	return &PackagingHandler{uc: uc}
}

// List godoc
// @Summary      Listar jerarquías de empaque
// @Tags         packaging
// @Produce      json
// @Success      200  {array}  dto.PackagingHierarchyDTO
// @Router       /api/packaging-hierarchy [get]
func (h *PackagingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener jerarquía
// @Tags         packaging
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.PackagingHierarchyDTO
// @Failure      404
// @Router       /api/packaging-hierarchy/{id} [get]
func (h *PackagingHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear jerarquía
// @Tags         packaging
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackagingHierarchyDTO  true  "Jerarquía con niveles"
// @Success      201  {object}  dto.PackagingHierarchyDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/packaging-hierarchy [post]
func (h *PackagingHandler) Create(c *fiber.Ctx) error {
	var in dto.PackagingHierarchyDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar jerarquía
// @Tags         packaging
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.PackagingHierarchyDTO  true  "Jerarquía con niveles"
// @Success      200  {object}  dto.PackagingHierarchyDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/packaging-hierarchy/{id} [put]
func (h *PackagingHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PackagingHierarchyDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar jerarquía
// @Tags         packaging
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/packaging-hierarchy/{id} [delete]
func (h *PackagingHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
