package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
)

// MaterialHandler maestro de materiales con imágenes y documentos.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiales
// @Description  search busca en código y nombre sin distinguir mayúsculas ni tildes.
// @Tags         materials
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar"
// @Param        page    query  int     false  "Página (base 0)"  default(0)
// @Param        size    query  int     false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "page y size deben ser numéricos"})
	}
	out, err := h.uc.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener material
// @Tags         materials
// @Produce      json
// @Param        code  path  string  true  "Código de material"
// @Success      200  {object}  dto.MaterialDTO
// @Failure      404
// @Router       /api/materials/{code} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), pathParam(c, "code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o actualizar material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialDTO  true  "Material"
// @Success      200   {object}  dto.MaterialDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Save(c *fiber.Ctx) error {
	var in dto.MaterialDTO
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
// @Summary      Actualizar material existente
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        code  path  string           true  "Código de material"
// @Param        body  body  dto.MaterialDTO  true  "Material"
// @Success      200   {object}  dto.MaterialDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/materials/{code} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.MaterialDTO
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
// @Summary      Eliminar material
// @Tags         materials
// @Param        code  path  string  true  "Código de material"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materials/{code} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), pathParam(c, "code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListImages godoc
// @Summary      Imágenes del material
// @Tags         materials
// @Produce      json
// @Param        code  path  string  true  "Código de material"
// @Success      200  {array}  dto.MaterialFileResponse
// @Failure      404
// @Router       /api/materials/{code}/images [get]
func (h *MaterialHandler) ListImages(c *fiber.Ctx) error {
	out, err := h.uc.ListImages(c.UserContext(), pathParam(c, "code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddImage godoc
// @Summary      Agregar imagen al material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        code  path  string                   true  "Código de material"
// @Param        body  body  dto.MaterialFileRequest  true  "Metadatos"
// @Success      201  {object}  dto.MaterialFileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/materials/{code}/images [post]
func (h *MaterialHandler) AddImage(c *fiber.Ctx) error {
	var in dto.MaterialFileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddImage(c.UserContext(), pathParam(c, "code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDocuments godoc
// @Summary      Documentos del material
// @Tags         materials
// @Produce      json
// @Param        code  path  string  true  "Código de material"
// @Success      200  {array}  dto.MaterialFileResponse
// @Failure      404
// @Router       /api/materials/{code}/documents [get]
func (h *MaterialHandler) ListDocuments(c *fiber.Ctx) error {
	out, err := h.uc.ListDocuments(c.UserContext(), pathParam(c, "code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddDocument godoc
// @Summary      Agregar documento al material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        code  path  string                   true  "Código de material"
// @Param        body  body  dto.MaterialFileRequest  true  "Metadatos"
// @Success      201  {object}  dto.MaterialFileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/materials/{code}/documents [post]
func (h *MaterialHandler) AddDocument(c *fiber.Ctx) error {
	var in dto.MaterialFileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddDocument(c.UserContext(), pathParam(c, "code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
