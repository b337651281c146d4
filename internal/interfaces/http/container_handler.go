package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/inventory"
)

// ContainerHandler cajas, pallets y contenedores de embarque.
type ContainerHandler struct {
	uc *inventory.UseCase
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *inventory.UseCase) *ContainerHandler {
	return &ContainerHandler{uc: uc}
}

// List godoc
// @Summary      Listar contenedores
// @Tags         containers
// @Produce      json
// @Param        kind  query  string  false  "BOX, PALLET o SHIPPING_CONTAINER"
// @Success      200   {array}   dto.ContainerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/containers [get]
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListContainers(c.UserContext(), c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear contenedor vacío
// @Tags         containers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContainerRequest  true  "Tipo y serie del contenedor"
// @Success      201   {object}  dto.ContainerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/containers [post]
func (h *ContainerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContainerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateContainer(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener contenedor por serie
// @Tags         containers
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {object}  dto.ContainerResponse
// @Failure      404
// @Router       /api/containers/{serial} [get]
func (h *ContainerHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetContainer(c.UserContext(), pathParam(c, "serial"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contents godoc
// @Summary      Contenido directo de un contenedor
// @Tags         containers
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {object}  dto.ContentsResponse
// @Failure      404
// @Router       /api/containers/{serial}/contents [get]
func (h *ContainerHandler) Contents(c *fiber.Ctx) error {
	out, err := h.uc.Contents(c.UserContext(), pathParam(c, "serial"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Nest godoc
// @Summary      Anidar contenedores dentro de otro
// @Tags         containers
// @Accept       json
// @Produce      json
// @Param        serial  path  string           true  "Serie del contenedor padre"
// @Param        body    body  dto.NestRequest  true  "Series de los hijos"
// @Success      200  {object}  dto.ContainerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/containers/{serial}/nest [post]
func (h *ContainerHandler) Nest(c *fiber.Ctx) error {
	var in dto.NestRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.NestContainers(c.UserContext(), pathParam(c, "serial"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Seal godoc
// @Summary      Cerrar contenedor
// @Tags         containers
// @Accept       json
// @Produce      json
// @Param        serial  path  string           true  "Número de serie"
// @Param        body    body  dto.SealRequest  false "Número de sello"
// @Success      200  {object}  dto.ContainerResponse
// @Failure      404
// @Router       /api/containers/{serial}/seal [post]
func (h *ContainerHandler) Seal(c *fiber.Ctx) error {
	var in dto.SealRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.SealContainer(c.UserContext(), pathParam(c, "serial"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
