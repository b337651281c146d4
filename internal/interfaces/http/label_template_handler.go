package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
)

// LabelTemplateHandler plantillas de etiqueta, render PDF y exportación XML.
type LabelTemplateHandler struct {
	uc *usecase.LabelTemplateUseCase
}

// NewLabelTemplateHandler construye el handler.
func NewLabelTemplateHandler(uc *usecase.LabelTemplateUseCase) *LabelTemplateHandler {
	return &LabelTemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas
// @Tags         label-templates
// @Produce      json
// @Param        level  query  string  false  "ITEM, BOX, PALLET o CONTAINER"
// @Success      200  {array}  dto.LabelTemplateDTO
// @Router       /api/label-templates [get]
func (h *LabelTemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("level"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener plantilla
// @Tags         label-templates
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.LabelTemplateDTO
// @Failure      404
// @Router       /api/label-templates/{id} [get]
func (h *LabelTemplateHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Crear plantilla
// @Tags         label-templates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LabelTemplateDTO  true  "Plantilla"
// @Success      200   {object}  dto.LabelTemplateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/label-templates [post]
func (h *LabelTemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.LabelTemplateDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plantilla
// @Tags         label-templates
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.LabelTemplateDTO  true  "Plantilla"
// @Success      200   {object}  dto.LabelTemplateDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/label-templates/{id} [put]
func (h *LabelTemplateHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.LabelTemplateDTO
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
// @Summary      Eliminar plantilla
// @Tags         label-templates
// @Param        id  path  int  true  "ID"
// @Success      204
// @Router       /api/label-templates/{id} [delete]
func (h *LabelTemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Render godoc
// @Summary      Etiqueta PDF para una serie
// @Tags         label-templates
// @Produce      application/pdf
// @Param        id      path   int     true  "ID"
// @Param        serial  query  string  true  "Número de serie"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/label-templates/{id}/render [get]
func (h *LabelTemplateHandler) Render(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	serial := c.Query("serial")
	pdf, err := h.uc.RenderPDF(c.UserContext(), id, serial)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="label-`+sanitizeFilename(serial)+`.pdf"`)
	return c.Send(pdf)
}

// Export godoc
// @Summary      Layout XML para impresoras
// @Description  El ETag es el SHA-256 de la forma canónica (C14N) del documento.
// @Tags         label-templates
// @Produce      application/xml
// @Param        id  path  int  true  "ID"
// @Success      200  {string}  string
// @Success      304
// @Failure      404
// @Router       /api/label-templates/{id}/export [get]
func (h *LabelTemplateHandler) Export(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc, fingerprint, err := h.uc.ExportXML(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	etag := `"` + fingerprint + `"`
	c.Set(fiber.HeaderETag, etag)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(doc)
}

// sanitizeFilename deja solo caracteres seguros para Content-Disposition.
func sanitizeFilename(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
