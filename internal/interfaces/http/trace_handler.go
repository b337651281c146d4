package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/trace"
)

// TraceHandler historial de trazabilidad y códigos QR.
type TraceHandler struct {
	uc *trace.UseCase
}

// NewTraceHandler construye el handler.
func NewTraceHandler(uc *trace.UseCase) *TraceHandler {
	return &TraceHandler{uc: uc}
}

// History godoc
// @Summary      Historial de una serie
// @Description  Busca primero en inventario y luego en contenedores. Del más reciente al más antiguo.
// @Tags         trace
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {array}  dto.TraceEventResponse
// @Router       /api/trace/{serial} [get]
func (h *TraceHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.GetHistory(c.UserContext(), pathParam(c, "serial"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QR godoc
// @Summary      Código QR con la URL de trazabilidad
// @Tags         trace
// @Produce      image/png
// @Param        serial  path  string  true  "Número de serie"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/trace/{serial}/qr [get]
func (h *TraceHandler) QR(c *fiber.Ctx) error {
	png, err := h.uc.QRCode(pathParam(c, "serial"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// RecordEvent godoc
// @Summary      Registrar evento de trazabilidad
// @Tags         trace
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TraceEventRequest  true  "Evento"
// @Success      201   {object}  dto.TraceEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/trace/events [post]
func (h *TraceHandler) RecordEvent(c *fiber.Ctx) error {
	var in dto.TraceEventRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordEvent(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
