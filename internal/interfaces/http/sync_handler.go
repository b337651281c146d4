package http

import (
	"github.com/gofiber/fiber/v2"

	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
)

// SyncHandler dispara la copia del catálogo a la base espejo.
type SyncHandler struct {
	job *appmirror.Job
}

// NewSyncHandler construye el handler.
func NewSyncHandler(job *appmirror.Job) *SyncHandler {
	return &SyncHandler{job: job}
}

// Mirror godoc
// @Summary      Copiar catálogo a la base espejo
// @Description  Upsert por llave de cada tabla. Si una tabla falla las demás se copian igual.
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.MirrorReportResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sync/mirror [post]
func (h *SyncHandler) Mirror(c *fiber.Ctx) error {
	report, err := h.job.Run(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report.ToDTO())
}
