package trace

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/ports"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
	"github.com/jhoicas/ilms-api/internal/domain/trace"
)

// QRSize lado en píxeles del PNG de trazabilidad.
const QRSize = 256

// UseCase historial de trazabilidad por número de serie.
type UseCase struct {
	inventoryRepo repository.InventoryRepository
	containerRepo repository.ContainerRepository
	eventRepo     repository.TraceEventRepository
	qr            ports.QREncoder
	baseURL       string
	now           func() time.Time
}

// NewUseCase construye el caso de uso. baseURL es la URL pública de /api/trace.
func NewUseCase(
	inventoryRepo repository.InventoryRepository,
	containerRepo repository.ContainerRepository,
	eventRepo repository.TraceEventRepository,
	qr ports.QREncoder,
	baseURL string,
) *UseCase {
	return &UseCase{
		inventoryRepo: inventoryRepo,
		containerRepo: containerRepo,
		eventRepo:     eventRepo,
		qr:            qr,
		baseURL:       strings.TrimRight(baseURL, "/"),
		now:           time.Now,
	}
}

// GetHistory busca la serie primero en inventario y luego en contenedores.
// Una serie desconocida devuelve lista vacía, no error.
func (uc *UseCase) GetHistory(ctx context.Context, serial string) ([]dto.TraceEventResponse, error) {
	var events []*entity.TraceEvent

	unit, err := uc.inventoryRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if unit != nil {
		events, err = uc.eventRepo.ListByInventory(ctx, unit.ID)
	} else {
		var c *entity.ContainerUnit
		c, err = uc.containerRepo.GetBySerial(ctx, serial)
		if err != nil {
			return nil, err
		}
		if c != nil {
			events, err = uc.eventRepo.ListByContainer(ctx, c.ID)
		}
	}
	if err != nil {
		return nil, err
	}

	trace.SortNewestFirst(events)
	out := make([]dto.TraceEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out, nil
}

// RecordEvent agrega un evento al historial.
func (uc *UseCase) RecordEvent(ctx context.Context, in dto.TraceEventRequest) (*dto.TraceEventResponse, error) {
	ev := &entity.TraceEvent{
		EventType:   in.EventType,
		Location:    in.Location,
		Actor:       in.User,
		Notes:       in.Notes,
		Status:      in.Status,
		InventoryID: in.InventoryID,
		ContainerID: in.ContainerID,
	}
	if in.Timestamp != nil {
		ev.Timestamp = *in.Timestamp
	}
	if err := trace.Prepare(ev, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Create(ctx, ev); err != nil {
		return nil, err
	}
	resp := toEventResponse(ev)
	return &resp, nil
}

// TraceURL URL pública del historial de una serie.
func (uc *UseCase) TraceURL(serial string) string {
	return uc.baseURL + "/" + url.PathEscape(serial)
}

// QRCode PNG con la URL de trazabilidad de la serie.
func (uc *UseCase) QRCode(serial string) ([]byte, error) {
	if strings.TrimSpace(serial) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.qr.PNG(uc.TraceURL(serial), QRSize)
}

func toEventResponse(ev *entity.TraceEvent) dto.TraceEventResponse {
	return dto.TraceEventResponse{
		ID:          ev.ID,
		EventType:   ev.EventType,
		Timestamp:   ev.Timestamp,
		Location:    ev.Location,
		User:        ev.Actor,
		Notes:       ev.Notes,
		Status:      ev.Status,
		InventoryID: ev.InventoryID,
		ContainerID: ev.ContainerID,
	}
}
