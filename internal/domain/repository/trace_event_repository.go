package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// TraceEventRepository registro append-only de eventos. Las listas vienen ordenadas
// por timestamp descendente e id descendente.
type TraceEventRepository interface {
	Create(ctx context.Context, ev *entity.TraceEvent) error
	ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.TraceEvent, error)
	ListByContainer(ctx context.Context, containerID int64) ([]*entity.TraceEvent, error)
}
