package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para unidades serializadas (DIP).
type InventoryRepository interface {
	// CreateBatch inserta las unidades en orden y les asigna ID.
	CreateBatch(ctx context.Context, units []*entity.InventoryUnit) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryUnit, error)
	GetBySerial(ctx context.Context, serial string) (*entity.InventoryUnit, error)
	// FindByIDs devuelve solo las unidades existentes; los ids desconocidos se omiten.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.InventoryUnit, error)
	List(ctx context.Context) ([]*entity.InventoryUnit, error)
	ListByBox(ctx context.Context, boxID int64) ([]*entity.InventoryUnit, error)
	Update(ctx context.Context, unit *entity.InventoryUnit) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}
