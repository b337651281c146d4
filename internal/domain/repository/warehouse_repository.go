package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse y sus ubicaciones (DIP).
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	// Get devuelve la bodega con sus ubicaciones, o (nil, nil) si no existe.
	Get(ctx context.Context, code string) (*entity.Warehouse, error)
	// Save persiste el agregado completo: cabecera + reemplazo del conjunto de ubicaciones.
	Save(ctx context.Context, w *entity.Warehouse) error
	Delete(ctx context.Context, code string) error
	// GetLocation búsqueda inversa ubicación → bodega por el índice de storage_location.
	GetLocation(ctx context.Context, id int64) (*entity.StorageLocation, error)
}
