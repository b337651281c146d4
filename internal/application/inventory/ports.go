package inventory

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Registro de lotes y empaque son todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		containerRepo repository.ContainerRepository,
	) error) error
}
