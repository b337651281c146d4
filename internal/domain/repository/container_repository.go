package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// ContainerRepository persistencia de cajas, pallets y contenedores (una sola tabla con discriminante).
type ContainerRepository interface {
	Create(ctx context.Context, c *entity.ContainerUnit) error
	GetByID(ctx context.Context, id int64) (*entity.ContainerUnit, error)
	GetBySerial(ctx context.Context, serial string) (*entity.ContainerUnit, error)
	// List filtra por Kind; vacío = todos.
	List(ctx context.Context, kind string) ([]*entity.ContainerUnit, error)
	ListChildren(ctx context.Context, parentID int64) ([]*entity.ContainerUnit, error)
	Update(ctx context.Context, c *entity.ContainerUnit) error
}
