package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// PackagingRepository persistencia de jerarquías de empaque con sus niveles.
type PackagingRepository interface {
	Create(ctx context.Context, h *entity.PackagingHierarchy) error
	Get(ctx context.Context, id int64) (*entity.PackagingHierarchy, error)
	List(ctx context.Context) ([]*entity.PackagingHierarchy, error)
	// Update reemplaza la cabecera y todos los niveles.
	Update(ctx context.Context, h *entity.PackagingHierarchy) error
	Delete(ctx context.Context, id int64) error
}
