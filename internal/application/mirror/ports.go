package mirror

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// Source lee el catálogo completo del almacén local.
type Source interface {
	Materials(ctx context.Context) ([]*entity.Material, error)
	HandlingParameters(ctx context.Context) ([]*entity.HandlingParameter, error)
	MaterialImages(ctx context.Context) ([]*entity.MaterialImage, error)
	MaterialDocuments(ctx context.Context) ([]*entity.MaterialDocument, error)
	PackagingHierarchies(ctx context.Context) ([]*entity.PackagingHierarchy, error)
}

// Sink escribe en el espejo hospedado con upsert por llave. Nunca borra.
type Sink interface {
	UpsertMaterials(ctx context.Context, rows []*entity.Material) error
	UpsertHandlingParameters(ctx context.Context, rows []*entity.HandlingParameter) error
	UpsertMaterialImages(ctx context.Context, rows []*entity.MaterialImage) error
	UpsertMaterialDocuments(ctx context.Context, rows []*entity.MaterialDocument) error
	UpsertPackagingHierarchies(ctx context.Context, rows []*entity.PackagingHierarchy) error
	UpsertPackagingLevels(ctx context.Context, rows []entity.PackagingLevel) error
}
