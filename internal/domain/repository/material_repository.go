package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// MaterialFilter criterios de búsqueda del catálogo. Search compara contra código y nombre
// sin distinguir mayúsculas ni tildes.
type MaterialFilter struct {
	Search string
	Limit  int
	Offset int
}

// MaterialRepository define el puerto de persistencia para el maestro de materiales (DIP).
type MaterialRepository interface {
	// Get devuelve el material con su parámetro de manipulación, o (nil, nil) si no existe.
	Get(ctx context.Context, code string) (*entity.Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]*entity.Material, int, error)
	// Upsert crea o actualiza por código, incluido el parámetro de manipulación si viene.
	Upsert(ctx context.Context, material *entity.Material) error
	Delete(ctx context.Context, code string) error

	ListImages(ctx context.Context, code string) ([]*entity.MaterialImage, error)
	AddImage(ctx context.Context, img *entity.MaterialImage) error
	ListDocuments(ctx context.Context, code string) ([]*entity.MaterialDocument, error)
	AddDocument(ctx context.Context, doc *entity.MaterialDocument) error
}
