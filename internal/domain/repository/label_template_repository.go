package repository

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// LabelTemplateRepository persistencia de plantillas de etiqueta.
type LabelTemplateRepository interface {
	Create(ctx context.Context, t *entity.LabelTemplate) error
	Get(ctx context.Context, id int64) (*entity.LabelTemplate, error)
	// List filtra por nivel (ITEM, BOX, ...); vacío = todas.
	List(ctx context.Context, level string) ([]*entity.LabelTemplate, error)
	Update(ctx context.Context, t *entity.LabelTemplate) error
	Delete(ctx context.Context, id int64) error
}
