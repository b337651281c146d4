package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

var _ repository.LabelTemplateRepository = (*LabelTemplateRepo)(nil)

const labelTemplateColumns = `id, name, level_name, width_mm, height_mm, layout, status, material_code`

// LabelTemplateRepo plantillas de etiqueta sobre PostgreSQL.
type LabelTemplateRepo struct {
	q Querier
}

// NewLabelTemplateRepository construye el adaptador de persistencia para plantillas de etiqueta.
func NewLabelTemplateRepository(q Querier) *LabelTemplateRepo {
	return &LabelTemplateRepo{q: q}
}

func scanLabelTemplate(row pgx.Row) (*entity.LabelTemplate, error) {
	var t entity.LabelTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.LevelName, &t.WidthMM, &t.HeightMM, &t.Layout, &t.Status, &t.MaterialCode); err != nil {
		return nil, err
	}
	return &t, nil
}

func layoutOrEmpty(t *entity.LabelTemplate) []byte {
	if len(t.Layout) == 0 {
		return []byte("{}")
	}
	return t.Layout
}

// Create inserta la plantilla y asigna ID.
func (r *LabelTemplateRepo) Create(ctx context.Context, t *entity.LabelTemplate) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO label_template (name, level_name, width_mm, height_mm, layout, status, material_code)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7) RETURNING id`,
		t.Name, t.LevelName, t.WidthMM, t.HeightMM, string(layoutOrEmpty(t)), t.Status, t.MaterialCode,
	).Scan(&t.ID)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert label template: %w", err)
	}
	return nil
}

// Get obtiene una plantilla por ID.
func (r *LabelTemplateRepo) Get(ctx context.Context, id int64) (*entity.LabelTemplate, error) {
	t, err := scanLabelTemplate(r.q.QueryRow(ctx, `SELECT `+labelTemplateColumns+` FROM label_template WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get label template: %w", err)
	}
	return t, nil
}

// List plantillas por nivel; level vacío devuelve todas.
func (r *LabelTemplateRepo) List(ctx context.Context, level string) ([]*entity.LabelTemplate, error) {
	query := `SELECT ` + labelTemplateColumns + ` FROM label_template`
	args := []any{}
	if level != "" {
		query += ` WHERE level_name = $1`
		args = append(args, level)
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list label templates: %w", err)
	}
	defer rows.Close()
	list := []*entity.LabelTemplate{}
	for rows.Next() {
		t, err := scanLabelTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan label template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos de la plantilla.
func (r *LabelTemplateRepo) Update(ctx context.Context, t *entity.LabelTemplate) error {
	_, err := r.q.Exec(ctx, `
		UPDATE label_template SET name = $2, level_name = $3, width_mm = $4, height_mm = $5, layout = $6::jsonb,
			status = $7, material_code = $8
		WHERE id = $1`,
		t.ID, t.Name, t.LevelName, t.WidthMM, t.HeightMM, string(layoutOrEmpty(t)), t.Status, t.MaterialCode,
	)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update label template: %w", err)
	}
	return nil
}

// Delete elimina una plantilla por ID.
func (r *LabelTemplateRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM label_template WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete label template: %w", err)
	}
	return nil
}
