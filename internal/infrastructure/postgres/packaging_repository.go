package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

var _ repository.PackagingRepository = (*PackagingRepo)(nil)

// PackagingRepo jerarquías de empaque y sus niveles sobre PostgreSQL.
type PackagingRepo struct {
	q Querier
}

// NewPackagingRepository construye el adaptador de persistencia para jerarquías de empaque.
func NewPackagingRepository(q Querier) *PackagingRepo {
	return &PackagingRepo{q: q}
}

// Create inserta la cabecera y sus niveles en una transacción.
func (r *PackagingRepo) Create(ctx context.Context, h *entity.PackagingHierarchy) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO packaging_hierarchy (name, activation_from, activation_to, packaging_capacity_constraints,
				gtin_assignment_format, description)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			h.Name, h.ActivationFrom, h.ActivationTo, h.PackagingCapacityConstraints, h.GTINAssignmentFormat, h.Description,
		).Scan(&h.ID)
		if err != nil {
			return fmt.Errorf("insert packaging hierarchy: %w", err)
		}
		return insertLevels(ctx, tx, h)
	})
}

func insertLevels(ctx context.Context, tx pgx.Tx, h *entity.PackagingHierarchy) error {
	for i := range h.Levels {
		l := &h.Levels[i]
		l.HierarchyID = h.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO packaging_level (hierarchy_id, level_index, level_code, level_name, contained_quantity,
				dimensions_mm, weight_kg, capacity_units, id_tech, barcode_type, rfid_tag_type, epc_format,
				label_template, gtin_format, default_label_copies, is_returnable, is_serialized)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17) RETURNING id`,
			l.HierarchyID, l.LevelIndex, l.LevelCode, l.LevelName, l.ContainedQuantity,
			l.DimensionsMM, l.WeightKg, l.CapacityUnits, l.IDTech, l.BarcodeType, l.RFIDTagType, l.EPCFormat,
			l.LabelTemplate, l.GTINFormat, l.DefaultLabelCopies, l.IsReturnable, l.IsSerialized,
		).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("insert packaging level: %w", err)
		}
	}
	return nil
}

// Get obtiene una jerarquía con sus niveles ordenados por LevelIndex.
func (r *PackagingRepo) Get(ctx context.Context, id int64) (*entity.PackagingHierarchy, error) {
	var h entity.PackagingHierarchy
	err := r.q.QueryRow(ctx, `
		SELECT id, name, activation_from, activation_to, packaging_capacity_constraints, gtin_assignment_format, description
		FROM packaging_hierarchy WHERE id = $1`, id).Scan(
		&h.ID, &h.Name, &h.ActivationFrom, &h.ActivationTo, &h.PackagingCapacityConstraints, &h.GTINAssignmentFormat, &h.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get packaging hierarchy: %w", err)
	}
	levels, err := r.levels(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	h.Levels = levels
	return &h, nil
}

func (r *PackagingRepo) levels(ctx context.Context, hierarchyID int64) ([]entity.PackagingLevel, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, hierarchy_id, level_index, level_code, level_name, contained_quantity, dimensions_mm, weight_kg,
			capacity_units, id_tech, barcode_type, rfid_tag_type, epc_format, label_template, gtin_format,
			default_label_copies, is_returnable, is_serialized
		FROM packaging_level WHERE hierarchy_id = $1 ORDER BY level_index, id`, hierarchyID)
	if err != nil {
		return nil, fmt.Errorf("list packaging levels: %w", err)
	}
	defer rows.Close()
	levels := []entity.PackagingLevel{}
	for rows.Next() {
		var l entity.PackagingLevel
		if err := rows.Scan(
			&l.ID, &l.HierarchyID, &l.LevelIndex, &l.LevelCode, &l.LevelName, &l.ContainedQuantity, &l.DimensionsMM, &l.WeightKg,
			&l.CapacityUnits, &l.IDTech, &l.BarcodeType, &l.RFIDTagType, &l.EPCFormat, &l.LabelTemplate, &l.GTINFormat,
			&l.DefaultLabelCopies, &l.IsReturnable, &l.IsSerialized,
		); err != nil {
			return nil, fmt.Errorf("scan packaging level: %w", err)
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// List devuelve todas las jerarquías con sus niveles.
func (r *PackagingRepo) List(ctx context.Context) ([]*entity.PackagingHierarchy, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM packaging_hierarchy ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list packaging hierarchies: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan packaging hierarchy id: %w", err)
	}
	list := make([]*entity.PackagingHierarchy, 0, len(ids))
	for _, id := range ids {
		h, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if h != nil {
			list = append(list, h)
		}
	}
	return list, nil
}

// Update reemplaza cabecera y niveles.
func (r *PackagingRepo) Update(ctx context.Context, h *entity.PackagingHierarchy) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE packaging_hierarchy SET name = $2, activation_from = $3, activation_to = $4,
				packaging_capacity_constraints = $5, gtin_assignment_format = $6, description = $7
			WHERE id = $1`,
			h.ID, h.Name, h.ActivationFrom, h.ActivationTo, h.PackagingCapacityConstraints, h.GTINAssignmentFormat, h.Description,
		)
		if err != nil {
			return fmt.Errorf("update packaging hierarchy: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM packaging_level WHERE hierarchy_id = $1`, h.ID); err != nil {
			return fmt.Errorf("delete packaging levels: %w", err)
		}
		return insertLevels(ctx, tx, h)
	})
}

// Delete elimina la jerarquía; los niveles caen en cascada.
func (r *PackagingRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM packaging_hierarchy WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete packaging hierarchy: %w", err)
	}
	return nil
}
