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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// List devuelve las bodegas ordenadas por código, cada una con sus ubicaciones.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, `SELECT warehouse_code, warehouse_name, location, type FROM warehouse ORDER BY warehouse_code`)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	list := []*entity.Warehouse{}
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.WarehouseCode, &w.WarehouseName, &w.Location, &w.Type); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, w := range list {
		locs, err := r.locations(ctx, w.WarehouseCode)
		if err != nil {
			return nil, err
		}
		w.StorageLocations = locs
	}
	return list, nil
}

// Get obtiene una bodega por código con sus ubicaciones.
func (r *WarehouseRepo) Get(ctx context.Context, code string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, `
		SELECT warehouse_code, warehouse_name, location, type FROM warehouse WHERE warehouse_code = $1`, code).Scan(
		&w.WarehouseCode, &w.WarehouseName, &w.Location, &w.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	locs, err := r.locations(ctx, code)
	if err != nil {
		return nil, err
	}
	w.StorageLocations = locs
	return &w, nil
}

func (r *WarehouseRepo) locations(ctx context.Context, code string) ([]entity.StorageLocation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, warehouse_code, location_code, description, type
		FROM storage_location WHERE warehouse_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()
	locs := []entity.StorageLocation{}
	for rows.Next() {
		var l entity.StorageLocation
		if err := rows.Scan(&l.ID, &l.WarehouseCode, &l.LocationCode, &l.Description, &l.Type); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		locs = append(locs, l)
	}
	return locs, rows.Err()
}

// Save persiste el agregado: upsert de la cabecera, cada ubicación queda apuntando a esta bodega
// y las ubicaciones previas que ya no vienen en la lista se eliminan.
func (r *WarehouseRepo) Save(ctx context.Context, w *entity.Warehouse) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO warehouse (warehouse_code, warehouse_name, location, type)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (warehouse_code) DO UPDATE SET
				warehouse_name = EXCLUDED.warehouse_name, location = EXCLUDED.location, type = EXCLUDED.type`,
			w.WarehouseCode, w.WarehouseName, w.Location, w.Type,
		)
		if err != nil {
			return fmt.Errorf("upsert warehouse: %w", err)
		}

		keep := make([]int64, 0, len(w.StorageLocations))
		for i := range w.StorageLocations {
			l := &w.StorageLocations[i]
			l.WarehouseCode = w.WarehouseCode
			if err := saveLocation(ctx, tx, l); err != nil {
				return err
			}
			keep = append(keep, l.ID)
		}

		_, err = tx.Exec(ctx, `
			DELETE FROM storage_location WHERE warehouse_code = $1 AND NOT (id = ANY($2))`,
			w.WarehouseCode, keep,
		)
		if err != nil {
			if isFKViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("delete orphan storage locations: %w", err)
		}
		return nil
	})
}

func saveLocation(ctx context.Context, tx pgx.Tx, l *entity.StorageLocation) error {
	if l.ID > 0 {
		tag, err := tx.Exec(ctx, `
			UPDATE storage_location SET warehouse_code = $2, location_code = $3, description = $4, type = $5
			WHERE id = $1`,
			l.ID, l.WarehouseCode, l.LocationCode, l.Description, l.Type,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("update storage location: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
	}
	err := tx.QueryRow(ctx, `
		INSERT INTO storage_location (warehouse_code, location_code, description, type)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		l.WarehouseCode, l.LocationCode, l.Description, l.Type,
	).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// Delete elimina la bodega y sus ubicaciones. Con inventario o contenedores apuntando a ellas -> ErrConflict.
func (r *WarehouseRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouse WHERE warehouse_code = $1`, code)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

// GetLocation obtiene una ubicación por ID.
func (r *WarehouseRepo) GetLocation(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	var l entity.StorageLocation
	err := r.q.QueryRow(ctx, `
		SELECT id, warehouse_code, location_code, description, type FROM storage_location WHERE id = $1`, id).Scan(
		&l.ID, &l.WarehouseCode, &l.LocationCode, &l.Description, &l.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &l, nil
}
