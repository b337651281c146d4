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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, material_code, serial_number, batch_number, status, warehouse_code, location_id, box_id, created_at`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para unidades de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row) (*entity.InventoryUnit, error) {
	var u entity.InventoryUnit
	if err := row.Scan(&u.ID, &u.MaterialCode, &u.SerialNumber, &u.BatchNumber, &u.Status,
		&u.WarehouseCode, &u.LocationID, &u.BoxID, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryUnit, error) {
	defer rows.Close()
	list := []*entity.InventoryUnit{}
	for rows.Next() {
		u, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// CreateBatch inserta las unidades en el orden recibido.
func (r *InventoryRepo) CreateBatch(ctx context.Context, units []*entity.InventoryUnit) error {
	for _, u := range units {
		err := r.q.QueryRow(ctx, `
			INSERT INTO inventory (material_code, serial_number, batch_number, status, warehouse_code, location_id, box_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			u.MaterialCode, u.SerialNumber, u.BatchNumber, u.Status, u.WarehouseCode, u.LocationID, u.BoxID, u.CreatedAt,
		).Scan(&u.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			if isFKViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert inventory: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryUnit, error) {
	u, err := scanInventory(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return u, nil
}

// GetBySerial obtiene una unidad por número de serie.
func (r *InventoryRepo) GetBySerial(ctx context.Context, serial string) (*entity.InventoryUnit, error) {
	u, err := scanInventory(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE serial_number = $1`, serial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by serial: %w", err)
	}
	return u, nil
}

// FindByIDs devuelve las unidades existentes entre ids, bloqueadas para actualización si se llama dentro de tx.
func (r *InventoryRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.InventoryUnit, error) {
	if len(ids) == 0 {
		return []*entity.InventoryUnit{}, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, fmt.Errorf("find inventory by ids: %w", err)
	}
	return collectInventory(rows)
}

// List devuelve todas las unidades por ID.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryUnit, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return collectInventory(rows)
}

// ListByBox unidades empacadas en una caja.
func (r *InventoryRepo) ListByBox(ctx context.Context, boxID int64) ([]*entity.InventoryUnit, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE box_id = $1 ORDER BY id`, boxID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by box: %w", err)
	}
	return collectInventory(rows)
}

// Update persiste estado, caja y ubicación de la unidad.
func (r *InventoryRepo) Update(ctx context.Context, u *entity.InventoryUnit) error {
	_, err := r.q.Exec(ctx, `
		UPDATE inventory SET status = $2, box_id = $3, warehouse_code = $4, location_id = $5, batch_number = $6
		WHERE id = $1`,
		u.ID, u.Status, u.BoxID, u.WarehouseCode, u.LocationID, u.BatchNumber,
	)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// CountByStatus conteo de unidades agrupadas por estado.
func (r *InventoryRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM inventory GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count inventory by status: %w", err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}
