package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

var _ repository.ContainerRepository = (*ContainerRepo)(nil)

var containerColumns = []any{
	"id", "kind", "serial_number", "status", "warehouse_code", "location_id", "parent_container_id",
	"batch_number", "item_count", "box_count", "container_number", "seal_number", "created_at",
}

// ContainerRepo cajas, pallets y contenedores en la tabla container_unit.
type ContainerRepo struct {
	q Querier
}

// NewContainerRepository construye el adaptador de persistencia para contenedores.
func NewContainerRepository(q Querier) *ContainerRepo {
	return &ContainerRepo{q: q}
}

func scanContainer(row pgx.Row) (*entity.ContainerUnit, error) {
	var c entity.ContainerUnit
	if err := row.Scan(&c.ID, &c.Kind, &c.SerialNumber, &c.Status, &c.WarehouseCode, &c.LocationID, &c.ParentContainerID,
		&c.BatchNumber, &c.ItemCount, &c.BoxCount, &c.ContainerNumber, &c.SealNumber, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta el contenedor y asigna ID. Serie repetida -> ErrDuplicate.
func (r *ContainerRepo) Create(ctx context.Context, c *entity.ContainerUnit) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO container_unit (kind, serial_number, status, warehouse_code, location_id, parent_container_id,
			batch_number, item_count, box_count, container_number, seal_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
		c.Kind, c.SerialNumber, c.Status, c.WarehouseCode, c.LocationID, c.ParentContainerID,
		c.BatchNumber, c.ItemCount, c.BoxCount, c.ContainerNumber, c.SealNumber, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isFKViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert container: %w", err)
	}
	return nil
}

func (r *ContainerRepo) getOne(ctx context.Context, where goqu.Ex) (*entity.ContainerUnit, error) {
	query, args, err := dialect.From("container_unit").Select(containerColumns...).Where(where).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get container: %w", err)
	}
	c, err := scanContainer(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	return c, nil
}

// GetByID obtiene un contenedor por ID.
func (r *ContainerRepo) GetByID(ctx context.Context, id int64) (*entity.ContainerUnit, error) {
	return r.getOne(ctx, goqu.Ex{"id": id})
}

// GetBySerial obtiene un contenedor por número de serie.
func (r *ContainerRepo) GetBySerial(ctx context.Context, serial string) (*entity.ContainerUnit, error) {
	return r.getOne(ctx, goqu.Ex{"serial_number": serial})
}

func (r *ContainerRepo) list(ctx context.Context, where goqu.Ex) ([]*entity.ContainerUnit, error) {
	ds := dialect.From("container_unit").Select(containerColumns...).Order(goqu.C("id").Asc())
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list containers: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()
	list := []*entity.ContainerUnit{}
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// List contenedores por tipo; kind vacío devuelve todos.
func (r *ContainerRepo) List(ctx context.Context, kind string) ([]*entity.ContainerUnit, error) {
	where := goqu.Ex{}
	if kind != "" {
		where["kind"] = kind
	}
	return r.list(ctx, where)
}

// ListChildren contenedores anidados directamente en parentID.
func (r *ContainerRepo) ListChildren(ctx context.Context, parentID int64) ([]*entity.ContainerUnit, error) {
	return r.list(ctx, goqu.Ex{"parent_container_id": parentID})
}

// Update persiste estado, jerarquía, ubicación y contadores.
func (r *ContainerRepo) Update(ctx context.Context, c *entity.ContainerUnit) error {
	_, err := r.q.Exec(ctx, `
		UPDATE container_unit SET status = $2, warehouse_code = $3, location_id = $4, parent_container_id = $5,
			batch_number = $6, item_count = $7, box_count = $8, container_number = $9, seal_number = $10
		WHERE id = $1`,
		c.ID, c.Status, c.WarehouseCode, c.LocationID, c.ParentContainerID,
		c.BatchNumber, c.ItemCount, c.BoxCount, c.ContainerNumber, c.SealNumber,
	)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update container: %w", err)
	}
	return nil
}
