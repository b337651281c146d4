package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

var _ repository.TraceEventRepository = (*TraceEventRepo)(nil)

// TraceEventRepo eventos de trazabilidad sobre PostgreSQL.
type TraceEventRepo struct {
	q Querier
}

// NewTraceEventRepository construye el adaptador de persistencia para eventos de trazabilidad.
func NewTraceEventRepository(q Querier) *TraceEventRepo {
	return &TraceEventRepo{q: q}
}

// Create inserta el evento. Si la unidad o el contenedor no existen devuelve ErrNotFound.
func (r *TraceEventRepo) Create(ctx context.Context, ev *entity.TraceEvent) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO trace_event (event_type, timestamp, location, actor, notes, status, inventory_id, container_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		ev.EventType, ev.Timestamp, ev.Location, ev.Actor, ev.Notes, ev.Status, ev.InventoryID, ev.ContainerID,
	).Scan(&ev.ID)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert trace event: %w", err)
	}
	return nil
}

// ListByInventory historial de una unidad, más reciente primero.
func (r *TraceEventRepo) ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.TraceEvent, error) {
	return r.list(ctx, `inventory_id = $1`, inventoryID)
}

// ListByContainer historial de un contenedor, más reciente primero.
func (r *TraceEventRepo) ListByContainer(ctx context.Context, containerID int64) ([]*entity.TraceEvent, error) {
	return r.list(ctx, `container_id = $1`, containerID)
}

func (r *TraceEventRepo) list(ctx context.Context, where string, id int64) ([]*entity.TraceEvent, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, event_type, timestamp, location, actor, notes, status, inventory_id, container_id
		FROM trace_event WHERE `+where+` ORDER BY timestamp DESC, id DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("list trace events: %w", err)
	}
	defer rows.Close()
	list := []*entity.TraceEvent{}
	for rows.Next() {
		var ev entity.TraceEvent
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.Timestamp, &ev.Location, &ev.Actor, &ev.Notes, &ev.Status,
			&ev.InventoryID, &ev.ContainerID); err != nil {
			return nil, fmt.Errorf("scan trace event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
