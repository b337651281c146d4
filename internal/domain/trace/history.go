package trace

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// SortNewestFirst ordena por Timestamp descendente; los empates se resuelven por ID descendente
// para que consultas repetidas sobre los mismos datos devuelvan el mismo orden.
func SortNewestFirst(events []*entity.TraceEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.After(events[j].Timestamp)
		}
		return events[i].ID > events[j].ID
	})
}

// Prepare normaliza un evento antes de persistirlo: tipo y estado en mayúsculas,
// estado SUCCESS por defecto y timestamp = now si no viene.
func Prepare(ev *entity.TraceEvent, now time.Time) error {
	ev.EventType = strings.ToUpper(strings.TrimSpace(ev.EventType))
	ev.Status = strings.ToUpper(strings.TrimSpace(ev.Status))
	if ev.Status == "" {
		ev.Status = entity.TraceStatusSuccess
	}
	if !isValidEventType(ev.EventType) {
		return domain.ErrInvalidInput
	}
	if ev.Status != entity.TraceStatusSuccess && ev.Status != entity.TraceStatusFailed {
		return domain.ErrInvalidInput
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = now
	}
	return nil
}

func isValidEventType(t string) bool {
	switch t {
	case entity.TraceEventProduction, entity.TraceEventPacking, entity.TraceEventShipping,
		entity.TraceEventReceiving, entity.TraceEventException:
		return true
	}
	return false
}
