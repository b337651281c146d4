package trace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/trace"
)

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []*entity.TraceEvent{
		{ID: 1, Timestamp: base},
		{ID: 2, Timestamp: base.Add(2 * time.Hour)},
		{ID: 3, Timestamp: base.Add(time.Hour)},
		{ID: 4, Timestamp: base.Add(2 * time.Hour)},
	}

	trace.SortNewestFirst(events)

	ids := []int64{}
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{4, 2, 3, 1}, ids)
}

func TestSortNewestFirst_Estable(t *testing.T) {
	ts := time.Now()
	a := []*entity.TraceEvent{{ID: 7, Timestamp: ts}, {ID: 9, Timestamp: ts}, {ID: 8, Timestamp: ts}}
	b := []*entity.TraceEvent{{ID: 8, Timestamp: ts}, {ID: 7, Timestamp: ts}, {ID: 9, Timestamp: ts}}

	trace.SortNewestFirst(a)
	trace.SortNewestFirst(b)

	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestPrepare_DefaultsTimestampYEstado(t *testing.T) {
	now := time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)
	ev := &entity.TraceEvent{EventType: "packing"}

	require.NoError(t, trace.Prepare(ev, now))

	assert.Equal(t, entity.TraceEventPacking, ev.EventType)
	assert.Equal(t, entity.TraceStatusSuccess, ev.Status)
	assert.Equal(t, now, ev.Timestamp)
}

func TestPrepare_RespetaTimestamp(t *testing.T) {
	ts := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	ev := &entity.TraceEvent{EventType: entity.TraceEventShipping, Timestamp: ts, Status: "failed"}

	require.NoError(t, trace.Prepare(ev, time.Now()))
	assert.Equal(t, ts, ev.Timestamp)
	assert.Equal(t, entity.TraceStatusFailed, ev.Status)
}

func TestPrepare_TipoInvalido(t *testing.T) {
	err := trace.Prepare(&entity.TraceEvent{EventType: "TELEPORT"}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = trace.Prepare(&entity.TraceEvent{EventType: "PRODUCTION", Status: "MAYBE"}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
