package mirror

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

type fakeSource struct {
	materialsErr error
}

func (s *fakeSource) Materials(context.Context) ([]*entity.Material, error) {
	if s.materialsErr != nil {
		return nil, s.materialsErr
	}
	return []*entity.Material{{MaterialCode: "M-1"}, {MaterialCode: "M-2"}}, nil
}

func (s *fakeSource) HandlingParameters(context.Context) ([]*entity.HandlingParameter, error) {
	return []*entity.HandlingParameter{{ID: 1, MaterialCode: "M-1"}}, nil
}

func (s *fakeSource) MaterialImages(context.Context) ([]*entity.MaterialImage, error) {
	return nil, nil
}

func (s *fakeSource) MaterialDocuments(context.Context) ([]*entity.MaterialDocument, error) {
	return []*entity.MaterialDocument{{ID: 1}}, nil
}

func (s *fakeSource) PackagingHierarchies(context.Context) ([]*entity.PackagingHierarchy, error) {
	return []*entity.PackagingHierarchy{{
		ID:     1,
		Name:   "Estándar",
		Levels: []entity.PackagingLevel{{ID: 1, HierarchyID: 1}, {ID: 2, HierarchyID: 1}},
	}}, nil
}

type fakeSink struct {
	materialsErr error
	hierarchyErr error
	levels       []entity.PackagingLevel
	calls        []string
	started      chan struct{}
	block        chan struct{}
}

func (s *fakeSink) UpsertMaterials(context.Context, []*entity.Material) error {
	s.calls = append(s.calls, TableMaterials)
	if s.block != nil {
		close(s.started)
		<-s.block
	}
	return s.materialsErr
}

func (s *fakeSink) UpsertHandlingParameters(context.Context, []*entity.HandlingParameter) error {
	s.calls = append(s.calls, TableHandlingParameters)
	return nil
}

func (s *fakeSink) UpsertMaterialImages(context.Context, []*entity.MaterialImage) error {
	s.calls = append(s.calls, TableMaterialImages)
	return nil
}

func (s *fakeSink) UpsertMaterialDocuments(context.Context, []*entity.MaterialDocument) error {
	s.calls = append(s.calls, TableMaterialDocuments)
	return nil
}

func (s *fakeSink) UpsertPackagingHierarchies(context.Context, []*entity.PackagingHierarchy) error {
	s.calls = append(s.calls, TablePackagingHierarchy)
	return s.hierarchyErr
}

func (s *fakeSink) UpsertPackagingLevels(_ context.Context, rows []entity.PackagingLevel) error {
	s.calls = append(s.calls, TablePackagingLevels)
	s.levels = rows
	return nil
}

func rows(r *Report) map[string]int {
	out := map[string]int{}
	for _, t := range r.Tables {
		out[t.Table] = t.Rows
	}
	return out
}

func TestRun_CopiaTodasLasTablasEnOrden(t *testing.T) {
	sink := &fakeSink{}
	job := NewJob(&fakeSource{}, sink, logger.Nop())

	report, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, []string{
		TableMaterials, TableHandlingParameters, TableMaterialImages,
		TableMaterialDocuments, TablePackagingHierarchy, TablePackagingLevels,
	}, sink.calls)
	assert.Equal(t, 2, rows(report)[TableMaterials])
	assert.Equal(t, 0, rows(report)[TableMaterialImages])
	assert.Equal(t, 2, rows(report)[TablePackagingLevels])
	assert.Len(t, sink.levels, 2)
}

func TestRun_FalloDeUnaTablaNoDetieneLasDemas(t *testing.T) {
	sink := &fakeSink{}
	job := NewJob(&fakeSource{materialsErr: errors.New("lectura fallida")}, sink, logger.Nop())

	report, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Error(t, report.Tables[0].Err)
	assert.NotContains(t, sink.calls, TableMaterials)
	assert.Contains(t, sink.calls, TablePackagingLevels)

	out := report.ToDTO()
	assert.True(t, out.Failed)
	assert.Equal(t, "lectura fallida", out.Tables[0].Error)
	assert.Equal(t, TablePackagingHierarchy, out.Tables[4].Table)
	assert.Empty(t, out.Tables[4].Error)
}

func TestRun_HijasDeMaterialOmitidasSiFallaMaterial(t *testing.T) {
	sink := &fakeSink{materialsErr: errors.New("conexión rechazada")}
	job := NewJob(&fakeSource{}, sink, logger.Nop())

	report, err := job.Run(context.Background())
	require.NoError(t, err)

	for _, tr := range report.Tables[1:4] {
		assert.ErrorIs(t, tr.Err, errSkipped, tr.Table)
	}
	assert.NotContains(t, sink.calls, TableHandlingParameters)
	assert.NotContains(t, sink.calls, TableMaterialImages)
	assert.NotContains(t, sink.calls, TableMaterialDocuments)
	assert.Equal(t, 0, rows(report)[TableMaterials])
}

func TestRun_NivelesOmitidosSiFallanJerarquias(t *testing.T) {
	sink := &fakeSink{hierarchyErr: errors.New("timeout")}
	job := NewJob(&fakeSource{}, sink, logger.Nop())

	report, err := job.Run(context.Background())
	require.NoError(t, err)
	last := report.Tables[len(report.Tables)-1]
	assert.Equal(t, TablePackagingLevels, last.Table)
	assert.ErrorIs(t, last.Err, errSkipped)
	assert.NotContains(t, sink.calls, TablePackagingLevels)
}

func TestRun_SinDestino(t *testing.T) {
	job := NewJob(&fakeSource{}, nil, logger.Nop())
	_, err := job.Run(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRun_UnaEjecucionALaVez(t *testing.T) {
	sink := &fakeSink{started: make(chan struct{}), block: make(chan struct{})}
	job := NewJob(&fakeSource{}, sink, logger.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = job.Run(context.Background())
	}()

	select {
	case <-sink.started:
	case <-time.After(time.Second):
		t.Fatal("la primera ejecución no arrancó")
	}

	_, err := job.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(sink.block)
	<-done
}

func TestRun_ContextoCancelado(t *testing.T) {
	sink := &fakeSink{}
	job := NewJob(&fakeSource{}, sink, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := job.Run(ctx)
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Empty(t, sink.calls)
}
