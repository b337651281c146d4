package mirror

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

// Nombres de tabla en el orden de copia (padres antes que hijos).
const (
	TableMaterials          = "material_master"
	TableHandlingParameters = "handling_parameter"
	TableMaterialImages     = "material_image"
	TableMaterialDocuments  = "material_document"
	TablePackagingHierarchy = "packaging_hierarchy"
	TablePackagingLevels    = "packaging_level"
)

// ErrNotConfigured no hay base espejo configurada.
var ErrNotConfigured = errors.New("espejo no configurado")

var errSkipped = errors.New("omitida: falló la tabla padre")

// TableResult resultado de una tabla.
type TableResult struct {
	Table string
	Rows  int
	Err   error
}

// Report resumen de una ejecución.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Tables     []TableResult
}

// Failed indica si alguna tabla falló.
func (r *Report) Failed() bool {
	for _, t := range r.Tables {
		if t.Err != nil {
			return true
		}
	}
	return false
}

// ToDTO proyección para la API.
func (r *Report) ToDTO() dto.MirrorReportResponse {
	out := dto.MirrorReportResponse{
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Tables:     make([]dto.MirrorTableResult, 0, len(r.Tables)),
		Failed:     r.Failed(),
	}
	for _, t := range r.Tables {
		res := dto.MirrorTableResult{Table: t.Table, Rows: t.Rows}
		if t.Err != nil {
			res.Error = t.Err.Error()
		}
		out.Tables = append(out.Tables, res)
	}
	return out
}

// Job copia el catálogo local al espejo hospedado (último en escribir gana, sin borrados).
// Una sola ejecución a la vez.
type Job struct {
	source Source
	sink   Sink
	log    *logger.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewJob construye el job. sink nil deja el job deshabilitado (Run devuelve ErrNotConfigured).
func NewJob(source Source, sink Sink, log *logger.Logger) *Job {
	return &Job{source: source, sink: sink, log: log.Component("mirror"), now: time.Now}
}

type step struct {
	table string
	run   func(ctx context.Context) (int, error)
}

func (j *Job) steps() []step {
	// una tabla hija solo se copia si su tabla padre se copió en esta misma ejecución
	var levels []entity.PackagingLevel
	materialsOK, hierarchiesOK := false, false

	return []step{
		{TableMaterials, func(ctx context.Context) (int, error) {
			rows, err := j.source.Materials(ctx)
			if err != nil {
				return 0, err
			}
			if err := j.sink.UpsertMaterials(ctx, rows); err != nil {
				return 0, err
			}
			materialsOK = true
			return len(rows), nil
		}},
		{TableHandlingParameters, func(ctx context.Context) (int, error) {
			if !materialsOK {
				return 0, errSkipped
			}
			rows, err := j.source.HandlingParameters(ctx)
			if err != nil {
				return 0, err
			}
			return len(rows), j.sink.UpsertHandlingParameters(ctx, rows)
		}},
		{TableMaterialImages, func(ctx context.Context) (int, error) {
			if !materialsOK {
				return 0, errSkipped
			}
			rows, err := j.source.MaterialImages(ctx)
			if err != nil {
				return 0, err
			}
			return len(rows), j.sink.UpsertMaterialImages(ctx, rows)
		}},
		{TableMaterialDocuments, func(ctx context.Context) (int, error) {
			if !materialsOK {
				return 0, errSkipped
			}
			rows, err := j.source.MaterialDocuments(ctx)
			if err != nil {
				return 0, err
			}
			return len(rows), j.sink.UpsertMaterialDocuments(ctx, rows)
		}},
		{TablePackagingHierarchy, func(ctx context.Context) (int, error) {
			rows, err := j.source.PackagingHierarchies(ctx)
			if err != nil {
				return 0, err
			}
			if err := j.sink.UpsertPackagingHierarchies(ctx, rows); err != nil {
				return 0, err
			}
			for _, h := range rows {
				levels = append(levels, h.Levels...)
			}
			hierarchiesOK = true
			return len(rows), nil
		}},
		{TablePackagingLevels, func(ctx context.Context) (int, error) {
			if !hierarchiesOK {
				return 0, errSkipped
			}
			return len(levels), j.sink.UpsertPackagingLevels(ctx, levels)
		}},
	}
}

// Run copia todas las tablas. El fallo de una tabla queda en el reporte y se sigue con las demás.
func (j *Job) Run(ctx context.Context) (*Report, error) {
	if j.sink == nil {
		return nil, ErrNotConfigured
	}
	if !j.mu.TryLock() {
		return nil, domain.ErrConflict
	}
	defer j.mu.Unlock()

	report := &Report{StartedAt: j.now()}
	j.log.Info().Msg("copia al espejo iniciada")
	for _, s := range j.steps() {
		if err := ctx.Err(); err != nil {
			report.Tables = append(report.Tables, TableResult{Table: s.table, Err: err})
			continue
		}
		n, err := s.run(ctx)
		if err != nil {
			n = 0
			j.log.Error().Err(err).Str("table", s.table).Msg("tabla no copiada")
		} else {
			j.log.Info().Str("table", s.table).Int("rows", n).Msg("tabla copiada")
		}
		report.Tables = append(report.Tables, TableResult{Table: s.table, Rows: n, Err: err})
	}
	report.FinishedAt = j.now()
	j.log.Info().Bool("failed", report.Failed()).Dur("took", report.FinishedAt.Sub(report.StartedAt)).Msg("copia al espejo terminada")
	return report, nil
}

// Every ejecuta Run cada interval hasta que ctx se cancele.
func (j *Job) Every(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil {
				j.log.Warn().Err(err).Msg("copia periódica omitida")
			}
		}
	}
}
