package mirror

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

var _ appmirror.Sink = (*Sink)(nil)

const batchSize = 200

// Sink escribe el catálogo en el PostgreSQL hospedado vía gorm.
type Sink struct {
	db  *gorm.DB
	now func() time.Time
}

// Connect abre la base espejo y crea las tablas que falten.
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*Sink, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(gormWriter{log: log.Component("mirror-db")}, gormlogger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("conectar espejo: %w", err)
	}
	s := NewSink(db)
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// NewSink envuelve una conexión gorm ya abierta.
func NewSink(db *gorm.DB) *Sink {
	return &Sink{db: db, now: time.Now}
}

// Migrate crea tablas y columnas faltantes en el espejo.
func (s *Sink) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&MaterialMaster{}, &HandlingParameter{}, &MaterialImage{}, &MaterialDocument{},
		&PackagingHierarchy{}, &PackagingLevel{},
	)
	if err != nil {
		return fmt.Errorf("migrar espejo: %w", err)
	}
	return nil
}

// Close cierra el pool subyacente.
func (s *Sink) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func upsert[T any](ctx context.Context, db *gorm.DB, key string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		UpdateAll: true,
	}).CreateInBatches(&rows, batchSize).Error
}

// UpsertMaterials upsert por material_code.
func (s *Sink) UpsertMaterials(ctx context.Context, rows []*entity.Material) error {
	now := s.now()
	out := make([]MaterialMaster, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromMaterial(m, now))
	}
	return upsert(ctx, s.db, "material_code", out)
}

// UpsertHandlingParameters upsert por material_code (uno por material).
func (s *Sink) UpsertHandlingParameters(ctx context.Context, rows []*entity.HandlingParameter) error {
	out := make([]HandlingParameter, 0, len(rows))
	for _, hp := range rows {
		out = append(out, fromHandlingParameter(hp))
	}
	return upsert(ctx, s.db, "material_code", out)
}

// UpsertMaterialImages upsert por id.
func (s *Sink) UpsertMaterialImages(ctx context.Context, rows []*entity.MaterialImage) error {
	out := make([]MaterialImage, 0, len(rows))
	for _, img := range rows {
		out = append(out, MaterialImage{
			ID: img.ID, MaterialCode: img.MaterialCode, Type: img.Type,
			Filename: img.Filename, URL: img.URL, CreatedAt: img.CreatedAt,
		})
	}
	return upsert(ctx, s.db, "id", out)
}

// UpsertMaterialDocuments upsert por id.
func (s *Sink) UpsertMaterialDocuments(ctx context.Context, rows []*entity.MaterialDocument) error {
	out := make([]MaterialDocument, 0, len(rows))
	for _, d := range rows {
		out = append(out, MaterialDocument{
			ID: d.ID, MaterialCode: d.MaterialCode, DocType: d.DocType,
			Filename: d.Filename, URL: d.URL, CreatedAt: d.CreatedAt,
		})
	}
	return upsert(ctx, s.db, "id", out)
}

// UpsertPackagingHierarchies upsert de cabeceras por id.
func (s *Sink) UpsertPackagingHierarchies(ctx context.Context, rows []*entity.PackagingHierarchy) error {
	out := make([]PackagingHierarchy, 0, len(rows))
	for _, h := range rows {
		out = append(out, fromPackagingHierarchy(h))
	}
	return upsert(ctx, s.db, "id", out)
}

// UpsertPackagingLevels upsert de niveles por id.
func (s *Sink) UpsertPackagingLevels(ctx context.Context, rows []entity.PackagingLevel) error {
	out := make([]PackagingLevel, 0, len(rows))
	for _, l := range rows {
		out = append(out, fromPackagingLevel(l))
	}
	return upsert(ctx, s.db, "id", out)
}

// gormWriter redirige el logger de gorm a zerolog.
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Msgf(format, args...)
}
