package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ilms-api/internal/application/mirror"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

var _ mirror.Source = (*CatalogSnapshot)(nil)

// CatalogSnapshot lee tablas completas del catálogo local para copiarlas al espejo.
type CatalogSnapshot struct {
	q Querier
}

// NewCatalogSnapshot construye el lector de catálogo.
func NewCatalogSnapshot(q Querier) *CatalogSnapshot {
	return &CatalogSnapshot{q: q}
}

// Materials todas las filas de material_master.
func (s *CatalogSnapshot) Materials(ctx context.Context) ([]*entity.Material, error) {
	rows, err := s.q.Query(ctx, `SELECT `+materialColumns+` FROM material_master ORDER BY material_code`)
	if err != nil {
		return nil, fmt.Errorf("snapshot materials: %w", err)
	}
	defer rows.Close()
	list := []*entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// HandlingParameters todas las filas de handling_parameter.
func (s *CatalogSnapshot) HandlingParameters(ctx context.Context) ([]*entity.HandlingParameter, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, material_code, temperature_min, temperature_max, humidity_min, humidity_max,
			hazardous_class, precautions, env_parameters, epc_format
		FROM handling_parameter ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot handling parameters: %w", err)
	}
	defer rows.Close()
	list := []*entity.HandlingParameter{}
	for rows.Next() {
		var hp entity.HandlingParameter
		if err := rows.Scan(&hp.ID, &hp.MaterialCode, &hp.TemperatureMin, &hp.TemperatureMax, &hp.HumidityMin,
			&hp.HumidityMax, &hp.HazardousClass, &hp.Precautions, &hp.EnvParameters, &hp.EPCFormat); err != nil {
			return nil, fmt.Errorf("scan handling parameter: %w", err)
		}
		list = append(list, &hp)
	}
	return list, rows.Err()
}

// MaterialImages todas las filas de material_image.
func (s *CatalogSnapshot) MaterialImages(ctx context.Context) ([]*entity.MaterialImage, error) {
	rows, err := s.q.Query(ctx, `SELECT id, material_code, type, filename, url, created_at FROM material_image ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot material images: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.MaterialImage, error) {
		var img entity.MaterialImage
		err := row.Scan(&img.ID, &img.MaterialCode, &img.Type, &img.Filename, &img.URL, &img.CreatedAt)
		return &img, err
	})
}

// MaterialDocuments todas las filas de material_document.
func (s *CatalogSnapshot) MaterialDocuments(ctx context.Context) ([]*entity.MaterialDocument, error) {
	rows, err := s.q.Query(ctx, `SELECT id, material_code, doc_type, filename, url, created_at FROM material_document ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot material documents: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.MaterialDocument, error) {
		var d entity.MaterialDocument
		err := row.Scan(&d.ID, &d.MaterialCode, &d.DocType, &d.Filename, &d.URL, &d.CreatedAt)
		return &d, err
	})
}

// PackagingHierarchies jerarquías con niveles.
func (s *CatalogSnapshot) PackagingHierarchies(ctx context.Context) ([]*entity.PackagingHierarchy, error) {
	return NewPackagingRepository(s.q).List(ctx)
}
