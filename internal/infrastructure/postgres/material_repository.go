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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `material_code, material_name, description, sku, ean_gtin, upc, country_of_origin, type,
	material_class, material_group, gs1_category_code, shelf_life_days, shelf_life_uom, storage_type,
	procurement_type, base_uom, net_weight_kg, dimensions_mm, trade_uom, trade_weight_kg, trade_dimensions_mm,
	is_packaged, is_military_grade, is_fragile, is_env_sensitive, is_high_value, is_hazardous, is_batch_managed,
	is_serialized, is_rfid_capable, packaging_material_code, external_erp_code, item_weight, item_dimension,
	max_storage_period, material_eanupc, created_at, updated_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para el maestro de materiales.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.MaterialCode, &m.MaterialName, &m.Description, &m.SKU, &m.EanGtin, &m.UPC, &m.CountryOfOrigin, &m.Type,
		&m.MaterialClass, &m.MaterialGroup, &m.GS1CategoryCode, &m.ShelfLifeDays, &m.ShelfLifeUOM, &m.StorageType,
		&m.ProcurementType, &m.BaseUOM, &m.NetWeightKg, &m.DimensionsMM, &m.TradeUOM, &m.TradeWeightKg, &m.TradeDimensionsMM,
		&m.IsPackaged, &m.IsMilitaryGrade, &m.IsFragile, &m.IsEnvSensitive, &m.IsHighValue, &m.IsHazardous, &m.IsBatchManaged,
		&m.IsSerialized, &m.IsRfidCapable, &m.PackagingMaterialCode, &m.ExternalERPCode, &m.ItemWeight, &m.ItemDimension,
		&m.MaxStoragePeriod, &m.MaterialEANUPC, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Get obtiene un material por código junto con su parámetro de manipulación.
func (r *MaterialRepo) Get(ctx context.Context, code string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM material_master WHERE material_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	hp, err := r.getHandlingParameter(ctx, code)
	if err != nil {
		return nil, err
	}
	m.HandlingParameter = hp
	return m, nil
}

func (r *MaterialRepo) getHandlingParameter(ctx context.Context, code string) (*entity.HandlingParameter, error) {
	var hp entity.HandlingParameter
	err := r.q.QueryRow(ctx, `
		SELECT id, material_code, temperature_min, temperature_max, humidity_min, humidity_max,
			hazardous_class, precautions, env_parameters, epc_format
		FROM handling_parameter WHERE material_code = $1`, code).Scan(
		&hp.ID, &hp.MaterialCode, &hp.TemperatureMin, &hp.TemperatureMax, &hp.HumidityMin, &hp.HumidityMax,
		&hp.HazardousClass, &hp.Precautions, &hp.EnvParameters, &hp.EPCFormat,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get handling parameter: %w", err)
	}
	return &hp, nil
}

// materialSearch filtra por search_key; la búsqueda es literal, sin comodines del usuario.
func materialSearch(filter repository.MaterialFilter) *goqu.SelectDataset {
	base := dialect.From("material_master")
	if key := SearchKey(filter.Search); key != "" {
		base = base.Where(goqu.C("search_key").Like(likeContains(key)))
	}
	return base
}

// List devuelve una página del catálogo ordenada por código y el total que cumple el filtro.
func (r *MaterialRepo) List(ctx context.Context, filter repository.MaterialFilter) ([]*entity.Material, int, error) {
	base := materialSearch(filter)

	countSQL, countArgs, err := base.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count materials: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materials: %w", err)
	}

	ds := base.Select(goqu.L(materialColumns)).Order(goqu.C("material_code").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list materials: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	list := []*entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// Upsert crea o reemplaza el material y, si viene, su parámetro de manipulación.
func (r *MaterialRepo) Upsert(ctx context.Context, m *entity.Material) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO material_master (`+materialColumns+`, search_key)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
				$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38,$39)
			ON CONFLICT (material_code) DO UPDATE SET
				material_name = EXCLUDED.material_name, description = EXCLUDED.description, sku = EXCLUDED.sku,
				ean_gtin = EXCLUDED.ean_gtin, upc = EXCLUDED.upc, country_of_origin = EXCLUDED.country_of_origin,
				type = EXCLUDED.type, material_class = EXCLUDED.material_class, material_group = EXCLUDED.material_group,
				gs1_category_code = EXCLUDED.gs1_category_code, shelf_life_days = EXCLUDED.shelf_life_days,
				shelf_life_uom = EXCLUDED.shelf_life_uom, storage_type = EXCLUDED.storage_type,
				procurement_type = EXCLUDED.procurement_type, base_uom = EXCLUDED.base_uom,
				net_weight_kg = EXCLUDED.net_weight_kg, dimensions_mm = EXCLUDED.dimensions_mm,
				trade_uom = EXCLUDED.trade_uom, trade_weight_kg = EXCLUDED.trade_weight_kg,
				trade_dimensions_mm = EXCLUDED.trade_dimensions_mm, is_packaged = EXCLUDED.is_packaged,
				is_military_grade = EXCLUDED.is_military_grade, is_fragile = EXCLUDED.is_fragile,
				is_env_sensitive = EXCLUDED.is_env_sensitive, is_high_value = EXCLUDED.is_high_value,
				is_hazardous = EXCLUDED.is_hazardous, is_batch_managed = EXCLUDED.is_batch_managed,
				is_serialized = EXCLUDED.is_serialized, is_rfid_capable = EXCLUDED.is_rfid_capable,
				packaging_material_code = EXCLUDED.packaging_material_code, external_erp_code = EXCLUDED.external_erp_code,
				item_weight = EXCLUDED.item_weight, item_dimension = EXCLUDED.item_dimension,
				max_storage_period = EXCLUDED.max_storage_period, material_eanupc = EXCLUDED.material_eanupc,
				updated_at = EXCLUDED.updated_at, search_key = EXCLUDED.search_key`,
			m.MaterialCode, m.MaterialName, m.Description, m.SKU, m.EanGtin, m.UPC, m.CountryOfOrigin, m.Type,
			m.MaterialClass, m.MaterialGroup, m.GS1CategoryCode, m.ShelfLifeDays, m.ShelfLifeUOM, m.StorageType,
			m.ProcurementType, m.BaseUOM, m.NetWeightKg, m.DimensionsMM, m.TradeUOM, m.TradeWeightKg, m.TradeDimensionsMM,
			m.IsPackaged, m.IsMilitaryGrade, m.IsFragile, m.IsEnvSensitive, m.IsHighValue, m.IsHazardous, m.IsBatchManaged,
			m.IsSerialized, m.IsRfidCapable, m.PackagingMaterialCode, m.ExternalERPCode, m.ItemWeight, m.ItemDimension,
			m.MaxStoragePeriod, m.MaterialEANUPC, m.CreatedAt, m.UpdatedAt,
			SearchKey(m.MaterialCode, m.MaterialName),
		)
		if err != nil {
			return fmt.Errorf("upsert material: %w", err)
		}
		hp := m.HandlingParameter
		if hp == nil {
			return nil
		}
		hp.MaterialCode = m.MaterialCode
		err = tx.QueryRow(ctx, `
			INSERT INTO handling_parameter (material_code, temperature_min, temperature_max, humidity_min, humidity_max,
				hazardous_class, precautions, env_parameters, epc_format)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (material_code) DO UPDATE SET
				temperature_min = EXCLUDED.temperature_min, temperature_max = EXCLUDED.temperature_max,
				humidity_min = EXCLUDED.humidity_min, humidity_max = EXCLUDED.humidity_max,
				hazardous_class = EXCLUDED.hazardous_class, precautions = EXCLUDED.precautions,
				env_parameters = EXCLUDED.env_parameters, epc_format = EXCLUDED.epc_format
			RETURNING id`,
			hp.MaterialCode, hp.TemperatureMin, hp.TemperatureMax, hp.HumidityMin, hp.HumidityMax,
			hp.HazardousClass, hp.Precautions, hp.EnvParameters, hp.EPCFormat,
		).Scan(&hp.ID)
		if err != nil {
			return fmt.Errorf("upsert handling parameter: %w", err)
		}
		return nil
	})
}

// Delete elimina el material. Si hay inventario que lo referencia devuelve ErrConflict.
func (r *MaterialRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM material_master WHERE material_code = $1`, code)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// ListImages imágenes de un material, más recientes primero.
func (r *MaterialRepo) ListImages(ctx context.Context, code string) ([]*entity.MaterialImage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, material_code, type, filename, url, created_at
		FROM material_image WHERE material_code = $1 ORDER BY created_at DESC, id DESC`, code)
	if err != nil {
		return nil, fmt.Errorf("list material images: %w", err)
	}
	defer rows.Close()
	list := []*entity.MaterialImage{}
	for rows.Next() {
		var img entity.MaterialImage
		if err := rows.Scan(&img.ID, &img.MaterialCode, &img.Type, &img.Filename, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// AddImage registra los metadatos de una imagen.
func (r *MaterialRepo) AddImage(ctx context.Context, img *entity.MaterialImage) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO material_image (material_code, type, filename, url, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		img.MaterialCode, img.Type, img.Filename, img.URL, img.CreatedAt,
	).Scan(&img.ID)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert material image: %w", err)
	}
	return nil
}

// ListDocuments documentos de un material, más recientes primero.
func (r *MaterialRepo) ListDocuments(ctx context.Context, code string) ([]*entity.MaterialDocument, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, material_code, doc_type, filename, url, created_at
		FROM material_document WHERE material_code = $1 ORDER BY created_at DESC, id DESC`, code)
	if err != nil {
		return nil, fmt.Errorf("list material documents: %w", err)
	}
	defer rows.Close()
	list := []*entity.MaterialDocument{}
	for rows.Next() {
		var d entity.MaterialDocument
		if err := rows.Scan(&d.ID, &d.MaterialCode, &d.DocType, &d.Filename, &d.URL, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// AddDocument registra los metadatos de un documento.
func (r *MaterialRepo) AddDocument(ctx context.Context, doc *entity.MaterialDocument) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO material_document (material_code, doc_type, filename, url, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		doc.MaterialCode, doc.DocType, doc.Filename, doc.URL, doc.CreatedAt,
	).Scan(&doc.ID)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert material document: %w", err)
	}
	return nil
}
