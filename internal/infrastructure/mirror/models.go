package mirror

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// MaterialMaster fila del espejo de material_master.
type MaterialMaster struct {
	MaterialCode          string `gorm:"primaryKey"`
	MaterialName          string `gorm:"not null"`
	Description           string
	SKU                   string `gorm:"column:sku;index"`
	EanGtin               string `gorm:"index"`
	UPC                   string `gorm:"column:upc"`
	CountryOfOrigin       string
	Type                  string
	MaterialClass         string
	MaterialGroup         string
	GS1CategoryCode       string `gorm:"column:gs1_category_code"`
	ShelfLifeDays         *int
	ShelfLifeUOM          string `gorm:"column:shelf_life_uom"`
	StorageType           string
	ProcurementType       string
	BaseUOM               string              `gorm:"column:base_uom"`
	NetWeightKg           decimal.NullDecimal `gorm:"type:numeric(14,4)"`
	DimensionsMM          string              `gorm:"column:dimensions_mm"`
	TradeUOM              string              `gorm:"column:trade_uom"`
	TradeWeightKg         decimal.NullDecimal `gorm:"type:numeric(14,4)"`
	TradeDimensionsMM     string              `gorm:"column:trade_dimensions_mm"`
	IsPackaged            bool
	IsMilitaryGrade       bool
	IsFragile             bool
	IsEnvSensitive        bool
	IsHighValue           bool
	IsHazardous           bool
	IsBatchManaged        bool
	IsSerialized          bool
	IsRfidCapable         bool
	PackagingMaterialCode string
	ExternalERPCode       string `gorm:"column:external_erp_code"`
	ItemWeight            string
	ItemDimension         string
	MaxStoragePeriod      string
	MaterialEANUPC        string `gorm:"column:material_eanupc"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	SyncedAt              time.Time
}

func (MaterialMaster) TableName() string { return "material_master" }

// HandlingParameter fila del espejo de handling_parameter; única por material.
type HandlingParameter struct {
	ID             int64               `gorm:"primaryKey;autoIncrement:false"`
	MaterialCode   string              `gorm:"uniqueIndex;not null"`
	TemperatureMin decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	TemperatureMax decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	HumidityMin    decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	HumidityMax    decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	HazardousClass string
	Precautions    string
	EnvParameters  string
	EPCFormat      string `gorm:"column:epc_format"`
}

func (HandlingParameter) TableName() string { return "handling_parameter" }

// MaterialImage metadatos de imagen.
type MaterialImage struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	MaterialCode string `gorm:"index;not null"`
	Type         string
	Filename     string
	URL          string `gorm:"column:url"`
	CreatedAt    time.Time
}

func (MaterialImage) TableName() string { return "material_image" }

// MaterialDocument metadatos de documento.
type MaterialDocument struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	MaterialCode string `gorm:"index;not null"`
	DocType      string
	Filename     string
	URL          string `gorm:"column:url"`
	CreatedAt    time.Time
}

func (MaterialDocument) TableName() string { return "material_document" }

// PackagingHierarchy cabecera de jerarquía de empaque.
type PackagingHierarchy struct {
	ID                           int64 `gorm:"primaryKey;autoIncrement:false"`
	Name                         string
	ActivationFrom               *datatypes.Date
	ActivationTo                 *datatypes.Date
	PackagingCapacityConstraints bool
	GTINAssignmentFormat         string `gorm:"column:gtin_assignment_format"`
	Description                  string
}

func (PackagingHierarchy) TableName() string { return "packaging_hierarchy" }

// PackagingLevel nivel de una jerarquía.
type PackagingLevel struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement:false"`
	HierarchyID        int64 `gorm:"index"`
	LevelIndex         int
	LevelCode          string
	LevelName          string
	ContainedQuantity  int
	DimensionsMM       string              `gorm:"column:dimensions_mm"`
	WeightKg           decimal.NullDecimal `gorm:"type:numeric(14,4)"`
	CapacityUnits      string
	IDTech             string `gorm:"column:id_tech"`
	BarcodeType        string
	RFIDTagType        string `gorm:"column:rfid_tag_type"`
	EPCFormat          string `gorm:"column:epc_format"`
	LabelTemplate      string
	GTINFormat         string `gorm:"column:gtin_format"`
	DefaultLabelCopies int
	IsReturnable       bool
	IsSerialized       bool
}

func (PackagingLevel) TableName() string { return "packaging_level" }

func fromMaterial(m *entity.Material, syncedAt time.Time) MaterialMaster {
	return MaterialMaster{
		MaterialCode:          m.MaterialCode,
		MaterialName:          m.MaterialName,
		Description:           m.Description,
		SKU:                   m.SKU,
		EanGtin:               m.EanGtin,
		UPC:                   m.UPC,
		CountryOfOrigin:       m.CountryOfOrigin,
		Type:                  m.Type,
		MaterialClass:         m.MaterialClass,
		MaterialGroup:         m.MaterialGroup,
		GS1CategoryCode:       m.GS1CategoryCode,
		ShelfLifeDays:         m.ShelfLifeDays,
		ShelfLifeUOM:          m.ShelfLifeUOM,
		StorageType:           m.StorageType,
		ProcurementType:       m.ProcurementType,
		BaseUOM:               m.BaseUOM,
		NetWeightKg:           m.NetWeightKg,
		DimensionsMM:          m.DimensionsMM,
		TradeUOM:              m.TradeUOM,
		TradeWeightKg:         m.TradeWeightKg,
		TradeDimensionsMM:     m.TradeDimensionsMM,
		IsPackaged:            m.IsPackaged,
		IsMilitaryGrade:       m.IsMilitaryGrade,
		IsFragile:             m.IsFragile,
		IsEnvSensitive:        m.IsEnvSensitive,
		IsHighValue:           m.IsHighValue,
		IsHazardous:           m.IsHazardous,
		IsBatchManaged:        m.IsBatchManaged,
		IsSerialized:          m.IsSerialized,
		IsRfidCapable:         m.IsRfidCapable,
		PackagingMaterialCode: m.PackagingMaterialCode,
		ExternalERPCode:       m.ExternalERPCode,
		ItemWeight:            m.ItemWeight,
		ItemDimension:         m.ItemDimension,
		MaxStoragePeriod:      m.MaxStoragePeriod,
		MaterialEANUPC:        m.MaterialEANUPC,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		SyncedAt:              syncedAt,
	}
}

func fromHandlingParameter(hp *entity.HandlingParameter) HandlingParameter {
	return HandlingParameter{
		ID:             hp.ID,
		MaterialCode:   hp.MaterialCode,
		TemperatureMin: hp.TemperatureMin,
		TemperatureMax: hp.TemperatureMax,
		HumidityMin:    hp.HumidityMin,
		HumidityMax:    hp.HumidityMax,
		HazardousClass: hp.HazardousClass,
		Precautions:    hp.Precautions,
		EnvParameters:  hp.EnvParameters,
		EPCFormat:      hp.EPCFormat,
	}
}

func dateOrNil(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromPackagingHierarchy(h *entity.PackagingHierarchy) PackagingHierarchy {
	return PackagingHierarchy{
		ID:                           h.ID,
		Name:                         h.Name,
		ActivationFrom:               dateOrNil(h.ActivationFrom),
		ActivationTo:                 dateOrNil(h.ActivationTo),
		PackagingCapacityConstraints: h.PackagingCapacityConstraints,
		GTINAssignmentFormat:         h.GTINAssignmentFormat,
		Description:                  h.Description,
	}
}

func fromPackagingLevel(l entity.PackagingLevel) PackagingLevel {
	return PackagingLevel{
		ID:                 l.ID,
		HierarchyID:        l.HierarchyID,
		LevelIndex:         l.LevelIndex,
		LevelCode:          l.LevelCode,
		LevelName:          l.LevelName,
		ContainedQuantity:  l.ContainedQuantity,
		DimensionsMM:       l.DimensionsMM,
		WeightKg:           l.WeightKg,
		CapacityUnits:      l.CapacityUnits,
		IDTech:             l.IDTech,
		BarcodeType:        l.BarcodeType,
		RFIDTagType:        l.RFIDTagType,
		EPCFormat:          l.EPCFormat,
		LabelTemplate:      l.LabelTemplate,
		GTINFormat:         l.GTINFormat,
		DefaultLabelCopies: l.DefaultLabelCopies,
		IsReturnable:       l.IsReturnable,
		IsSerialized:       l.IsSerialized,
	}
}
