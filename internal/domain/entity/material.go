package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa el maestro de materiales (catálogo de referencia por código).
// No se elimina mientras existan unidades de inventario que lo referencien.
type Material struct {
	MaterialCode          string
	MaterialName          string
	Description           string
	SKU                   string
	EanGtin               string
	UPC                   string
	CountryOfOrigin       string
	Type                  string
	MaterialClass         string
	MaterialGroup         string
	GS1CategoryCode       string
	ShelfLifeDays         *int
	ShelfLifeUOM          string
	StorageType           string
	ProcurementType       string
	BaseUOM               string
	NetWeightKg           decimal.NullDecimal
	DimensionsMM          string // LxWxH
	TradeUOM              string
	TradeWeightKg         decimal.NullDecimal
	TradeDimensionsMM     string
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
	ExternalERPCode       string
	ItemWeight            string
	ItemDimension         string
	MaxStoragePeriod      string
	MaterialEANUPC        string
	HandlingParameter     *HandlingParameter // 0..1
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HandlingParameter condiciones de manipulación y almacenamiento de un material.
type HandlingParameter struct {
	ID             int64
	MaterialCode   string
	TemperatureMin decimal.NullDecimal
	TemperatureMax decimal.NullDecimal
	HumidityMin    decimal.NullDecimal
	HumidityMax    decimal.NullDecimal
	HazardousClass string
	Precautions    string
	EnvParameters  string
	EPCFormat      string
}

// MaterialImage metadatos de una imagen del material (el archivo vive fuera del sistema).
type MaterialImage struct {
	ID           int64
	MaterialCode string
	Type         string
	Filename     string
	URL          string
	CreatedAt    time.Time
}

// MaterialDocument metadatos de un documento del material (ficha técnica, MSDS, etc.).
type MaterialDocument struct {
	ID           int64
	MaterialCode string
	DocType      string
	Filename     string
	URL          string
	CreatedAt    time.Time
}
