package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HandlingParameterDTO condiciones de manipulación (0..1 por material).
type HandlingParameterDTO struct {
	TemperatureMin decimal.NullDecimal `json:"temperatureMin" swaggertype:"string"`
	TemperatureMax decimal.NullDecimal `json:"temperatureMax" swaggertype:"string"`
	HumidityMin    decimal.NullDecimal `json:"humidityMin" swaggertype:"string"`
	HumidityMax    decimal.NullDecimal `json:"humidityMax" swaggertype:"string"`
	HazardousClass string              `json:"hazardousClass"`
	Precautions    string              `json:"precautions"`
	EnvParameters  string              `json:"envParameters"`
	EPCFormat      string              `json:"epcFormat"`
}

// MaterialDTO entrada y salida del maestro de materiales.
type MaterialDTO struct {
	MaterialCode          string                `json:"materialCode"`
	MaterialName          string                `json:"materialName"`
	Description           string                `json:"description"`
	SKU                   string                `json:"sku"`
	EanGtin               string                `json:"eanGtin"`
	UPC                   string                `json:"upc"`
	CountryOfOrigin       string                `json:"countryOfOrigin"`
	Type                  string                `json:"type"`
	MaterialClass         string                `json:"materialClass"`
	MaterialGroup         string                `json:"materialGroup"`
	GS1CategoryCode       string                `json:"gs1CategoryCode"`
	ShelfLifeDays         *int                  `json:"shelfLifeDays"`
	ShelfLifeUOM          string                `json:"shelfLifeUom"`
	StorageType           string                `json:"storageType"`
	ProcurementType       string                `json:"procurementType"`
	BaseUOM               string                `json:"baseUom"`
	NetWeightKg           decimal.NullDecimal   `json:"netWeightKg" swaggertype:"string"`
	DimensionsMM          string                `json:"dimensionsMm"`
	TradeUOM              string                `json:"tradeUom"`
	TradeWeightKg         decimal.NullDecimal   `json:"tradeWeightKg" swaggertype:"string"`
	TradeDimensionsMM     string                `json:"tradeDimensionsMm"`
	IsPackaged            bool                  `json:"isPackaged"`
	IsMilitaryGrade       bool                  `json:"isMilitaryGrade"`
	IsFragile             bool                  `json:"isFragile"`
	IsEnvSensitive        bool                  `json:"isEnvSensitive"`
	IsHighValue           bool                  `json:"isHighValue"`
	IsHazardous           bool                  `json:"isHazardous"`
	IsBatchManaged        bool                  `json:"isBatchManaged"`
	IsSerialized          bool                  `json:"isSerialized"`
	IsRfidCapable         bool                  `json:"isRfidCapable"`
	PackagingMaterialCode string                `json:"packagingMaterialCode"`
	ExternalERPCode       string                `json:"externalErpCode"`
	ItemWeight            string                `json:"itemWeight"`
	ItemDimension         string                `json:"itemDimension"`
	MaxStoragePeriod      string                `json:"maxStoragePeriod"`
	MaterialEANUPC        string                `json:"materialEanupc"`
	HandlingParameter     *HandlingParameterDTO `json:"handlingParameter,omitempty"`
	CreatedAt             *time.Time            `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time            `json:"updatedAt,omitempty"`
}

// MaterialListResponse página del catálogo.
type MaterialListResponse struct {
	Items []MaterialDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}

// MaterialFileRequest metadatos de imagen o documento (el archivo vive fuera del sistema).
type MaterialFileRequest struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// MaterialFileResponse salida de imagen o documento.
type MaterialFileResponse struct {
	ID           int64     `json:"id"`
	MaterialCode string    `json:"materialCode"`
	Type         string    `json:"type"`
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}
