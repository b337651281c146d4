package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackagingLevelDTO un nivel de la jerarquía.
type PackagingLevelDTO struct {
	ID                 int64               `json:"id,omitempty"`
	LevelIndex         int                 `json:"levelIndex"`
	LevelCode          string              `json:"levelCode"`
	LevelName          string              `json:"levelName"`
	ContainedQuantity  int                 `json:"containedQuantity"`
	DimensionsMM       string              `json:"dimensionsMm"`
	WeightKg           decimal.NullDecimal `json:"weightKg" swaggertype:"string"`
	CapacityUnits      string              `json:"capacityUnits"`
	IDTech             string              `json:"idTech"`
	BarcodeType        string              `json:"barcodeType"`
	RFIDTagType        string              `json:"rfidTagType"`
	EPCFormat          string              `json:"epcFormat"`
	LabelTemplate      string              `json:"labelTemplate"`
	GTINFormat         string              `json:"gtinFormat"`
	DefaultLabelCopies int                 `json:"defaultLabelCopies"`
	IsReturnable       bool                `json:"isReturnable"`
	IsSerialized       bool                `json:"isSerialized"`
}

// PackagingHierarchyDTO entrada y salida de una jerarquía de empaque.
type PackagingHierarchyDTO struct {
	ID                           int64               `json:"id,omitempty"`
	Name                         string              `json:"name"`
	ActivationFrom               *time.Time          `json:"activationFrom"`
	ActivationTo                 *time.Time          `json:"activationTo"`
	PackagingCapacityConstraints bool                `json:"packagingCapacityConstraints"`
	GTINAssignmentFormat         string              `json:"gtinAssignmentFormat"`
	Description                  string              `json:"description"`
	Levels                       []PackagingLevelDTO `json:"levels"`
}
