package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackagingHierarchy define los niveles de empaque (unidad → caja → pallet → contenedor).
// Es dueña de sus niveles: al borrarla se borran en cascada.
type PackagingHierarchy struct {
	ID                           int64
	Name                         string
	ActivationFrom               *time.Time
	ActivationTo                 *time.Time
	PackagingCapacityConstraints bool
	GTINAssignmentFormat         string
	Description                  string
	Levels                       []PackagingLevel
}

// PackagingLevel un nivel dentro de la jerarquía, ordenado por LevelIndex.
type PackagingLevel struct {
	ID                 int64
	HierarchyID        int64
	LevelIndex         int
	LevelCode          string
	LevelName          string
	ContainedQuantity  int
	DimensionsMM       string
	WeightKg           decimal.NullDecimal
	CapacityUnits      string
	IDTech             string // BARCODE, RFID, ...
	BarcodeType        string
	RFIDTagType        string
	EPCFormat          string
	LabelTemplate      string
	GTINFormat         string
	DefaultLabelCopies int
	IsReturnable       bool
	IsSerialized       bool
}
