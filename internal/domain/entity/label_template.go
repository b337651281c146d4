package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Niveles de empaque a los que aplica una plantilla.
const (
	LabelLevelItem      = "ITEM"
	LabelLevelBox       = "BOX"
	LabelLevelPallet    = "PALLET"
	LabelLevelContainer = "CONTAINER"
)

// Ciclo de vida de la plantilla.
const (
	LabelStatusDraft   = "DRAFT"
	LabelStatusActive  = "ACTIVE"
	LabelStatusRetired = "RETIRED"
)

// LabelTemplate plantilla de etiqueta; Layout es un documento JSON opaco para el backend.
type LabelTemplate struct {
	ID           int64
	Name         string
	LevelName    string
	WidthMM      decimal.NullDecimal
	HeightMM     decimal.NullDecimal
	Layout       json.RawMessage
	Status       string
	MaterialCode *string
}
