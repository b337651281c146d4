package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LabelTemplateDTO entrada y salida de una plantilla de etiqueta.
// LayoutJSON es un documento opaco que diseña el frontend.
type LabelTemplateDTO struct {
	ID           int64               `json:"id,omitempty"`
	Name         string              `json:"name"`
	LevelName    string              `json:"levelName"`
	WidthMM      decimal.NullDecimal `json:"widthMm" swaggertype:"string"`
	HeightMM     decimal.NullDecimal `json:"heightMm" swaggertype:"string"`
	LayoutJSON   json.RawMessage     `json:"layoutJson" swaggertype:"object"`
	Status       string              `json:"status"`
	MaterialCode *string             `json:"materialCode,omitempty"`
}
