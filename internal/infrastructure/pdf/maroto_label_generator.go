// Package pdf genera etiquetas de trazabilidad en PDF del tamaño físico de la plantilla.
//
// Layout (100×50 mm por defecto):
//
//	┌──────────────────────────────────────┐
//	│ PLANTILLA · NIVEL                    │
//	│ Material                             │
//	│ ║│║║│║│║║│║ (Code128)     ▣ QR      │
//	│            SERIE                     │
//	│ Lote                                 │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ilms-api/internal/application/ports"
)

const margin = 3.0

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.LabelPDFGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa ports.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// Generate dibuja una etiqueta y devuelve los bytes del PDF.
func (g *MarotoLabelGenerator) Generate(_ context.Context, data ports.LabelData) ([]byte, error) {
	if data.Serial == "" {
		return nil, fmt.Errorf("pdf: serie vacía")
	}
	if data.WidthMM <= 2*margin || data.HeightMM <= 2*margin {
		return nil, fmt.Errorf("pdf: tamaño de etiqueta inválido %.1fx%.1f", data.WidthMM, data.HeightMM)
	}

	cfg := config.NewBuilder().
		WithDimensions(data.WidthMM, data.HeightMM).
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(data.TemplateName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(labelRows(data, data.HeightMM-2*margin)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRows reparte la altura útil: 15% título, 12% material, 45% códigos, 14% serie, resto lote.
func labelRows(data ports.LabelData, usable float64) []core.Row {
	title := data.TemplateName
	if data.LevelName != "" {
		title += " · " + data.LevelName
	}
	qrContent := data.TraceURL
	if qrContent == "" {
		qrContent = data.Serial
	}

	rows := []core.Row{
		row.New(usable * 0.15).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)),
	}
	material := data.MaterialName
	if material == "" {
		material = data.MaterialCode
	}
	rows = append(rows, row.New(usable*0.12).Add(col.New(12).Add(
		text.New(material, props.Text{Size: 7, Color: colorGray}),
	)))
	rows = append(rows, row.New(usable*0.45).Add(
		col.New(8).Add(code.NewBar(data.Serial, props.Barcode{Percent: 95, Center: true})),
		col.New(4).Add(code.NewQr(qrContent, props.Rect{Percent: 95, Center: true})),
	))
	rows = append(rows, row.New(usable*0.14).Add(col.New(8).Add(
		text.New(data.Serial, props.Text{Size: 6.5, Align: align.Center, Top: 0.5}),
	)))
	if data.BatchNumber != "" {
		rows = append(rows, row.New(usable*0.12).Add(col.New(12).Add(
			text.New("Lote: "+data.BatchNumber, props.Text{Size: 6.5, Color: colorGray}),
		)))
	}
	return rows
}
