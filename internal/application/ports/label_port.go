package ports

import (
	"context"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// LabelData datos ya resueltos para imprimir una etiqueta.
type LabelData struct {
	TemplateName string
	LevelName    string
	WidthMM      float64
	HeightMM     float64
	Serial       string
	MaterialCode string
	MaterialName string
	BatchNumber  string
	TraceURL     string
}

// LabelPDFGenerator puerto de salida para generar la etiqueta en PDF.
type LabelPDFGenerator interface {
	Generate(ctx context.Context, data LabelData) ([]byte, error)
}

// LabelXMLExporter serializa una plantilla al XML de layout para impresoras.
// Devuelve también la huella SHA-256 de su forma canónica (C14N), usada como ETag.
type LabelXMLExporter interface {
	Export(t *entity.LabelTemplate) (doc []byte, fingerprint string, err error)
}
