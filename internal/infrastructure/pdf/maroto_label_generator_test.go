package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/ports"
)

func TestGenerate_PDF(t *testing.T) {
	g := NewMarotoLabelGenerator()
	out, err := g.Generate(context.Background(), ports.LabelData{
		TemplateName: "Etiqueta caja",
		LevelName:    "BOX",
		WidthMM:      100,
		HeightMM:     50,
		Serial:       "SN-0001",
		MaterialCode: "M-1",
		BatchNumber:  "L-7",
		TraceURL:     "https://ilms.example.com/api/trace/SN-0001",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerate_Invalido(t *testing.T) {
	g := NewMarotoLabelGenerator()

	_, err := g.Generate(context.Background(), ports.LabelData{WidthMM: 100, HeightMM: 50})
	assert.Error(t, err)

	_, err = g.Generate(context.Background(), ports.LabelData{Serial: "SN", WidthMM: 5, HeightMM: 50})
	assert.Error(t, err)
}
