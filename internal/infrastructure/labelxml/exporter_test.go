package labelxml

import (
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

func plantilla(layout string) *entity.LabelTemplate {
	code := "MAT-001"
	return &entity.LabelTemplate{
		ID:           7,
		Name:         "Caja estándar",
		LevelName:    entity.LabelLevelBox,
		WidthMM:      decimal.NewNullDecimal(decimal.NewFromInt(100)),
		HeightMM:     decimal.NewNullDecimal(decimal.NewFromInt(50)),
		Layout:       json.RawMessage(layout),
		Status:       entity.LabelStatusActive,
		MaterialCode: &code,
	}
}

func TestExport_LayoutDelDisenador(t *testing.T) {
	// el diseñador guarda el arreglo serializado como string
	layout := `"[{\"id\":1,\"type\":\"text\",\"x\":10,\"y\":5,\"content\":\"Lote\"},{\"id\":2,\"type\":\"qr\",\"x\":60,\"y\":5}]"`

	out, fp, err := NewExporter().Export(plantilla(layout))
	require.NoError(t, err)
	assert.Len(t, fp, 64)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("LabelTemplate")
	require.NotNil(t, root)
	assert.Equal(t, "BOX", root.SelectAttrValue("level", ""))
	assert.Equal(t, "ACTIVE", root.SelectAttrValue("status", ""))
	assert.Equal(t, "Caja estándar", root.SelectElement("Name").Text())
	assert.Equal(t, "100", root.SelectElement("Size").SelectAttrValue("width", ""))
	assert.Equal(t, "MAT-001", root.SelectElement("Material").SelectAttrValue("code", ""))

	elements := root.SelectElement("Layout").SelectElements("Element")
	require.Len(t, elements, 2)
	assert.Equal(t, "text", elements[0].SelectAttrValue("type", ""))
	assert.Equal(t, "Lote", elements[0].Text())
	assert.Equal(t, "60", elements[1].SelectAttrValue("x", ""))
}

func TestExport_ObjetoConElements(t *testing.T) {
	out, _, err := NewExporter().Export(plantilla(`{"elements":[{"type":"barcode"}]}`))
	require.NoError(t, err)
	assert.Contains(t, string(out), `type="barcode"`)
}

func TestExport_SinLayout(t *testing.T) {
	tpl := plantilla(``)
	tpl.MaterialCode = nil
	out, _, err := NewExporter().Export(tpl)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<Material")
}

func TestExport_LayoutInvalido(t *testing.T) {
	_, _, err := NewExporter().Export(plantilla(`42`))
	assert.Error(t, err)
}

func TestExport_HuellaEstable(t *testing.T) {
	_, a, err := NewExporter().Export(plantilla(`[{"type":"text","content":"x"}]`))
	require.NoError(t, err)
	_, b, err := NewExporter().Export(plantilla(`[{"type":"text","content":"x"}]`))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, c, err := NewExporter().Export(plantilla(`[{"type":"text","content":"y"}]`))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_OrdenDeAtributos(t *testing.T) {
	a, err := Fingerprint([]byte(`<a y="1" x="2"></a>`))
	require.NoError(t, err)
	b, err := Fingerprint([]byte(`<a x="2" y="1"></a>`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
