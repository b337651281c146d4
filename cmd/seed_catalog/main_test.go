package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseCatalog_Latin1(t *testing.T) {
	raw := []byte("material_code;material_name;description\nM-2;V\xe1lvula;Acero\nM-1;Tuerca;\n;Sin c\xf3digo;x\nM-2;V\xe1lvula 2;\n")

	rows, err := parseCatalog(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "M-1", rows[0]["material_code"])
	assert.Equal(t, "M-2", rows[1]["material_code"])
	assert.Equal(t, "Válvula 2", rows[1]["material_name"])
}

func TestParseCatalog_FaltaColumna(t *testing.T) {
	_, err := parseCatalog(strings.NewReader("material_code;description\nM-1;x\n"))
	assert.Error(t, err)
}

func TestRenderSQL_Upsert(t *testing.T) {
	sql, err := renderSQL([]material{{"material_code": "M-1", "material_name": "Válvula O'Ring"}})
	require.NoError(t, err)

	assert.Contains(t, sql, `INSERT INTO "material_master"`)
	assert.Contains(t, sql, `ON CONFLICT (material_code) DO UPDATE SET`)
	assert.Contains(t, sql, `'Válvula O''Ring'`)
	assert.Contains(t, sql, `'m-1 valvula o''ring'`)
}

func TestRenderSQL_Vacio(t *testing.T) {
	sql, err := renderSQL(nil)
	require.NoError(t, err)
	assert.NotContains(t, sql, "INSERT")
}
