package mirror

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

func TestFromMaterial_MarcaSincronizacion(t *testing.T) {
	synced := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	days := 365
	row := fromMaterial(&entity.Material{MaterialCode: "M-1", MaterialName: "Válvula", ShelfLifeDays: &days}, synced)

	assert.Equal(t, "M-1", row.MaterialCode)
	assert.Equal(t, synced, row.SyncedAt)
	require.NotNil(t, row.ShelfLifeDays)
	assert.Equal(t, 365, *row.ShelfLifeDays)
}

func TestFromPackagingHierarchy_Fechas(t *testing.T) {
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	row := fromPackagingHierarchy(&entity.PackagingHierarchy{ID: 7, Name: "Caja", ActivationFrom: &from})

	require.NotNil(t, row.ActivationFrom)
	assert.Equal(t, from, time.Time(*row.ActivationFrom))
	assert.Nil(t, row.ActivationTo)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "material_master", MaterialMaster{}.TableName())
	assert.Equal(t, "packaging_level", PackagingLevel{}.TableName())
}
