package inventory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/inventory"
)

func TestNewBatch_CreaNUnidadesConSeriesDistintas(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	units := inventory.NewBatch("M1", "B1", 3, func() string { return uuid.New().String() }, now)

	require.Len(t, units, 3)
	seen := map[string]bool{}
	for _, u := range units {
		assert.Equal(t, "M1", u.MaterialCode)
		assert.Equal(t, "B1", u.BatchNumber)
		assert.Equal(t, entity.InventoryStatusRegistered, u.Status)
		assert.Equal(t, now, u.CreatedAt)
		assert.Nil(t, u.BoxID)
		seen[u.SerialNumber] = true
	}
	assert.Len(t, seen, 3, "las series deben ser únicas")
}

func TestNewBatch_OrdenDeCreacion(t *testing.T) {
	n := 0
	gen := func() string { n++; return fmt.Sprintf("S-%d", n) }
	units := inventory.NewBatch("M1", "B1", 3, gen, time.Now())

	assert.Equal(t, "S-1", units[0].SerialNumber)
	assert.Equal(t, "S-3", units[2].SerialNumber)
}

func TestNewBatch_CantidadNoPositiva(t *testing.T) {
	assert.Empty(t, inventory.NewBatch("M1", "B1", 0, uuid.NewString, time.Now()))
	assert.Empty(t, inventory.NewBatch("M1", "B1", -4, uuid.NewString, time.Now()))
}

func TestNewFullBox(t *testing.T) {
	box := inventory.NewFullBox("BX-100", 3, time.Now())
	assert.Equal(t, entity.ContainerKindBox, box.Kind)
	assert.Equal(t, "BX-100", box.SerialNumber)
	assert.Equal(t, entity.ContainerStatusFull, box.Status)
	assert.Equal(t, 3, box.ItemCount)
}

func TestPack_AsignaCajaYEstadoJuntos(t *testing.T) {
	u := &entity.InventoryUnit{ID: 1, Status: entity.InventoryStatusRegistered}
	assert.False(t, inventory.AlreadyPacked(u))

	inventory.Pack(u, 42)

	require.NotNil(t, u.BoxID)
	assert.Equal(t, int64(42), *u.BoxID)
	assert.Equal(t, entity.InventoryStatusPacked, u.Status)
	assert.True(t, inventory.AlreadyPacked(u))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, inventory.IsValidStatus("CONSUMED"))
	assert.False(t, inventory.IsValidStatus("LOST"))
}

func TestNest(t *testing.T) {
	pallet := &entity.ContainerUnit{ID: 10, Kind: entity.ContainerKindPallet, SerialNumber: "PL-1", Status: entity.ContainerStatusEmpty}
	box := &entity.ContainerUnit{ID: 11, Kind: entity.ContainerKindBox, SerialNumber: "BX-1", Status: entity.ContainerStatusFull}

	moved, err := inventory.Nest(pallet, box, nil, nil)
	require.NoError(t, err)
	assert.True(t, moved)

	require.NotNil(t, box.ParentContainerID)
	assert.Equal(t, int64(10), *box.ParentContainerID)
	assert.Equal(t, 1, pallet.BoxCount)
	assert.Equal(t, entity.ContainerStatusPartial, pallet.Status)
}

func TestNest_RechazaAutoAnidamiento(t *testing.T) {
	c := &entity.ContainerUnit{ID: 5, Kind: entity.ContainerKindPallet, SerialNumber: "PL-5"}
	_, err := inventory.Nest(c, c, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNest_MismaCajaDosVecesNoSumaDoble(t *testing.T) {
	pallet := &entity.ContainerUnit{ID: 10, Kind: entity.ContainerKindPallet, SerialNumber: "PL-1"}
	box := &entity.ContainerUnit{ID: 11, Kind: entity.ContainerKindBox, SerialNumber: "BX-1"}

	_, err := inventory.Nest(pallet, box, nil, nil)
	require.NoError(t, err)
	moved, err := inventory.Nest(pallet, box, nil, nil)
	require.NoError(t, err)

	assert.False(t, moved)
	assert.Equal(t, 1, pallet.BoxCount)
}

func TestNest_MoverCajaDescuentaPalletAnterior(t *testing.T) {
	p1 := &entity.ContainerUnit{ID: 1, Kind: entity.ContainerKindPallet, SerialNumber: "PL-1"}
	p2 := &entity.ContainerUnit{ID: 2, Kind: entity.ContainerKindPallet, SerialNumber: "PL-2"}
	box := &entity.ContainerUnit{ID: 3, Kind: entity.ContainerKindBox, SerialNumber: "BX-1"}

	_, err := inventory.Nest(p1, box, nil, nil)
	require.NoError(t, err)
	_, err = inventory.Nest(p2, box, p1, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, p1.BoxCount)
	assert.Equal(t, 1, p2.BoxCount)
	assert.Equal(t, int64(2), *box.ParentContainerID)
}

func TestNest_RechazaCiclo(t *testing.T) {
	pallet := &entity.ContainerUnit{ID: 1, Kind: entity.ContainerKindPallet, SerialNumber: "PL-1"}
	box := &entity.ContainerUnit{ID: 2, Kind: entity.ContainerKindBox, SerialNumber: "BX-1"}
	_, err := inventory.Nest(pallet, box, nil, nil)
	require.NoError(t, err)

	// box ya está dentro de pallet: pallet no puede entrar en box
	_, err = inventory.Nest(box, pallet, nil, []*entity.ContainerUnit{pallet})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, pallet.ParentContainerID)
}

func TestSeal(t *testing.T) {
	sc := &entity.ContainerUnit{Kind: entity.ContainerKindShippingContainer, Status: entity.ContainerStatusPartial}
	inventory.Seal(sc, "SEAL-9")
	assert.Equal(t, entity.ContainerStatusFull, sc.Status)
	assert.Equal(t, "SEAL-9", sc.SealNumber)

	pl := &entity.ContainerUnit{Kind: entity.ContainerKindPallet}
	inventory.Seal(pl, "SEAL-X")
	assert.Empty(t, pl.SealNumber)
}
