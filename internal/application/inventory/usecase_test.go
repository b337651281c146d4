package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository/mocks"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

type fixture struct {
	uc         *UseCase
	materials  *mocks.MaterialRepository
	inventory  *mocks.InventoryRepository
	containers *mocks.ContainerRepository
}

func newFixture() *fixture {
	f := &fixture{
		materials:  new(mocks.MaterialRepository),
		inventory:  new(mocks.InventoryRepository),
		containers: new(mocks.ContainerRepository),
	}
	tx := &mocks.TxRunner{Inventory: f.inventory, Container: f.containers}
	f.uc = NewUseCase(tx, f.materials, f.inventory, f.containers, logger.Nop())
	n := 0
	f.uc.newSerial = func() string { n++; return fmt.Sprintf("SN-%d", n) }
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func qty(n int) *int { return &n }

func TestRegisterBatch(t *testing.T) {
	f := newFixture()
	f.materials.On("Get", mock.Anything, "M1").Return(&entity.Material{MaterialCode: "M1"}, nil)
	f.inventory.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*entity.InventoryUnit")).
		Run(func(args mock.Arguments) {
			for i, u := range args.Get(1).([]*entity.InventoryUnit) {
				u.ID = int64(i + 1)
			}
		}).
		Return(nil).Once()

	out, err := f.uc.RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "M1", BatchNumber: "L-01", Quantity: qty(3)})
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, u := range out {
		assert.Equal(t, int64(i+1), u.ID)
		assert.Equal(t, fmt.Sprintf("SN-%d", i+1), u.SerialNumber)
		assert.Equal(t, "L-01", u.BatchNumber)
		assert.Equal(t, entity.InventoryStatusRegistered, u.Status)
		assert.Equal(t, fixedNow, u.CreatedAt)
	}
	f.inventory.AssertExpectations(t)
}

func TestRegisterBatch_MaterialInexistente(t *testing.T) {
	f := newFixture()
	f.materials.On("Get", mock.Anything, "NOPE").Return(nil, nil)

	_, err := f.uc.RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "NOPE", Quantity: qty(2)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.inventory.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestRegisterBatch_SinCantidad(t *testing.T) {
	f := newFixture()
	_, err := f.uc.RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "M1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterBatch_CantidadCeroDevuelveVacio(t *testing.T) {
	f := newFixture()
	f.materials.On("Get", mock.Anything, "M1").Return(&entity.Material{MaterialCode: "M1"}, nil)

	out, err := f.uc.RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "M1", Quantity: qty(0)})
	require.NoError(t, err)
	assert.Empty(t, out)
	f.inventory.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestRegisterBatch_FalloEnInsercionPropaga(t *testing.T) {
	f := newFixture()
	f.materials.On("Get", mock.Anything, "M1").Return(&entity.Material{MaterialCode: "M1"}, nil)
	f.inventory.On("CreateBatch", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	out, err := f.uc.RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "M1", Quantity: qty(2)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, out)
}

func TestPackItemsIntoBox(t *testing.T) {
	f := newFixture()
	u1 := &entity.InventoryUnit{ID: 1, SerialNumber: "A", Status: entity.InventoryStatusRegistered}
	u2 := &entity.InventoryUnit{ID: 2, SerialNumber: "B", Status: entity.InventoryStatusRegistered}

	f.containers.On("Create", mock.Anything, mock.AnythingOfType("*entity.ContainerUnit")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.ContainerUnit).ID = 99 }).
		Return(nil).Once()
	f.inventory.On("FindByIDs", mock.Anything, []int64{1, 2, 3}).Return([]*entity.InventoryUnit{u1, u2}, nil).Once()
	f.inventory.On("Update", mock.Anything, mock.AnythingOfType("*entity.InventoryUnit")).Return(nil).Twice()

	box, err := f.uc.PackItemsIntoBox(context.Background(), dto.PackBoxRequest{InventoryIDs: []int64{1, 2, 3}, BoxSerial: "BX-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(99), box.ID)
	assert.Equal(t, entity.ContainerKindBox, box.Kind)
	assert.Equal(t, entity.ContainerStatusFull, box.Status)
	require.NotNil(t, box.ItemCount)
	assert.Equal(t, 3, *box.ItemCount, "cuenta los ids solicitados, no los encontrados")

	for _, u := range []*entity.InventoryUnit{u1, u2} {
		require.NotNil(t, u.BoxID)
		assert.Equal(t, int64(99), *u.BoxID)
		assert.Equal(t, entity.InventoryStatusPacked, u.Status)
	}
	f.containers.AssertExpectations(t)
	f.inventory.AssertExpectations(t)
}

func TestPackItemsIntoBox_SinIDs(t *testing.T) {
	f := newFixture()
	_, err := f.uc.PackItemsIntoBox(context.Background(), dto.PackBoxRequest{BoxSerial: "BX-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.containers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPackItemsIntoBox_SerieDuplicada(t *testing.T) {
	f := newFixture()
	f.containers.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, err := f.uc.PackItemsIntoBox(context.Background(), dto.PackBoxRequest{InventoryIDs: []int64{1}, BoxSerial: "BX-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	f.inventory.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestGetBySerial_NoEncontrado(t *testing.T) {
	f := newFixture()
	f.inventory.On("GetBySerial", mock.Anything, "X").Return(nil, nil)

	_, err := f.uc.GetBySerial(context.Background(), "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCountByStatus_IncluyeEstadosEnCero(t *testing.T) {
	f := newFixture()
	f.inventory.On("CountByStatus", mock.Anything).Return(map[string]int{"PACKED": 2, "REGISTERED": 5}, nil)

	out, err := f.uc.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, out.Total)
	assert.Equal(t, 0, out.Counts[entity.InventoryStatusShipped])
	assert.Equal(t, 0, out.Counts[entity.InventoryStatusConsumed])
	assert.Equal(t, 2, out.Counts[entity.InventoryStatusPacked])
}
