package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository/mocks"
)

func TestWarehouseSave_ReasignaUbicacionesAlCodigo(t *testing.T) {
	repo := new(mocks.WarehouseRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Warehouse")).Return(nil).Once()
	uc := NewWarehouseUseCase(repo)

	out, err := uc.Save(context.Background(), dto.WarehouseRequest{
		WarehouseCode: " WH-01 ",
		WarehouseName: "Central",
		StorageLocations: []dto.StorageLocationDTO{
			{ID: 3, LocationCode: "A-01"},
			{LocationCode: "A-02"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "WH-01", out.WarehouseCode)
	require.Len(t, out.StorageLocations, 2)

	saved := repo.Calls[0].Arguments.Get(1).(*entity.Warehouse)
	for _, l := range saved.StorageLocations {
		assert.Equal(t, "WH-01", l.WarehouseCode)
	}
	assert.Equal(t, int64(3), saved.StorageLocations[0].ID)
	repo.AssertExpectations(t)
}

func TestWarehouseSave_Validaciones(t *testing.T) {
	uc := NewWarehouseUseCase(new(mocks.WarehouseRepository))

	_, err := uc.Save(context.Background(), dto.WarehouseRequest{WarehouseName: "sin código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Save(context.Background(), dto.WarehouseRequest{
		WarehouseCode:    "WH",
		WarehouseName:    "X",
		StorageLocations: []dto.StorageLocationDTO{{LocationCode: "A"}, {LocationCode: "A"}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestWarehouseUpdate_CodigoDeRutaManda(t *testing.T) {
	repo := new(mocks.WarehouseRepository)
	repo.On("Get", mock.Anything, "WH-01").Return(&entity.Warehouse{WarehouseCode: "WH-01"}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(w *entity.Warehouse) bool {
		return w.WarehouseCode == "WH-01"
	})).Return(nil)
	uc := NewWarehouseUseCase(repo)

	out, err := uc.Update(context.Background(), "WH-01", dto.WarehouseRequest{WarehouseCode: "OTRO", WarehouseName: "Central"})
	require.NoError(t, err)
	assert.Equal(t, "WH-01", out.WarehouseCode)
}

func TestWarehouseUpdate_NoExiste(t *testing.T) {
	repo := new(mocks.WarehouseRepository)
	repo.On("Get", mock.Anything, "WH-9").Return(nil, nil)
	uc := NewWarehouseUseCase(repo)

	_, err := uc.Update(context.Background(), "WH-9", dto.WarehouseRequest{WarehouseName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWarehouseDelete_ConReferencias(t *testing.T) {
	repo := new(mocks.WarehouseRepository)
	repo.On("Get", mock.Anything, "WH-01").Return(&entity.Warehouse{WarehouseCode: "WH-01"}, nil)
	repo.On("Delete", mock.Anything, "WH-01").Return(domain.ErrConflict)
	uc := NewWarehouseUseCase(repo)

	assert.ErrorIs(t, uc.Delete(context.Background(), "WH-01"), domain.ErrConflict)
}

func TestLocationByID(t *testing.T) {
	repo := new(mocks.WarehouseRepository)
	repo.On("GetLocation", mock.Anything, int64(12)).
		Return(&entity.StorageLocation{ID: 12, WarehouseCode: "WH-01", LocationCode: "B-07"}, nil)
	repo.On("GetLocation", mock.Anything, int64(13)).Return(nil, nil)
	uc := NewWarehouseUseCase(repo)

	out, err := uc.LocationByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "WH-01", out.WarehouseCode)
	assert.Equal(t, "B-07", out.LocationCode)

	_, err = uc.LocationByID(context.Background(), 13)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
