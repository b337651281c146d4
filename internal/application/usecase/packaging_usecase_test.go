package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository/mocks"
)

func TestPackagingCreate_OrdenaNiveles(t *testing.T) {
	repo := new(mocks.PackagingRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PackagingHierarchy")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.PackagingHierarchy).ID = 1 }).
		Return(nil)
	uc := NewPackagingUseCase(repo)

	out, err := uc.Create(context.Background(), dto.PackagingHierarchyDTO{
		Name: "Estándar",
		Levels: []dto.PackagingLevelDTO{
			{LevelIndex: 2, LevelCode: "PAL"},
			{LevelIndex: 0, LevelCode: "EA"},
			{LevelIndex: 1, LevelCode: "BOX", ContainedQuantity: 12},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	require.Len(t, out.Levels, 3)
	assert.Equal(t, []string{"EA", "BOX", "PAL"}, []string{out.Levels[0].LevelCode, out.Levels[1].LevelCode, out.Levels[2].LevelCode})
}

func TestPackagingCreate_FechasInvertidas(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)
	uc := NewPackagingUseCase(new(mocks.PackagingRepository))

	_, err := uc.Create(context.Background(), dto.PackagingHierarchyDTO{Name: "X", ActivationFrom: &from, ActivationTo: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPackagingUpdate_NoExiste(t *testing.T) {
	repo := new(mocks.PackagingRepository)
	repo.On("Get", mock.Anything, int64(4)).Return(nil, nil)
	uc := NewPackagingUseCase(repo)

	_, err := uc.Update(context.Background(), 4, dto.PackagingHierarchyDTO{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
