package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// PackagingUseCase CRUD de jerarquías de empaque.
type PackagingUseCase struct {
	repo repository.PackagingRepository
}

// NewPackagingUseCase construye el caso de uso.
func NewPackagingUseCase(repo repository.PackagingRepository) *PackagingUseCase {
	return &PackagingUseCase{repo: repo}
}

// List todas las jerarquías.
func (uc *PackagingUseCase) List(ctx context.Context) ([]dto.PackagingHierarchyDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackagingHierarchyDTO, 0, len(list))
	for _, h := range list {
		out = append(out, toPackagingDTO(h))
	}
	return out, nil
}

// Get obtiene una jerarquía por ID.
func (uc *PackagingUseCase) Get(ctx context.Context, id int64) (*dto.PackagingHierarchyDTO, error) {
	h, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	out := toPackagingDTO(h)
	return &out, nil
}

// Create alta de una jerarquía con sus niveles.
func (uc *PackagingUseCase) Create(ctx context.Context, in dto.PackagingHierarchyDTO) (*dto.PackagingHierarchyDTO, error) {
	h, err := toPackaging(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	out := toPackagingDTO(h)
	return &out, nil
}

// Update reemplaza la jerarquía y todos sus niveles.
func (uc *PackagingUseCase) Update(ctx context.Context, id int64, in dto.PackagingHierarchyDTO) (*dto.PackagingHierarchyDTO, error) {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	h, err := toPackaging(in)
	if err != nil {
		return nil, err
	}
	h.ID = id
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	out := toPackagingDTO(h)
	return &out, nil
}

// Delete elimina la jerarquía y sus niveles.
func (uc *PackagingUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPackaging(in dto.PackagingHierarchyDTO) (*entity.PackagingHierarchy, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ActivationFrom != nil && in.ActivationTo != nil && in.ActivationTo.Before(*in.ActivationFrom) {
		return nil, domain.ErrInvalidInput
	}
	h := &entity.PackagingHierarchy{
		Name:                         in.Name,
		ActivationFrom:               in.ActivationFrom,
		ActivationTo:                 in.ActivationTo,
		PackagingCapacityConstraints: in.PackagingCapacityConstraints,
		GTINAssignmentFormat:         in.GTINAssignmentFormat,
		Description:                  in.Description,
		Levels:                       make([]entity.PackagingLevel, 0, len(in.Levels)),
	}
	for _, l := range in.Levels {
		if l.ContainedQuantity < 0 || l.DefaultLabelCopies < 0 {
			return nil, domain.ErrInvalidInput
		}
		h.Levels = append(h.Levels, entity.PackagingLevel{
			LevelIndex:         l.LevelIndex,
			LevelCode:          l.LevelCode,
			LevelName:          l.LevelName,
			ContainedQuantity:  l.ContainedQuantity,
			DimensionsMM:       l.DimensionsMM,
			WeightKg:           l.WeightKg,
			CapacityUnits:      l.CapacityUnits,
			IDTech:             l.IDTech,
			BarcodeType:        l.BarcodeType,
			RFIDTagType:        l.RFIDTagType,
			EPCFormat:          l.EPCFormat,
			LabelTemplate:      l.LabelTemplate,
			GTINFormat:         l.GTINFormat,
			DefaultLabelCopies: l.DefaultLabelCopies,
			IsReturnable:       l.IsReturnable,
			IsSerialized:       l.IsSerialized,
		})
	}
	sort.SliceStable(h.Levels, func(i, j int) bool { return h.Levels[i].LevelIndex < h.Levels[j].LevelIndex })
	return h, nil
}

func toPackagingDTO(h *entity.PackagingHierarchy) dto.PackagingHierarchyDTO {
	out := dto.PackagingHierarchyDTO{
		ID:                           h.ID,
		Name:                         h.Name,
		ActivationFrom:               h.ActivationFrom,
		ActivationTo:                 h.ActivationTo,
		PackagingCapacityConstraints: h.PackagingCapacityConstraints,
		GTINAssignmentFormat:         h.GTINAssignmentFormat,
		Description:                  h.Description,
		Levels:                       make([]dto.PackagingLevelDTO, 0, len(h.Levels)),
	}
	for _, l := range h.Levels {
		out.Levels = append(out.Levels, dto.PackagingLevelDTO{
			ID:                 l.ID,
			LevelIndex:         l.LevelIndex,
			LevelCode:          l.LevelCode,
			LevelName:          l.LevelName,
			ContainedQuantity:  l.ContainedQuantity,
			DimensionsMM:       l.DimensionsMM,
			WeightKg:           l.WeightKg,
			CapacityUnits:      l.CapacityUnits,
			IDTech:             l.IDTech,
			BarcodeType:        l.BarcodeType,
			RFIDTagType:        l.RFIDTagType,
			EPCFormat:          l.EPCFormat,
			LabelTemplate:      l.LabelTemplate,
			GTINFormat:         l.GTINFormat,
			DefaultLabelCopies: l.DefaultLabelCopies,
			IsReturnable:       l.IsReturnable,
			IsSerialized:       l.IsSerialized,
		})
	}
	return out
}
