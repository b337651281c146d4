package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// WarehouseUseCase mantenimiento de bodegas y sus ubicaciones.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// Get obtiene una bodega por código.
func (uc *WarehouseUseCase) Get(ctx context.Context, code string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	resp := toWarehouseResponse(w)
	return &resp, nil
}

// Save guarda el agregado completo (alta o reemplazo). Las ubicaciones que no vengan se eliminan.
func (uc *WarehouseUseCase) Save(ctx context.Context, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := toWarehouse(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(w)
	return &resp, nil
}

// Update reemplaza una bodega existente; el código de la ruta manda sobre el del cuerpo.
func (uc *WarehouseUseCase) Update(ctx context.Context, code string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	in.WarehouseCode = code
	return uc.Save(ctx, in)
}

// Delete elimina la bodega y sus ubicaciones.
func (uc *WarehouseUseCase) Delete(ctx context.Context, code string) error {
	existing, err := uc.repo.Get(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, code)
}

// LocationByID ubicación con el código de su bodega.
func (uc *WarehouseUseCase) LocationByID(ctx context.Context, id int64) (*dto.LocationLookupResponse, error) {
	l, err := uc.repo.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LocationLookupResponse{
		StorageLocationDTO: toLocationDTO(*l),
		WarehouseCode:      l.WarehouseCode,
	}, nil
}

func toWarehouse(in dto.WarehouseRequest) (*entity.Warehouse, error) {
	code := strings.TrimSpace(in.WarehouseCode)
	if code == "" || strings.TrimSpace(in.WarehouseName) == "" {
		return nil, domain.ErrInvalidInput
	}
	w := &entity.Warehouse{
		WarehouseCode:    code,
		WarehouseName:    in.WarehouseName,
		Location:         in.Location,
		Type:             in.Type,
		StorageLocations: make([]entity.StorageLocation, 0, len(in.StorageLocations)),
	}
	seen := map[string]bool{}
	for _, l := range in.StorageLocations {
		lc := strings.TrimSpace(l.LocationCode)
		if lc == "" {
			return nil, domain.ErrInvalidInput
		}
		if seen[lc] {
			return nil, domain.ErrDuplicate
		}
		seen[lc] = true
		w.StorageLocations = append(w.StorageLocations, entity.StorageLocation{
			ID:            l.ID,
			WarehouseCode: code,
			LocationCode:  lc,
			Description:   l.Description,
			Type:          l.Type,
		})
	}
	return w, nil
}

func toLocationDTO(l entity.StorageLocation) dto.StorageLocationDTO {
	return dto.StorageLocationDTO{
		ID:           l.ID,
		LocationCode: l.LocationCode,
		Description:  l.Description,
		Type:         l.Type,
	}
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	locs := make([]dto.StorageLocationDTO, 0, len(w.StorageLocations))
	for _, l := range w.StorageLocations {
		locs = append(locs, toLocationDTO(l))
	}
	return dto.WarehouseResponse{
		WarehouseCode:    w.WarehouseCode,
		WarehouseName:    w.WarehouseName,
		Location:         w.Location,
		Type:             w.Type,
		StorageLocations: locs,
	}
}
