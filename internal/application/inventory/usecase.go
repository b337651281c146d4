package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/inventory"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

// UseCase registro de unidades serializadas y empaque en cajas.
type UseCase struct {
	txRunner      TxRunner
	materialRepo  repository.MaterialRepository
	inventoryRepo repository.InventoryRepository
	containerRepo repository.ContainerRepository
	log           *logger.Logger

	newSerial inventory.SerialGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso. Las series se generan con UUID v4.
func NewUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	inventoryRepo repository.InventoryRepository,
	containerRepo repository.ContainerRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		materialRepo:  materialRepo,
		inventoryRepo: inventoryRepo,
		containerRepo: containerRepo,
		log:           log.Component("inventory"),
		newSerial:     uuid.NewString,
		now:           time.Now,
	}
}

// RegisterBatch crea Quantity unidades REGISTERED del material con el mismo lote.
// Todo o nada: si falla una inserción no queda ninguna.
func (uc *UseCase) RegisterBatch(ctx context.Context, in dto.RegisterBatchRequest) ([]dto.InventoryUnitResponse, error) {
	code := strings.TrimSpace(in.MaterialCode)
	if code == "" || in.Quantity == nil {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	units := inventory.NewBatch(material.MaterialCode, in.BatchNumber, *in.Quantity, uc.newSerial, uc.now())
	if len(units) == 0 {
		return []dto.InventoryUnitResponse{}, nil
	}

	err = uc.txRunner.Run(ctx, func(inventoryRepo repository.InventoryRepository, _ repository.ContainerRepository) error {
		return inventoryRepo.CreateBatch(ctx, units)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("material", code).Str("batch", in.BatchNumber).Int("units", len(units)).Msg("lote registrado")
	return toInventoryResponses(units), nil
}

// PackItemsIntoBox crea una caja FULL con la serie dada y empaca en ella las unidades existentes.
// Los ids desconocidos se omiten; ItemCount refleja los ids solicitados.
func (uc *UseCase) PackItemsIntoBox(ctx context.Context, in dto.PackBoxRequest) (*dto.ContainerResponse, error) {
	serial := strings.TrimSpace(in.BoxSerial)
	if len(in.InventoryIDs) == 0 || serial == "" {
		return nil, domain.ErrInvalidInput
	}

	box := inventory.NewFullBox(serial, len(in.InventoryIDs), uc.now())
	err := uc.txRunner.Run(ctx, func(inventoryRepo repository.InventoryRepository, containerRepo repository.ContainerRepository) error {
		if err := containerRepo.Create(ctx, box); err != nil {
			return err
		}
		units, err := inventoryRepo.FindByIDs(ctx, in.InventoryIDs)
		if err != nil {
			return err
		}
		if skipped := len(uniqueIDs(in.InventoryIDs)) - len(units); skipped > 0 {
			uc.log.Warn().Str("box", serial).Int("skipped", skipped).Msg("ids de inventario inexistentes omitidos")
		}
		for _, u := range units {
			if inventory.AlreadyPacked(u) {
				uc.log.Warn().Str("serial", u.SerialNumber).Str("status", u.Status).Str("box", serial).Msg("unidad re-empacada")
			}
			inventory.Pack(u, box.ID)
			if err := inventoryRepo.Update(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToContainerResponse(box)
	return &resp, nil
}

// List todas las unidades.
func (uc *UseCase) List(ctx context.Context) ([]dto.InventoryUnitResponse, error) {
	list, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetBySerial obtiene una unidad por número de serie.
func (uc *UseCase) GetBySerial(ctx context.Context, serial string) (*dto.InventoryUnitResponse, error) {
	u, err := uc.inventoryRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryResponse(u)
	return &resp, nil
}

// CountByStatus conteo por estado; los estados sin unidades aparecen en cero.
func (uc *UseCase) CountByStatus(ctx context.Context) (*dto.StatusCountResponse, error) {
	counts, err := uc.inventoryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.StatusCountResponse{Counts: map[string]int{
		entity.InventoryStatusRegistered: 0,
		entity.InventoryStatusPacked:     0,
		entity.InventoryStatusShipped:    0,
		entity.InventoryStatusConsumed:   0,
	}}
	for status, n := range counts {
		out.Counts[status] = n
		out.Total += n
	}
	return out, nil
}

func uniqueIDs(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
