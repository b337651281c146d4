package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/inventory"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// CreateContainer crea un contenedor vacío de cualquier tipo. Sin serie se genera una.
func (uc *UseCase) CreateContainer(ctx context.Context, in dto.CreateContainerRequest) (*dto.ContainerResponse, error) {
	kind := strings.ToUpper(strings.TrimSpace(in.Kind))
	if !entity.IsValidContainerKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	serial := strings.TrimSpace(in.SerialNumber)
	if serial == "" {
		serial = uc.newSerial()
	}
	c := &entity.ContainerUnit{
		Kind:          kind,
		SerialNumber:  serial,
		Status:        entity.ContainerStatusEmpty,
		WarehouseCode: in.WarehouseCode,
		LocationID:    in.LocationID,
		CreatedAt:     uc.now(),
	}
	switch kind {
	case entity.ContainerKindBox:
		c.BatchNumber = in.BatchNumber
	case entity.ContainerKindShippingContainer:
		c.ContainerNumber = in.ContainerNumber
	}
	if err := uc.containerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := ToContainerResponse(c)
	return &resp, nil
}

// GetContainer obtiene un contenedor por serie.
func (uc *UseCase) GetContainer(ctx context.Context, serial string) (*dto.ContainerResponse, error) {
	c, err := uc.containerRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToContainerResponse(c)
	return &resp, nil
}

// ListContainers lista por tipo (BOX, PALLET, SHIPPING_CONTAINER); vacío = todos.
func (uc *UseCase) ListContainers(ctx context.Context, kind string) ([]dto.ContainerResponse, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if kind != "" && !entity.IsValidContainerKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.containerRepo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return toContainerResponses(list), nil
}

// Contents contenedores hijos y unidades directamente dentro del contenedor.
func (uc *UseCase) Contents(ctx context.Context, serial string) (*dto.ContentsResponse, error) {
	c, err := uc.containerRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	children, err := uc.containerRepo.ListChildren(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	items, err := uc.inventoryRepo.ListByBox(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ContentsResponse{
		Container:  ToContainerResponse(c),
		Containers: toContainerResponses(children),
		Items:      toInventoryResponses(items),
	}, nil
}

// NestContainers coloca los hijos dentro del padre. Series desconocidas o repetidas se omiten;
// un hijo que ya estaba en otro contenedor se mueve. Anidar un contenedor en sí mismo o en un
// descendiente es ErrInvalidInput y revierte todo.
func (uc *UseCase) NestContainers(ctx context.Context, parentSerial string, in dto.NestRequest) (*dto.ContainerResponse, error) {
	if len(in.ChildSerials) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var parent *entity.ContainerUnit
	err := uc.txRunner.Run(ctx, func(_ repository.InventoryRepository, containerRepo repository.ContainerRepository) error {
		var err error
		parent, err = containerRepo.GetBySerial(ctx, parentSerial)
		if err != nil {
			return err
		}
		if parent == nil {
			return domain.ErrNotFound
		}

		// una sola instancia por id para que los contadores se acumulen entre hijos
		loaded := map[int64]*entity.ContainerUnit{parent.ID: parent}
		byID := func(id int64) (*entity.ContainerUnit, error) {
			if c, ok := loaded[id]; ok {
				return c, nil
			}
			c, err := containerRepo.GetByID(ctx, id)
			if err != nil || c == nil {
				return nil, err
			}
			loaded[id] = c
			return c, nil
		}

		ancestors, err := ancestorsOf(parent, byID)
		if err != nil {
			return err
		}

		var dirty []*entity.ContainerUnit
		marked := map[int64]bool{parent.ID: true}
		markDirty := func(c *entity.ContainerUnit) {
			if c != nil && !marked[c.ID] {
				marked[c.ID] = true
				dirty = append(dirty, c)
			}
		}

		seen := make(map[string]bool, len(in.ChildSerials))
		for _, raw := range in.ChildSerials {
			s := strings.TrimSpace(raw)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true

			child, err := containerRepo.GetBySerial(ctx, s)
			if err != nil {
				return err
			}
			if child == nil {
				uc.log.Warn().Str("parent", parentSerial).Str("child", s).Msg("contenedor hijo inexistente omitido")
				continue
			}
			if c, ok := loaded[child.ID]; ok {
				child = c
			} else {
				loaded[child.ID] = child
			}

			var previous *entity.ContainerUnit
			if child.ParentContainerID != nil && *child.ParentContainerID != parent.ID {
				if previous, err = byID(*child.ParentContainerID); err != nil {
					return err
				}
			}
			moved, err := inventory.Nest(parent, child, previous, ancestors)
			if err != nil {
				return err
			}
			if moved {
				markDirty(child)
				markDirty(previous)
			}
		}

		for _, c := range dirty {
			if err := containerRepo.Update(ctx, c); err != nil {
				return err
			}
		}
		return containerRepo.Update(ctx, parent)
	})
	if err != nil {
		return nil, err
	}
	resp := ToContainerResponse(parent)
	return &resp, nil
}

// ancestorsOf recorre la cadena de contenedores que contienen a c, del más cercano al más lejano.
func ancestorsOf(c *entity.ContainerUnit, byID func(int64) (*entity.ContainerUnit, error)) ([]*entity.ContainerUnit, error) {
	var out []*entity.ContainerUnit
	visited := map[int64]bool{c.ID: true}
	for next := c.ParentContainerID; next != nil && !visited[*next]; {
		visited[*next] = true
		a, err := byID(*next)
		if err != nil {
			return nil, err
		}
		if a == nil {
			break
		}
		out = append(out, a)
		next = a.ParentContainerID
	}
	return out, nil
}

// SealContainer marca el contenedor como FULL; en contenedores de embarque guarda el precinto.
func (uc *UseCase) SealContainer(ctx context.Context, serial string, in dto.SealRequest) (*dto.ContainerResponse, error) {
	c, err := uc.containerRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	inventory.Seal(c, strings.TrimSpace(in.SealNumber))
	if err := uc.containerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := ToContainerResponse(c)
	return &resp, nil
}
