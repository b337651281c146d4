package inventory

import (
	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

func toInventoryResponse(u *entity.InventoryUnit) dto.InventoryUnitResponse {
	return dto.InventoryUnitResponse{
		ID:            u.ID,
		MaterialCode:  u.MaterialCode,
		SerialNumber:  u.SerialNumber,
		BatchNumber:   u.BatchNumber,
		Status:        u.Status,
		WarehouseCode: u.WarehouseCode,
		LocationID:    u.LocationID,
		BoxID:         u.BoxID,
		CreatedAt:     u.CreatedAt,
	}
}

func toInventoryResponses(list []*entity.InventoryUnit) []dto.InventoryUnitResponse {
	out := make([]dto.InventoryUnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toInventoryResponse(u))
	}
	return out
}

// ToContainerResponse proyecta solo los atributos de la variante correspondiente.
func ToContainerResponse(c *entity.ContainerUnit) dto.ContainerResponse {
	r := dto.ContainerResponse{
		ID:                c.ID,
		Kind:              c.Kind,
		SerialNumber:      c.SerialNumber,
		Status:            c.Status,
		WarehouseCode:     c.WarehouseCode,
		LocationID:        c.LocationID,
		ParentContainerID: c.ParentContainerID,
		CreatedAt:         c.CreatedAt,
	}
	switch c.Kind {
	case entity.ContainerKindBox:
		n := c.ItemCount
		r.BatchNumber = c.BatchNumber
		r.ItemCount = &n
	case entity.ContainerKindPallet:
		n := c.BoxCount
		r.BoxCount = &n
	case entity.ContainerKindShippingContainer:
		r.ContainerNumber = c.ContainerNumber
		r.SealNumber = c.SealNumber
	}
	return r
}

func toContainerResponses(list []*entity.ContainerUnit) []dto.ContainerResponse {
	out := make([]dto.ContainerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToContainerResponse(c))
	}
	return out
}
