package inventory

import (
	"time"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// SerialGenerator produce números de serie únicos para unidades nuevas.
type SerialGenerator func() string

// NewBatch construye quantity unidades REGISTERED del mismo lote, cada una con serie propia.
// quantity <= 0 devuelve una lista vacía.
func NewBatch(materialCode, batchNumber string, quantity int, serial SerialGenerator, now time.Time) []*entity.InventoryUnit {
	if quantity <= 0 {
		return []*entity.InventoryUnit{}
	}
	units := make([]*entity.InventoryUnit, 0, quantity)
	for i := 0; i < quantity; i++ {
		units = append(units, &entity.InventoryUnit{
			MaterialCode: materialCode,
			SerialNumber: serial(),
			BatchNumber:  batchNumber,
			Status:       entity.InventoryStatusRegistered,
			CreatedAt:    now,
		})
	}
	return units
}

// NewFullBox caja recién empacada: FULL y con ItemCount igual a los ids solicitados,
// no a los que realmente existan.
func NewFullBox(serial string, requested int, now time.Time) *entity.ContainerUnit {
	return &entity.ContainerUnit{
		Kind:         entity.ContainerKindBox,
		SerialNumber: serial,
		Status:       entity.ContainerStatusFull,
		ItemCount:    requested,
		CreatedAt:    now,
	}
}

// Pack asigna la caja y el estado PACKED en un solo paso.
func Pack(unit *entity.InventoryUnit, boxID int64) {
	id := boxID
	unit.BoxID = &id
	unit.Status = entity.InventoryStatusPacked
}

// AlreadyPacked indica si la unidad ya estaba dentro de otra caja o fuera de bodega.
func AlreadyPacked(unit *entity.InventoryUnit) bool {
	return unit.BoxID != nil ||
		unit.Status == entity.InventoryStatusPacked ||
		unit.Status == entity.InventoryStatusShipped
}

// IsValidStatus valida un estado de unidad.
func IsValidStatus(status string) bool {
	switch status {
	case entity.InventoryStatusRegistered, entity.InventoryStatusPacked,
		entity.InventoryStatusShipped, entity.InventoryStatusConsumed:
		return true
	}
	return false
}
