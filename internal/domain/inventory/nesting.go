package inventory

import (
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// Nest coloca child dentro de parent y deja al padre en PARTIAL. El orden
// Box ⊂ Pallet ⊂ ShippingContainer es convención, no regla.
//
// previous es el contenedor que hoy contiene a child (nil si está suelto) y ancestors la
// cadena de contenedores que contienen a parent. Anidar un contenedor en sí mismo o en uno
// de sus descendientes es ErrInvalidInput. Devuelve false si child ya estaba en parent.
func Nest(parent, child, previous *entity.ContainerUnit, ancestors []*entity.ContainerUnit) (bool, error) {
	if parent.ID == child.ID || parent.SerialNumber == child.SerialNumber {
		return false, domain.ErrInvalidInput
	}
	for _, a := range ancestors {
		if a.ID == child.ID {
			return false, domain.ErrInvalidInput
		}
	}
	parent.Status = entity.ContainerStatusPartial
	if child.ParentContainerID != nil && *child.ParentContainerID == parent.ID {
		return false, nil
	}
	if previous != nil && countsAsBox(previous, child) && previous.BoxCount > 0 {
		previous.BoxCount--
	}
	id := parent.ID
	child.ParentContainerID = &id
	if countsAsBox(parent, child) {
		parent.BoxCount++
	}
	return true, nil
}

func countsAsBox(parent, child *entity.ContainerUnit) bool {
	return child.Kind == entity.ContainerKindBox && parent.Kind == entity.ContainerKindPallet
}

// Seal cierra el contenedor. En contenedores de embarque guarda el precinto si viene.
func Seal(c *entity.ContainerUnit, sealNumber string) {
	c.Status = entity.ContainerStatusFull
	if c.Kind == entity.ContainerKindShippingContainer && sealNumber != "" {
		c.SealNumber = sealNumber
	}
}
