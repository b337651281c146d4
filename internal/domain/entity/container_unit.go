package entity

import "time"

// Variantes de contenedor (discriminante de ContainerUnit).
const (
	ContainerKindBox               = "BOX"
	ContainerKindPallet            = "PALLET"
	ContainerKindShippingContainer = "SHIPPING_CONTAINER"
)

// Estados de un contenedor.
const (
	ContainerStatusEmpty   = "EMPTY"
	ContainerStatusPartial = "PARTIAL"
	ContainerStatusFull    = "FULL"
	ContainerStatusShipped = "SHIPPED"
)

// ContainerUnit caja, pallet o contenedor de embarque. Un solo registro con discriminante Kind;
// los atributos de cada variante son opcionales y solo aplican a su Kind.
// ParentContainerID permite anidar (Box ⊂ Pallet ⊂ ShippingContainer) solo por convención.
type ContainerUnit struct {
	ID                int64
	Kind              string
	SerialNumber      string
	Status            string
	WarehouseCode     *string
	LocationID        *int64
	ParentContainerID *int64

	// Box
	BatchNumber string
	ItemCount   int
	// Pallet
	BoxCount int
	// ShippingContainer
	ContainerNumber string
	SealNumber      string

	CreatedAt time.Time
}

// IsValidContainerKind indica si el discriminante es conocido.
func IsValidContainerKind(kind string) bool {
	switch kind {
	case ContainerKindBox, ContainerKindPallet, ContainerKindShippingContainer:
		return true
	}
	return false
}
