package entity

import "time"

// Estados de una unidad de inventario serializada.
const (
	InventoryStatusRegistered = "REGISTERED"
	InventoryStatusPacked     = "PACKED"
	InventoryStatusShipped    = "SHIPPED"
	InventoryStatusConsumed   = "CONSUMED"
)

// InventoryUnit una instancia física de un material, identificada por su número de serie.
// BoxID y Status=PACKED se asignan siempre juntos (ver inventory.Pack).
type InventoryUnit struct {
	ID            int64
	MaterialCode  string
	SerialNumber  string
	BatchNumber   string
	Status        string
	WarehouseCode *string
	LocationID    *int64
	BoxID         *int64
	CreatedAt     time.Time
}
