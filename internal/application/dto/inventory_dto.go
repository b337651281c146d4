package dto

import "time"

// RegisterBatchRequest entrada para registrar un lote de unidades serializadas.
type RegisterBatchRequest struct {
	MaterialCode string `json:"materialCode"`
	BatchNumber  string `json:"batchNumber"`
	Quantity     *int   `json:"quantity"`
}

// PackBoxRequest entrada para empacar unidades en una caja nueva.
type PackBoxRequest struct {
	InventoryIDs []int64 `json:"inventoryIds"`
	BoxSerial    string  `json:"boxSerial"`
}

// InventoryUnitResponse salida de una unidad de inventario.
type InventoryUnitResponse struct {
	ID            int64     `json:"id"`
	MaterialCode  string    `json:"materialCode"`
	SerialNumber  string    `json:"serialNumber"`
	BatchNumber   string    `json:"batchNumber"`
	Status        string    `json:"status"`
	WarehouseCode *string   `json:"warehouseCode,omitempty"`
	LocationID    *int64    `json:"locationId,omitempty"`
	BoxID         *int64    `json:"boxId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StatusCountResponse conteo de unidades por estado.
type StatusCountResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
