package dto

import "time"

// CreateContainerRequest entrada para crear una caja, pallet o contenedor vacío.
type CreateContainerRequest struct {
	Kind            string  `json:"kind"`
	SerialNumber    string  `json:"serialNumber"`
	WarehouseCode   *string `json:"warehouseCode"`
	LocationID      *int64  `json:"locationId"`
	BatchNumber     string  `json:"batchNumber"`
	ContainerNumber string  `json:"containerNumber"`
}

// NestRequest series de los contenedores a colocar dentro del padre.
type NestRequest struct {
	ChildSerials []string `json:"childSerials"`
}

// SealRequest cierre de un contenedor; SealNumber solo aplica a contenedores de embarque.
type SealRequest struct {
	SealNumber string `json:"sealNumber"`
}

// ContainerResponse salida de un contenedor; los campos de variante se omiten si no aplican.
type ContainerResponse struct {
	ID                int64     `json:"id"`
	Kind              string    `json:"kind"`
	SerialNumber      string    `json:"serialNumber"`
	Status            string    `json:"status"`
	WarehouseCode     *string   `json:"warehouseCode,omitempty"`
	LocationID        *int64    `json:"locationId,omitempty"`
	ParentContainerID *int64    `json:"parentContainerId,omitempty"`
	BatchNumber       string    `json:"batchNumber,omitempty"`
	ItemCount         *int      `json:"itemCount,omitempty"`
	BoxCount          *int      `json:"boxCount,omitempty"`
	ContainerNumber   string    `json:"containerNumber,omitempty"`
	SealNumber        string    `json:"sealNumber,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ContentsResponse lo que hay directamente dentro de un contenedor.
type ContentsResponse struct {
	Container  ContainerResponse       `json:"container"`
	Containers []ContainerResponse     `json:"containers"`
	Items      []InventoryUnitResponse `json:"items"`
}
