package dto

// StorageLocationDTO ubicación anidada en la bodega. Sin ID = ubicación nueva.
// No lleva el código de bodega: lo define el agregado que la contiene.
type StorageLocationDTO struct {
	ID           int64  `json:"id,omitempty"`
	LocationCode string `json:"locationCode"`
	Description  string `json:"description"`
	Type         string `json:"type"`
}

// WarehouseRequest agregado completo a guardar (alta o reemplazo).
type WarehouseRequest struct {
	WarehouseCode    string               `json:"warehouseCode"`
	WarehouseName    string               `json:"warehouseName"`
	Location         string               `json:"location"`
	Type             string               `json:"type"`
	StorageLocations []StorageLocationDTO `json:"storageLocations"`
}

// WarehouseResponse salida de una bodega con sus ubicaciones.
type WarehouseResponse struct {
	WarehouseCode    string               `json:"warehouseCode"`
	WarehouseName    string               `json:"warehouseName"`
	Location         string               `json:"location"`
	Type             string               `json:"type"`
	StorageLocations []StorageLocationDTO `json:"storageLocations"`
}

// LocationLookupResponse búsqueda inversa de una ubicación con su bodega dueña.
type LocationLookupResponse struct {
	StorageLocationDTO
	WarehouseCode string `json:"warehouseCode"`
}
