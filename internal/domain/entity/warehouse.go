package entity

// Warehouse bodega identificada por código. Es dueña de sus ubicaciones (cascade).
type Warehouse struct {
	WarehouseCode    string
	WarehouseName    string
	Location         string
	Type             string // Manufacturing, Distribution Center, ...
	StorageLocations []StorageLocation
}

// StorageLocation ubicación física dentro de una bodega (rack, bin, piso).
// LocationCode es único dentro de la bodega.
type StorageLocation struct {
	ID            int64
	WarehouseCode string
	LocationCode  string
	Description   string
	Type          string
}
