package entity

import "time"

// Tipos de evento de trazabilidad.
const (
	TraceEventProduction = "PRODUCTION"
	TraceEventPacking    = "PACKING"
	TraceEventShipping   = "SHIPPING"
	TraceEventReceiving  = "RECEIVING"
	TraceEventException  = "EXCEPTION"
)

// Resultado del evento.
const (
	TraceStatusSuccess = "SUCCESS"
	TraceStatusFailed  = "FAILED"
)

// TraceEvent registro inmutable del historial de una unidad o contenedor.
// InventoryID y ContainerID pueden venir ambos; no se exige exclusividad.
type TraceEvent struct {
	ID          int64
	EventType   string
	Timestamp   time.Time
	Location    string
	Actor       string
	Notes       string
	Status      string
	InventoryID *int64
	ContainerID *int64
}
