package dto

import "time"

// TraceEventRequest entrada para registrar un evento de trazabilidad.
type TraceEventRequest struct {
	EventType   string     `json:"eventType"`
	Timestamp   *time.Time `json:"timestamp"`
	Location    string     `json:"location"`
	User        string     `json:"user"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	InventoryID *int64     `json:"inventoryId"`
	ContainerID *int64     `json:"containerId"`
}

// TraceEventResponse salida de un evento del historial.
type TraceEventResponse struct {
	ID          int64     `json:"id"`
	EventType   string    `json:"eventType"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	User        string    `json:"user"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	InventoryID *int64    `json:"inventoryId,omitempty"`
	ContainerID *int64    `json:"containerId,omitempty"`
}
