package dto

import "time"

// MirrorTableResult resultado de copiar una tabla al espejo.
type MirrorTableResult struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// MirrorReportResponse resumen de una ejecución del espejo.
type MirrorReportResponse struct {
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
	Tables     []MirrorTableResult `json:"tables"`
	Failed     bool                `json:"failed"`
}
