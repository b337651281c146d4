package dto

// PageRequest paginación para listados (page base 0).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// DefaultPage aplica valores por defecto y tope de tamaño.
func (p *PageRequest) DefaultPage() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 20
	}
	if p.Size > 200 {
		p.Size = 200
	}
}

// Offset desplazamiento equivalente a la página.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
