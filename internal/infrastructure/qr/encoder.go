package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/jhoicas/ilms-api/internal/application/ports"
)

var _ ports.QREncoder = (*Encoder)(nil)

// Encoder genera PNG de códigos QR con corrección de errores media.
type Encoder struct {
	level qrcode.RecoveryLevel
}

// NewEncoder crea el encoder.
func NewEncoder() *Encoder {
	return &Encoder{level: qrcode.Medium}
}

// PNG codifica content en una imagen cuadrada de size píxeles.
func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: contenido vacío")
	}
	png, err := qrcode.Encode(content, e.level, size)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return png, nil
}
