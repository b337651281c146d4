package ports

// QREncoder codifica contenido como imagen PNG de un código QR.
type QREncoder interface {
	PNG(content string, size int) ([]byte, error)
}
