package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR generates a PNG QR code encoding a collection share token
	GenerateShareQR(token string) ([]byte, error)

	// ParseShareQR extracts the share token from scanned QR code content
	ParseShareQR(qrData string) (string, error)

	// ShareURL returns the public URL for a share token
	ShareURL(token string) string
}
