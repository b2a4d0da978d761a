package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR generates a QR code that encodes a sighting share link
	GenerateShareQR(sightingID uuid.UUID, shareToken string) ([]byte, error)

	// ParseShareQR parses QR code data and returns the embedded share token
	ParseShareQR(qrData string) (string, error)
}
