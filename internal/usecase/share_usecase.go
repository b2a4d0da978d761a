package usecase

import (
	"context"

	"skywitness/internal/domain/entity"

	"github.com/google/uuid"
)

// ShareLink bundles a signed share token with its QR rendering
type ShareLink struct {
	SightingID uuid.UUID `json:"sighting_id"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
	QRCodePNG  []byte    `json:"-"`
}

// ShareUsecase defines the interface for sighting share-link use cases
type ShareUsecase interface {
	// CreateShareLink signs a share token for a sighting and renders its QR code
	CreateShareLink(ctx context.Context, sightingID uuid.UUID) (*ShareLink, error)

	// ResolveShareToken validates a share token and returns the shared sighting
	ResolveShareToken(ctx context.Context, token string) (*entity.Sighting, error)
}
