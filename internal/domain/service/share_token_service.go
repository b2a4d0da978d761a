package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ShareClaims defines the custom claims embedded in a signed share link.
type ShareClaims struct {
	SightingID uuid.UUID
	jwt.RegisteredClaims
}

// ShareTokenService defines the interface for signing and validating share links.
// This abstracts the details of token creation from the use cases.
type ShareTokenService interface {
	// GenerateShareToken creates a signed token granting read access to a sighting.
	GenerateShareToken(sightingID uuid.UUID) (string, error)

	// ValidateShareToken checks the validity of a share token string.
	ValidateShareToken(tokenString string) (*ShareClaims, error)

	// GetShareTokenDuration returns the configured lifetime for share tokens.
	GetShareTokenDuration() time.Duration
}
