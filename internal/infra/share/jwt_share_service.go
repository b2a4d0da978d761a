// Package share provides the concrete implementation of the share-link token service.
package share

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"skywitness/config"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/service"
)

const defaultShareTTL = time.Hour * 24 * 7

// jwtShareService is a concrete implementation of the ShareTokenService interface using the JWT standard.
type jwtShareService struct {
	secret string        // Secret key for signing share tokens.
	ttl    time.Duration // Time-to-live for share tokens.
}

// NewJWTShareService is the constructor for jwtShareService.
// It takes configuration values to create a new share token service instance.
func NewJWTShareService(cfg *config.Config) (service.ShareTokenService, error) {
	if cfg.Share == nil || cfg.Share.SecretKey == "" {
		return nil, errors.New("share secret must be provided")
	}

	ttl := cfg.Share.TokenTTL
	if ttl <= 0 {
		ttl = defaultShareTTL
	}

	return &jwtShareService{
		secret: cfg.Share.SecretKey,
		ttl:    ttl,
	}, nil
}

// GenerateShareToken creates a signed token granting read access to a sighting.
func (s *jwtShareService) GenerateShareToken(sightingID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sightingID.String(),   // Subject (the shared sighting)
		"iat":  now.Unix(),            // Issued At
		"exp":  now.Add(s.ttl).Unix(), // Expiration Time
		"type": "share",               // Type of token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateShareToken checks the validity of a share token string.
func (s *jwtShareService) ValidateShareToken(tokenString string) (*service.ShareClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "share" {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	sightingID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	return &service.ShareClaims{SightingID: sightingID}, nil
}

// GetShareTokenDuration returns the configured lifetime for share tokens.
func (s *jwtShareService) GetShareTokenDuration() time.Duration {
	return s.ttl
}
