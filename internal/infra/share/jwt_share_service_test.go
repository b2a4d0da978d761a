package share

import (
	"testing"
	"time"

	"skywitness/config"
	domainerrors "skywitness/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Share: &config.ShareConfig{
			SecretKey: secret,
			TokenTTL:  ttl,
		},
	}
}

func TestJWTShareService_GenerateAndValidateToken(t *testing.T) {
	shareService, err := NewJWTShareService(testConfig("test_share_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, shareService)

	sightingID := uuid.New()

	token, err := shareService.GenerateShareToken(sightingID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := shareService.ValidateShareToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, sightingID, claims.SightingID)
}

func TestJWTShareService_InvalidToken(t *testing.T) {
	shareService, err := NewJWTShareService(testConfig("test_share_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := shareService.ValidateShareToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrShareTokenInvalid)
}

func TestJWTShareService_WrongSecret(t *testing.T) {
	signer, err := NewJWTShareService(testConfig("first_share_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)

	verifier, err := NewJWTShareService(testConfig("other_share_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)

	token, err := signer.GenerateShareToken(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.ValidateShareToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrShareTokenInvalid)
}

func TestJWTShareService_EmptySecret(t *testing.T) {
	// Should fail to create service
	shareService, err := NewJWTShareService(testConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, shareService)
	assert.Contains(t, err.Error(), "share secret must be provided")
}

func TestJWTShareService_GetShareTokenDuration(t *testing.T) {
	shareService, err := NewJWTShareService(testConfig("test_share_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)

	// Zero config falls back to the default lifetime
	assert.Equal(t, time.Hour*24*7, shareService.GetShareTokenDuration())

	shareService, err = NewJWTShareService(testConfig("test_share_secret_key_very_long_for_testing", time.Minute*30))
	assert.NoError(t, err)
	assert.Equal(t, time.Minute*30, shareService.GetShareTokenDuration())
}
