package impl

import (
	"context"
	"testing"

	"skywitness/config"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/domain/service"
	mockRepo "skywitness/internal/mocks/repository"
	mockSvc "skywitness/internal/mocks/service"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shareServiceMocks struct {
	sightingRepo  *mockRepo.MockSightingRepository
	shareTokenSvc *mockSvc.MockShareTokenService
	qrcodeService *mockSvc.MockQRCodeService
}

func newShareService(t *testing.T, cfg *config.Config) (usecase.ShareUsecase, *shareServiceMocks) {
	t.Helper()

	mocks := &shareServiceMocks{
		sightingRepo:  mockRepo.NewMockSightingRepository(t),
		shareTokenSvc: mockSvc.NewMockShareTokenService(t),
		qrcodeService: mockSvc.NewMockQRCodeService(t),
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	svc := NewShareService(ShareServiceParams{
		SightingRepo:  mocks.sightingRepo,
		ShareTokenSvc: mocks.shareTokenSvc,
		QRCodeService: mocks.qrcodeService,
		Config:        cfg,
	})

	return svc, mocks
}

func TestShareService_CreateShareLink_Success(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()
	sighting := &entity.Sighting{ID: sightingID}
	expectedQR := []byte("png-bytes")

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(sighting, nil)

	mocks.shareTokenSvc.EXPECT().
		GenerateShareToken(sightingID).
		Return("signed-token", nil)

	mocks.qrcodeService.EXPECT().
		GenerateShareQR(sightingID, "signed-token").
		Return(expectedQR, nil)

	link, err := svc.CreateShareLink(ctx, sightingID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, sightingID, link.SightingID)
	assert.Equal(t, "signed-token", link.Token)
	assert.Equal(t, "https://skywitness.app/s/signed-token", link.URL)
	assert.Equal(t, expectedQR, link.QRCodePNG)
}

func TestShareService_CreateShareLink_ConfiguredBaseURL(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{BaseURL: "https://example.com/share"},
	}
	svc, mocks := newShareService(t, cfg)

	ctx := context.Background()
	sightingID := uuid.New()

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(&entity.Sighting{ID: sightingID}, nil)

	mocks.shareTokenSvc.EXPECT().
		GenerateShareToken(sightingID).
		Return("signed-token", nil)

	mocks.qrcodeService.EXPECT().
		GenerateShareQR(sightingID, "signed-token").
		Return([]byte("png"), nil)

	link, err := svc.CreateShareLink(ctx, sightingID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/share/signed-token", link.URL)
}

func TestShareService_CreateShareLink_SightingNotFound(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(nil, repository.ErrSightingNotFound)

	link, err := svc.CreateShareLink(ctx, sightingID)
	assert.Nil(t, link)
	assert.Equal(t, ErrSightingNotFound, err)
}

func TestShareService_CreateShareLink_TokenError(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(&entity.Sighting{ID: sightingID}, nil)

	mocks.shareTokenSvc.EXPECT().
		GenerateShareToken(sightingID).
		Return("", errors.New("signing error"))

	link, err := svc.CreateShareLink(ctx, sightingID)
	assert.Nil(t, link)
	assert.Error(t, err)
}

func TestShareService_ResolveShareToken_Success(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()
	expected := &entity.Sighting{ID: sightingID}

	mocks.shareTokenSvc.EXPECT().
		ValidateShareToken("signed-token").
		Return(&service.ShareClaims{SightingID: sightingID}, nil)

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(expected, nil)

	sighting, err := svc.ResolveShareToken(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, expected, sighting)
}

func TestShareService_ResolveShareToken_InvalidToken(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	mocks.shareTokenSvc.EXPECT().
		ValidateShareToken("garbage").
		Return(nil, errors.New("token is malformed"))

	sighting, err := svc.ResolveShareToken(context.Background(), "garbage")
	assert.Nil(t, sighting)
	assert.ErrorIs(t, err, domainerrors.ErrShareTokenInvalid)
}

func TestShareService_ResolveShareToken_SightingGone(t *testing.T) {
	svc, mocks := newShareService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	mocks.shareTokenSvc.EXPECT().
		ValidateShareToken("signed-token").
		Return(&service.ShareClaims{SightingID: sightingID}, nil)

	mocks.sightingRepo.EXPECT().
		FindSightingByID(ctx, sightingID).
		Return(nil, repository.ErrSightingNotFound)

	sighting, err := svc.ResolveShareToken(ctx, "signed-token")
	assert.Nil(t, sighting)
	assert.Equal(t, ErrSightingNotFound, err)
}
