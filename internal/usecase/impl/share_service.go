package impl

import (
	"context"
	"fmt"

	"skywitness/config"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/domain/service"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shareService struct {
	sightingRepo  repository.SightingRepository
	shareTokenSvc service.ShareTokenService
	qrcodeService service.QRCodeService
	config        *config.Config
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	SightingRepo  repository.SightingRepository
	ShareTokenSvc service.ShareTokenService
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewShareService creates a new share service instance
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		sightingRepo:  params.SightingRepo,
		shareTokenSvc: params.ShareTokenSvc,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
	}
}

// CreateShareLink signs a share token for a sighting and renders its QR code
func (s *shareService) CreateShareLink(ctx context.Context, sightingID uuid.UUID) (*usecase.ShareLink, error) {
	sighting, err := s.sightingRepo.FindSightingByID(ctx, sightingID)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, ErrSightingNotFound
		}

		return nil, errors.Wrap(err, "failed to find sighting")
	}

	token, err := s.shareTokenSvc.GenerateShareToken(sighting.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share token")
	}

	qrPNG, err := s.qrcodeService.GenerateShareQR(sighting.ID, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return &usecase.ShareLink{
		SightingID: sighting.ID,
		Token:      token,
		URL:        s.shareURL(token),
		QRCodePNG:  qrPNG,
	}, nil
}

// ResolveShareToken validates a share token and returns the shared sighting
func (s *shareService) ResolveShareToken(ctx context.Context, token string) (*entity.Sighting, error) {
	claims, err := s.shareTokenSvc.ValidateShareToken(token)
	if err != nil {
		return nil, domainerrors.ErrShareTokenInvalid
	}

	sighting, err := s.sightingRepo.FindSightingByID(ctx, claims.SightingID)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, ErrSightingNotFound
		}

		return nil, errors.Wrap(err, "failed to find shared sighting")
	}

	return sighting, nil
}

// shareURL renders the public link clients open from the QR code.
func (s *shareService) shareURL(token string) string {
	baseURL := "https://skywitness.app/s"
	if s.config.QRCode != nil && s.config.QRCode.BaseURL != "" {
		baseURL = s.config.QRCode.BaseURL
	}

	return fmt.Sprintf("%s/%s", baseURL, token)
}
