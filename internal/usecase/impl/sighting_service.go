// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"skywitness/config"
	deliverycontext "skywitness/internal/delivery/context"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/domain/service"
	"skywitness/internal/navigation"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrSightingNotFound is returned when a sighting is not found
	ErrSightingNotFound = errors.New("sighting not found")
	// ErrInvalidSightingPosition is returned when the reported position is out of range
	ErrInvalidSightingPosition = errors.New("invalid sighting position")
	// ErrEmptyDescription is returned when a sighting report carries no description
	ErrEmptyDescription = errors.New("sighting description must not be empty")
)

const (
	defaultSightingTTL = 30 * time.Minute
	maxSightingTTL     = 6 * time.Hour
)

type sightingService struct {
	sightingRepo   repository.SightingRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// SightingServiceParams holds dependencies for SightingService, injected by Fx.
type SightingServiceParams struct {
	fx.In

	SightingRepo   repository.SightingRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSightingService creates a new sighting service instance
func NewSightingService(params SightingServiceParams) usecase.SightingUsecase {
	return &sightingService{
		sightingRepo:   params.SightingRepo,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// ReportSighting records a new sighting and publishes it for alert fan-out
func (s *sightingService) ReportSighting(ctx context.Context, reporterDeviceID uuid.UUID, report *usecase.SightingReport) (*entity.Sighting, error) {
	position := navigation.GeoCoordinate{Latitude: report.Latitude, Longitude: report.Longitude}
	if err := position.Validate(); err != nil {
		return nil, ErrInvalidSightingPosition
	}
	if report.Description == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	if maxActive := s.maxActivePerDevice(); maxActive > 0 {
		active, err := s.sightingRepo.CountActiveSightingsByDevice(ctx, reporterDeviceID, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sightings")
		}
		if active >= int64(maxActive) {
			return nil, domainerrors.ErrSightingLimitExceeded
		}
	}

	sighting := &entity.Sighting{
		ID:               uuid.New(),
		ReporterDeviceID: reporterDeviceID,
		Latitude:         report.Latitude,
		Longitude:        report.Longitude,
		AltitudeM:        report.AltitudeM,
		ObservedHeading:  report.ObservedHeading,
		ObservedPitch:    report.ObservedPitch,
		Description:      report.Description,
		Status:           entity.SightingStatusActive,
		ReportedAt:       now,
		ExpiresAt:        now.Add(s.sightingTTL(report.TTL)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.sightingRepo.CreateSighting(ctx, sighting); err != nil {
		return nil, errors.Wrap(err, "failed to create sighting")
	}

	// Publish the event for async alert fan-out. A publish failure must not
	// roll back the stored report: the sweep-free retry path is the client
	// re-listing nearby sightings.
	event := &service.SightingEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		SightingID:  sighting.ID.String(),
		Latitude:    sighting.Latitude,
		Longitude:   sighting.Longitude,
		AltitudeM:   sighting.AltitudeM,
		Description: sighting.Description,
		ReportedAt:  sighting.ReportedAt.UTC().Format(time.RFC3339),
		ExpiresAt:   sighting.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if err := s.eventPublisher.PublishSightingEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish sighting event",
			slog.String("sighting_id", sighting.ID.String()),
			slog.Any("error", err),
		)
	}

	return sighting, nil
}

// GetSighting retrieves a sighting by its ID
func (s *sightingService) GetSighting(ctx context.Context, id uuid.UUID) (*entity.Sighting, error) {
	sighting, err := s.sightingRepo.FindSightingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSightingNotFound) {
			return nil, ErrSightingNotFound
		}

		return nil, errors.Wrap(err, "failed to find sighting")
	}

	return sighting, nil
}

// ListNearbySightings retrieves active sightings within radiusKm of a point
func (s *sightingService) ListNearbySightings(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Sighting, error) {
	position := navigation.GeoCoordinate{Latitude: lat, Longitude: lon}
	if err := position.Validate(); err != nil {
		return nil, ErrInvalidSightingPosition
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm()
	}
	if maxRadius := s.maxRadiusKm(); radiusKm > maxRadius {
		radiusKm = maxRadius
	}

	sightings, err := s.sightingRepo.FindRecentSightingsNear(ctx, lat, lon, radiusKm, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby sightings")
	}

	return sightings, nil
}

// ExpireSightings marks all overdue sightings as expired and returns the count
func (s *sightingService) ExpireSightings(ctx context.Context) (int64, error) {
	expired, err := s.sightingRepo.ExpireSightings(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire sightings")
	}

	if expired > 0 {
		s.logger.Info("expired sightings", slog.Int64("count", expired))
	}

	return expired, nil
}

// sightingTTL resolves the effective lifetime, clamped to the configured cap.
func (s *sightingService) sightingTTL(override *time.Duration) time.Duration {
	ttl := defaultSightingTTL
	maxTTL := maxSightingTTL
	if s.config.Sighting != nil {
		if s.config.Sighting.DefaultTTL > 0 {
			ttl = s.config.Sighting.DefaultTTL
		}
		if s.config.Sighting.MaxTTL > 0 {
			maxTTL = s.config.Sighting.MaxTTL
		}
	}
	if override != nil && *override > 0 {
		ttl = *override
	}
	if ttl > maxTTL {
		ttl = maxTTL
	}

	return ttl
}

func (s *sightingService) maxActivePerDevice() int {
	if s.config.Sighting != nil {
		return s.config.Sighting.MaxActivePerDevice
	}

	return 0
}

func (s *sightingService) defaultRadiusKm() float64 {
	if s.config.Sighting != nil && s.config.Sighting.DefaultRadiusKm > 0 {
		return s.config.Sighting.DefaultRadiusKm
	}

	return 10
}

func (s *sightingService) maxRadiusKm() float64 {
	if s.config.Sighting != nil && s.config.Sighting.MaxRadiusKm > 0 {
		return s.config.Sighting.MaxRadiusKm
	}

	return 100
}
