package impl

import (
	"context"
	"time"

	"skywitness/config"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/navigation"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrSubscriptionNotFound is returned when a subscription is not found
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrInvalidRadius is returned when the alert radius is invalid
	ErrInvalidRadius = errors.New("invalid alert radius")
)

const (
	defaultAlertRadiusKm      = 10.0
	maxAlertRadiusKm          = 100.0
	defaultSubscriptionsLimit = 20
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	config           *config.Config
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		config:           params.Config,
	}
}

// CreateSubscription creates an alert subscription for a device
func (s *subscriptionService) CreateSubscription(ctx context.Context, deviceID uuid.UUID, input *usecase.SubscriptionInput) (*entity.AlertSubscription, error) {
	center := navigation.GeoCoordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := center.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	radius := s.defaultRadiusKm()
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}
	if radius <= 0 || radius > s.maxRadiusKm() {
		return nil, ErrInvalidRadius
	}

	existing, err := s.subscriptionRepo.FindSubscriptionsByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by device")
	}
	if len(existing) >= s.subscriptionsLimit() {
		return nil, domainerrors.ErrSubscriptionLimitExceeded
	}

	subscription := &entity.AlertSubscription{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		Label:     input.Label,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		RadiusKm:  radius,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	return subscription, nil
}

// GetDeviceSubscriptions retrieves all subscriptions for a device
func (s *subscriptionService) GetDeviceSubscriptions(ctx context.Context, deviceID uuid.UUID) ([]*entity.AlertSubscription, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by device")
	}

	return subscriptions, nil
}

// UpdateAlertRadius updates the alert radius for a subscription owned by the device
func (s *subscriptionService) UpdateAlertRadius(ctx context.Context, deviceID, subscriptionID uuid.UUID, radiusKm float64) error {
	if radiusKm <= 0 || radiusKm > s.maxRadiusKm() {
		return ErrInvalidRadius
	}

	if err := s.checkOwnership(ctx, deviceID, subscriptionID); err != nil {
		return err
	}

	if err := s.subscriptionRepo.UpdateAlertRadius(ctx, subscriptionID, radiusKm); err != nil {
		return errors.Wrap(err, "failed to update alert radius")
	}

	return nil
}

// SetSubscriptionActive activates or deactivates a subscription owned by the device
func (s *subscriptionService) SetSubscriptionActive(ctx context.Context, deviceID, subscriptionID uuid.UUID, isActive bool) error {
	if err := s.checkOwnership(ctx, deviceID, subscriptionID); err != nil {
		return err
	}

	if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, subscriptionID, isActive); err != nil {
		return errors.Wrap(err, "failed to update subscription status")
	}

	return nil
}

// DeleteSubscription removes a subscription owned by the device (soft delete)
func (s *subscriptionService) DeleteSubscription(ctx context.Context, deviceID, subscriptionID uuid.UUID) error {
	if err := s.checkOwnership(ctx, deviceID, subscriptionID); err != nil {
		return err
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// checkOwnership verifies the subscription exists and belongs to the device.
func (s *subscriptionService) checkOwnership(ctx context.Context, deviceID, subscriptionID uuid.UUID) error {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to find subscription")
	}

	if subscription.DeviceID != deviceID {
		return domainerrors.ErrSubscriptionOwnershipViolation
	}

	return nil
}

func (s *subscriptionService) defaultRadiusKm() float64 {
	if s.config.Sighting != nil && s.config.Sighting.DefaultRadiusKm > 0 {
		return s.config.Sighting.DefaultRadiusKm
	}

	return defaultAlertRadiusKm
}

func (s *subscriptionService) maxRadiusKm() float64 {
	if s.config.Sighting != nil && s.config.Sighting.MaxRadiusKm > 0 {
		return s.config.Sighting.MaxRadiusKm
	}

	return maxAlertRadiusKm
}

func (s *subscriptionService) subscriptionsLimit() int {
	if s.config.Sighting != nil && s.config.Sighting.MaxSubscriptionsPerDevice > 0 {
		return s.config.Sighting.MaxSubscriptionsPerDevice
	}

	return defaultSubscriptionsLimit
}
