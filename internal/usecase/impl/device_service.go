package impl

import (
	"context"
	"time"

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
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrMissingDeviceKey is returned when registration lacks a device key
	ErrMissingDeviceKey = errors.New("device key is required")
	// ErrMissingFCMToken is returned when registration lacks an FCM token
	ErrMissingFCMToken = errors.New("fcm token is required")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes an existing one by device key
func (s *deviceService) RegisterDevice(ctx context.Context, deviceInfo *usecase.DeviceInfo) (*entity.WitnessDevice, error) {
	if deviceInfo == nil || deviceInfo.DeviceKey == "" {
		return nil, ErrMissingDeviceKey
	}
	if deviceInfo.FCMToken == "" {
		return nil, ErrMissingFCMToken
	}

	// Re-registration with a known key refreshes the FCM token instead of
	// creating a duplicate row.
	existing, err := s.deviceRepo.FindDeviceByKey(ctx, deviceInfo.DeviceKey)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to find device by key")
	}
	if existing != nil {
		if existing.FCMToken != deviceInfo.FCMToken {
			if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}
			existing.FCMToken = deviceInfo.FCMToken
			existing.UpdatedAt = time.Now()
		}

		return existing, nil
	}

	device := &entity.WitnessDevice{
		ID:        uuid.New(),
		DeviceKey: deviceInfo.DeviceKey,
		FCMToken:  deviceInfo.FCMToken,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// AuthenticateDevice resolves an active device by its opaque device key
func (s *deviceService) AuthenticateDevice(ctx context.Context, deviceKey string) (*entity.WitnessDevice, error) {
	if deviceKey == "" {
		return nil, domainerrors.ErrDeviceKeyInvalid
	}

	device, err := s.deviceRepo.FindDeviceByKey(ctx, deviceKey)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceKeyInvalid
		}

		return nil, errors.Wrap(err, "failed to find device by key")
	}

	if !device.IsActive {
		return nil, domainerrors.ErrDeviceKeyInvalid
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return ErrMissingFCMToken
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// UpdateLastPosition records a device's most recently reported position
func (s *deviceService) UpdateLastPosition(ctx context.Context, deviceID uuid.UUID, lat, lon float64) error {
	position := navigation.GeoCoordinate{Latitude: lat, Longitude: lon}
	if err := position.Validate(); err != nil {
		return domainerrors.ErrInvalidCoordinate
	}

	if err := s.deviceRepo.UpdateLastPosition(ctx, deviceID, lat, lon); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to update last position")
	}

	return nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error {
	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
