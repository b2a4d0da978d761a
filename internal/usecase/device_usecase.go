package usecase

import (
	"context"

	"skywitness/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceKey string `json:"device_key"`
	FCMToken  string `json:"fcm_token"`
	Platform  string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one by device key
	RegisterDevice(ctx context.Context, deviceInfo *DeviceInfo) (*entity.WitnessDevice, error)

	// AuthenticateDevice resolves an active device by its opaque device key
	AuthenticateDevice(ctx context.Context, deviceKey string) (*entity.WitnessDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// UpdateLastPosition records a device's most recently reported position
	UpdateLastPosition(ctx context.Context, deviceID uuid.UUID, lat, lon float64) error

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error
}
