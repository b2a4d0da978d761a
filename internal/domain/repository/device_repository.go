// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skywitness/internal/domain/entity"
	"skywitness/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to register a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for witness-device database operations.
type DeviceRepository interface {
	// CreateDevice persists a newly registered device.
	CreateDevice(ctx context.Context, device *entity.WitnessDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.WitnessDevice, error)

	// FindDeviceByKey retrieves a device by its opaque device key.
	FindDeviceByKey(ctx context.Context, deviceKey string) (*entity.WitnessDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// UpdateLastPosition records the device's most recently reported position.
	UpdateLastPosition(ctx context.Context, deviceID uuid.UUID, lat, lon float64) error

	// DeactivateDevice marks a device inactive, e.g. after FCM reports its token stale.
	DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error
}
