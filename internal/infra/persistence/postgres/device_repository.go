// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a newly registered device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.WitnessDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceAlreadyExists.WrapMessage("missing required device information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.WitnessDevice, error) {
	var deviceM model.WitnessDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByKey retrieves a device by its opaque device key.
func (repo *deviceRepository) FindDeviceByKey(ctx context.Context, deviceKey string) (*entity.WitnessDevice, error) {
	var deviceM model.WitnessDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_key = ?", deviceKey).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by key")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WitnessDeviceModel{}).
		Where("id = ?", deviceID).
		Update("fcm_token", fcmToken)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateLastPosition records the device's most recently reported position.
func (repo *deviceRepository) UpdateLastPosition(ctx context.Context, deviceID uuid.UUID, lat, lon float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WitnessDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"last_latitude":  lat,
			"last_longitude": lon,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last position")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive, e.g. after FCM reports its token stale.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, deviceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WitnessDeviceModel{}).
		Where("id = ?", deviceID).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM WitnessDeviceModel to a domain WitnessDevice entity.
func toDeviceDomain(data *model.WitnessDeviceModel) *entity.WitnessDevice {
	if data == nil {
		return nil
	}

	return &entity.WitnessDevice{
		ID:            data.ID,
		DeviceKey:     data.DeviceKey,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		LastLatitude:  data.LastLatitude,
		LastLongitude: data.LastLongitude,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain WitnessDevice entity to a GORM WitnessDeviceModel.
func fromDeviceDomain(data *entity.WitnessDevice) *model.WitnessDeviceModel {
	if data == nil {
		return nil
	}

	return &model.WitnessDeviceModel{
		ID:            data.ID,
		DeviceKey:     data.DeviceKey,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		LastLatitude:  data.LastLatitude,
		LastLongitude: data.LastLongitude,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
