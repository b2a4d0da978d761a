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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new alert subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.AlertSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("invalid device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.AlertSubscription, error) {
	var subscriptionM model.AlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionsByDevice retrieves all subscriptions for a specific device (excluding soft-deleted).
func (repo *subscriptionRepository) FindSubscriptionsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.AlertSubscription, error) {
	var subscriptionModels []*model.AlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by device")
	}

	subscriptions := make([]*entity.AlertSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// UpdateSubscriptionStatus updates the active status of a subscription.
func (repo *subscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertSubscriptionModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// UpdateAlertRadius updates the alert radius for a subscription.
func (repo *subscriptionRepository) UpdateAlertRadius(ctx context.Context, id uuid.UUID, radiusKm float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertSubscriptionModel{}).
		Where("id = ?", id).
		Update("radius_km", radiusKm)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alert radius")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscription removes a subscription by its ID (soft delete).
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlertSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// subscriberDeviceRow is the scan target for the fan-out join query.
type subscriberDeviceRow struct {
	model.AlertSubscriptionModel
	DevID       uuid.UUID `gorm:"column:dev_id"`
	DevFCMToken string    `gorm:"column:dev_fcm_token"`
}

// FindSubscriptionsWithinRadius performs a PostGIS geographic query to find all active
// subscriptions whose watch circle contains the given sighting position.
func (repo *subscriptionRepository) FindSubscriptionsWithinRadius(ctx context.Context, lat, lon float64) ([]*entity.SubscriberDevice, error) {
	var rows []*subscriberDeviceRow

	// Use PostGIS ST_DWithin for efficient geographic queries.
	// Each subscription has its own radius, so the distance bound is per row.
	// The join pulls the owning device in the same pass to avoid N+1 lookups.
	query := `
		SELECT s.*, d.id AS dev_id, d.fcm_token AS dev_fcm_token
		FROM alert_subscriptions s
		JOIN witness_devices d ON d.id = s.device_id
		WHERE s.is_active = true
		  AND s.deleted_at IS NULL
		  AND d.is_active = true
		  AND d.deleted_at IS NULL
		  AND ST_DWithin(
		    s.center,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    s.radius_km * 1000
		  )
		ORDER BY s.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lon, lat).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions within radius")
	}

	subscribers := make([]*entity.SubscriberDevice, 0, len(rows))
	for _, row := range rows {
		subscribers = append(subscribers, &entity.SubscriberDevice{
			Subscription: *toSubscriptionDomain(&row.AlertSubscriptionModel),
			DeviceID:     row.DevID,
			FCMToken:     row.DevFCMToken,
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
		})
	}

	return subscribers, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM AlertSubscriptionModel to a domain AlertSubscription entity.
func toSubscriptionDomain(data *model.AlertSubscriptionModel) *entity.AlertSubscription {
	if data == nil {
		return nil
	}

	return &entity.AlertSubscription{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Label:     data.Label,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		RadiusKm:  data.RadiusKm,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain AlertSubscription entity to a GORM AlertSubscriptionModel.
func fromSubscriptionDomain(data *entity.AlertSubscription) *model.AlertSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.AlertSubscriptionModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Label:     data.Label,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		RadiusKm:  data.RadiusKm,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
