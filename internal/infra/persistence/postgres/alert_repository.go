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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlerts persists a batch of alert dispatch records in one statement.
func (repo *alertRepository) CreateAlerts(ctx context.Context, alerts []*entity.SightingAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	alertModels := make([]*model.SightingAlertModel, 0, len(alerts))
	for _, alert := range alerts {
		alertModels = append(alertModels, fromAlertDomain(alert))
	}

	if err := repo.db.WithContext(ctx).Create(&alertModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid sighting or device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alerts")
	}

	// Update the entities with generated values
	for i, alertM := range alertModels {
		alerts[i].ID = alertM.ID
	}

	return nil
}

// FindAlertsBySighting retrieves all alerts dispatched for a sighting.
func (repo *alertRepository) FindAlertsBySighting(ctx context.Context, sightingID uuid.UUID) ([]*entity.SightingAlert, error) {
	var alertModels []*model.SightingAlertModel

	if err := repo.db.WithContext(ctx).
		Where("sighting_id = ?", sightingID).
		Order("sent_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by sighting")
	}

	return toAlertDomainList(alertModels), nil
}

// FindAlertsByDevice retrieves recent alerts delivered to a device, newest first.
func (repo *alertRepository) FindAlertsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.SightingAlert, error) {
	var alertModels []*model.SightingAlertModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by device")
	}

	return toAlertDomainList(alertModels), nil
}

// --- Mapper Functions ---

func toAlertDomainList(alertModels []*model.SightingAlertModel) []*entity.SightingAlert {
	alerts := make([]*entity.SightingAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts
}

// toAlertDomain converts a GORM SightingAlertModel to a domain SightingAlert entity.
func toAlertDomain(data *model.SightingAlertModel) *entity.SightingAlert {
	if data == nil {
		return nil
	}

	return &entity.SightingAlert{
		ID:           data.ID,
		SightingID:   data.SightingID,
		DeviceID:     data.DeviceID,
		DistanceKm:   data.DistanceKm,
		Bearing:      data.Bearing,
		Cardinal:     data.Cardinal,
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

// fromAlertDomain converts a domain SightingAlert entity to a GORM SightingAlertModel.
func fromAlertDomain(data *entity.SightingAlert) *model.SightingAlertModel {
	if data == nil {
		return nil
	}

	return &model.SightingAlertModel{
		ID:           data.ID,
		SightingID:   data.SightingID,
		DeviceID:     data.DeviceID,
		DistanceKm:   data.DistanceKm,
		Bearing:      data.Bearing,
		Cardinal:     data.Cardinal,
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
