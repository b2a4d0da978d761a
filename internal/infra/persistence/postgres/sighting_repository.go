// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	"skywitness/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sightingRepository implements the repository.SightingRepository interface.
type sightingRepository struct {
	db *gorm.DB
}

// NewSightingRepository is the constructor for sightingRepository.
func NewSightingRepository(db *gorm.DB) repository.SightingRepository {
	return &sightingRepository{
		db: db,
	}
}

// CreateSighting persists a new sighting report.
func (repo *sightingRepository) CreateSighting(ctx context.Context, sighting *entity.Sighting) error {
	sightingM := fromSightingDomain(sighting)

	if err := repo.db.WithContext(ctx).Create(sightingM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSightingCreationFailed.WrapMessage("invalid reporter device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSightingCreationFailed.WrapMessage("missing required sighting information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sighting")
	}

	// Update the entity with generated values
	sighting.ID = sightingM.ID
	sighting.CreatedAt = sightingM.CreatedAt
	sighting.UpdatedAt = sightingM.UpdatedAt

	return nil
}

// FindSightingByID retrieves a sighting by its unique ID.
func (repo *sightingRepository) FindSightingByID(ctx context.Context, id uuid.UUID) (*entity.Sighting, error) {
	var sightingM model.SightingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sightingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSightingNotFound
		}

		return nil, errors.Wrap(err, "failed to find sighting by ID")
	}

	return toSightingDomain(&sightingM), nil
}

// FindActiveSightings retrieves all sightings that have not yet expired at the given time.
func (repo *sightingRepository) FindActiveSightings(ctx context.Context, now time.Time) ([]*entity.Sighting, error) {
	var sightingModels []*model.SightingModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND expires_at > ?", string(entity.SightingStatusActive), now).
		Order("reported_at DESC").
		Find(&sightingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active sightings")
	}

	sightings := make([]*entity.Sighting, 0, len(sightingModels))
	for _, sightingM := range sightingModels {
		sightings = append(sightings, toSightingDomain(sightingM))
	}

	return sightings, nil
}

// CountActiveSightingsByDevice counts unexpired sightings reported by the given device.
func (repo *sightingRepository) CountActiveSightingsByDevice(ctx context.Context, deviceID uuid.UUID, now time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SightingModel{}).
		Where("reporter_device_id = ? AND status = ? AND expires_at > ?", deviceID, string(entity.SightingStatusActive), now).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active sightings for device")
	}

	return count, nil
}

// FindRecentSightingsNear performs a PostGIS geographic query for active sightings
// within radiusKm of the given point, newest first.
func (repo *sightingRepository) FindRecentSightingsNear(ctx context.Context, lat, lon, radiusKm float64, now time.Time) ([]*entity.Sighting, error) {
	var sightingModels []*model.SightingModel

	// Use PostGIS ST_DWithin for efficient geographic queries.
	// The location column is geography, so the distance unit is meters.
	query := `
		SELECT s.*
		FROM sightings s
		WHERE s.status = 'active'
		  AND s.expires_at > ?
		  AND ST_DWithin(
		    s.location,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    ?
		  )
		ORDER BY s.reported_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, now, lon, lat, radiusKm*1000).
		Scan(&sightingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent sightings near point")
	}

	sightings := make([]*entity.Sighting, 0, len(sightingModels))
	for _, sightingM := range sightingModels {
		sightings = append(sightings, toSightingDomain(sightingM))
	}

	return sightings, nil
}

// ExpireSightings marks all sightings whose expiry has passed as expired.
func (repo *sightingRepository) ExpireSightings(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SightingModel{}).
		Where("status = ? AND expires_at <= ?", string(entity.SightingStatusActive), now).
		Update("status", string(entity.SightingStatusExpired))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire sightings")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSightingDomain converts a GORM SightingModel to a domain Sighting entity.
func toSightingDomain(data *model.SightingModel) *entity.Sighting {
	if data == nil {
		return nil
	}

	return &entity.Sighting{
		ID:               data.ID,
		ReporterDeviceID: data.ReporterDeviceID,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		AltitudeM:        data.AltitudeM,
		ObservedHeading:  data.ObservedHeading,
		ObservedPitch:    data.ObservedPitch,
		Description:      data.Description,
		Status:           entity.SightingStatus(data.Status),
		ReportedAt:       data.ReportedAt,
		ExpiresAt:        data.ExpiresAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromSightingDomain converts a domain Sighting entity to a GORM SightingModel.
func fromSightingDomain(data *entity.Sighting) *model.SightingModel {
	if data == nil {
		return nil
	}

	return &model.SightingModel{
		ID:               data.ID,
		ReporterDeviceID: data.ReporterDeviceID,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		AltitudeM:        data.AltitudeM,
		ObservedHeading:  data.ObservedHeading,
		ObservedPitch:    data.ObservedPitch,
		Description:      data.Description,
		Status:           string(data.Status),
		ReportedAt:       data.ReportedAt,
		ExpiresAt:        data.ExpiresAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
