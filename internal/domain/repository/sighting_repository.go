// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"skywitness/internal/domain/entity"
	"skywitness/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for sighting persistence.
var (
	// ErrSightingNotFound is returned when a sighting is not found.
	ErrSightingNotFound = errors.New("sighting not found")
)

// SightingRepository defines the interface for sighting-related database operations.
type SightingRepository interface {
	// CreateSighting persists a new sighting report.
	CreateSighting(ctx context.Context, sighting *entity.Sighting) error

	// FindSightingByID retrieves a sighting by its unique ID.
	FindSightingByID(ctx context.Context, id uuid.UUID) (*entity.Sighting, error)

	// FindActiveSightings retrieves all sightings that have not yet expired at the given time.
	FindActiveSightings(ctx context.Context, now time.Time) ([]*entity.Sighting, error)

	// CountActiveSightingsByDevice counts unexpired sightings reported by the given device.
	CountActiveSightingsByDevice(ctx context.Context, deviceID uuid.UUID, now time.Time) (int64, error)

	// FindRecentSightingsNear performs a PostGIS geographic query for active sightings
	// within radiusKm of the given point, newest first.
	FindRecentSightingsNear(ctx context.Context, lat, lon, radiusKm float64, now time.Time) ([]*entity.Sighting, error)

	// ExpireSightings marks all sightings whose expiry has passed as expired.
	// Returns the number of rows affected.
	ExpireSightings(ctx context.Context, now time.Time) (int64, error)
}
