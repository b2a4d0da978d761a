package usecase

import (
	"context"
	"time"

	"skywitness/internal/domain/entity"

	"github.com/google/uuid"
)

// SightingReport represents the witness input for a new sighting
type SightingReport struct {
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	AltitudeM       *float64       `json:"altitude_m,omitempty"`
	ObservedHeading *float64       `json:"observed_heading,omitempty"`
	ObservedPitch   *float64       `json:"observed_pitch,omitempty"`
	Description     string         `json:"description"`
	TTL             *time.Duration `json:"-"` // Optional override for the sighting lifetime
}

// SightingUsecase defines the interface for sighting management use cases
type SightingUsecase interface {
	// ReportSighting records a new sighting and publishes it for alert fan-out
	ReportSighting(ctx context.Context, reporterDeviceID uuid.UUID, report *SightingReport) (*entity.Sighting, error)

	// GetSighting retrieves a sighting by its ID
	GetSighting(ctx context.Context, id uuid.UUID) (*entity.Sighting, error)

	// ListNearbySightings retrieves active sightings within radiusKm of a point
	ListNearbySightings(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Sighting, error)

	// ExpireSightings marks all overdue sightings as expired and returns the count
	ExpireSightings(ctx context.Context) (int64, error)
}
