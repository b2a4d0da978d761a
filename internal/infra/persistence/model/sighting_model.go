package model

import (
	"time"

	"github.com/google/uuid"
)

// SightingModel is the GORM-specific struct for the 'sightings' table.
// It represents a witness report of something seen in the sky.
type SightingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReporterDeviceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude         float64   `gorm:"type:decimal(10,8);not null"`
	Longitude        float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	AltitudeM       *float64 `gorm:"type:decimal(8,2)"`
	ObservedHeading *float64 `gorm:"type:decimal(6,3)"`
	ObservedPitch   *float64 `gorm:"type:decimal(6,3)"`
	Description     string   `gorm:"type:text;not null"`
	Status          string   `gorm:"type:text;not null;default:'active';index"`
	ReportedAt      time.Time
	ExpiresAt       time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SightingModel) TableName() string {
	return "sightings"
}
