package model

import (
	"time"

	"github.com/google/uuid"
)

// SightingAlertModel is the GORM-specific struct for the 'sighting_alerts' table.
// It represents a log entry for a single directional alert sent to a device.
type SightingAlertModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SightingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DistanceKm   float64   `gorm:"type:decimal(8,3);not null"`
	Bearing      float64   `gorm:"type:decimal(6,3);not null"`
	Cardinal     string    `gorm:"type:varchar(2);not null"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SightingAlertModel) TableName() string {
	return "sighting_alerts"
}
