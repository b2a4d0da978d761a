package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertSubscriptionModel is the GORM-specific struct for the 'alert_subscriptions' table.
// It represents a device's standing request for alerts around a fixed point.
type AlertSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	// Note: center GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	RadiusKm  float64 `gorm:"type:decimal(8,3);not null"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AlertSubscriptionModel) TableName() string {
	return "alert_subscriptions"
}
