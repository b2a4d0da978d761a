package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WitnessDeviceModel is the GORM-specific struct for the 'witness_devices' table.
// It represents a client device registered for sighting alerts.
type WitnessDeviceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceKey     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FCMToken      string    `gorm:"type:varchar(255);not null"`
	Platform      string    `gorm:"type:varchar(50);not null"`
	LastLatitude  *float64  `gorm:"type:decimal(10,8)"`
	LastLongitude *float64  `gorm:"type:decimal(11,8)"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WitnessDeviceModel) TableName() string {
	return "witness_devices"
}
