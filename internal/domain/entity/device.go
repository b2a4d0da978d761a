// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WitnessDevice represents a client device registered for sighting alerts.
// Identity (user accounts) lives in the upstream account service; this
// service only knows devices by their opaque device key.
type WitnessDevice struct {
	ID            uuid.UUID `json:"id"`                       // The Global Unique Identifier (GUID) for the device.
	DeviceKey     string    `json:"-"`                        // Opaque client credential; never serialized.
	FCMToken      string    `json:"fcm_token"`                // Firebase Cloud Messaging token for push notifications.
	Platform      string    `json:"platform"`                 // Device platform (ios, android).
	LastLatitude  *float64  `json:"last_latitude,omitempty"`  // Last reported latitude, if the device shares position.
	LastLongitude *float64  `json:"last_longitude,omitempty"` // Last reported longitude, if the device shares position.
	IsActive      bool      `json:"is_active"`                // Indicates if this device is active for alerts.
	CreatedAt     time.Time `json:"created_at"`               // Timestamp of when this device was registered.
	UpdatedAt     time.Time `json:"updated_at"`               // Timestamp of the last modification.
}
