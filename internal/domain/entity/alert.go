// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SightingAlert is a log entry for one directional alert sent to one device
// about one sighting, recording the guidance figures that went out with it.
type SightingAlert struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the alert.
	SightingID   uuid.UUID `json:"sighting_id"`   // The sighting this alert belongs to.
	DeviceID     uuid.UUID `json:"device_id"`     // The device that received the alert.
	DistanceKm   float64   `json:"distance_km"`   // Great-circle distance sent in the alert.
	Bearing      float64   `json:"bearing"`       // True bearing sent in the alert.
	Cardinal     string    `json:"cardinal"`      // Compass sector label sent in the alert (e.g., "NE").
	Status       string    `json:"status"`        // Delivery status (sent, failed).
	ErrorMessage string    `json:"error_message"` // Error message if the delivery failed.
	SentAt       time.Time `json:"sent_at"`       // Timestamp of when the alert was sent.
}
