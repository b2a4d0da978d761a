// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SightingStatus is the lifecycle state of a reported sighting.
type SightingStatus string

const (
	// SightingStatusActive means the sighting is recent enough to alert on
	// and to serve guidance toward.
	SightingStatusActive SightingStatus = "active"
	// SightingStatusExpired means the sighting aged past its TTL and is kept
	// for history only.
	SightingStatusExpired SightingStatus = "expired"
)

// Sighting is a witness report of something seen in the sky, anchored at the
// witness position with the device orientation captured at report time.
type Sighting struct {
	ID               uuid.UUID      `json:"id"`                         // The Global Unique Identifier (GUID) for the sighting.
	ReporterDeviceID uuid.UUID      `json:"reporter_device_id"`         // The device that reported the sighting.
	Latitude         float64        `json:"latitude"`                   // The geographic latitude of the witness at report time.
	Longitude        float64        `json:"longitude"`                  // The geographic longitude of the witness at report time.
	AltitudeM        *float64       `json:"altitude_m,omitempty"`       // Optional witness altitude in meters.
	ObservedHeading  *float64       `json:"observed_heading,omitempty"` // Optional device compass heading toward the object (degrees).
	ObservedPitch    *float64       `json:"observed_pitch,omitempty"`   // Optional device pitch toward the object (degrees above horizon).
	Description      string         `json:"description"`                // Free-form witness description.
	Status           SightingStatus `json:"status"`                     // Lifecycle state (active, expired).
	ReportedAt       time.Time      `json:"reported_at"`                // When the witness reported it.
	ExpiresAt        time.Time      `json:"expires_at"`                 // When the sighting stops being alertable.
	CreatedAt        time.Time      `json:"created_at"`                 // Timestamp of when this record was created.
	UpdatedAt        time.Time      `json:"updated_at"`                 // Timestamp of the last modification.
}

// IsActive reports whether the sighting is still alertable at the given time.
func (s *Sighting) IsActive(now time.Time) bool {
	return s.Status == SightingStatusActive && now.Before(s.ExpiresAt)
}
