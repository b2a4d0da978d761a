// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertSubscription represents a device's standing request to be alerted
// about sightings within a radius of a fixed point.
type AlertSubscription struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	DeviceID  uuid.UUID `json:"device_id"`  // The device that owns this subscription.
	Label     string    `json:"label"`      // A user-defined label, e.g., "Home", "Observatory".
	Latitude  float64   `json:"latitude"`   // The geographic latitude of the zone center.
	Longitude float64   `json:"longitude"`  // The geographic longitude of the zone center.
	RadiusKm  float64   `json:"radius_km"`  // The alert radius in kilometers.
	IsActive  bool      `json:"is_active"`  // Indicates if this subscription is active.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the subscription was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// SubscriberDevice bundles a matched subscription with its owning device so the
// alert pipeline can compute guidance and push in one pass without extra lookups.
type SubscriberDevice struct {
	Subscription AlertSubscription `json:"subscription"` // The subscription whose zone covers the sighting.
	DeviceID     uuid.UUID         `json:"device_id"`    // The owning device's ID.
	FCMToken     string            `json:"fcm_token"`    // The device's current FCM registration token.
	Latitude     float64           `json:"latitude"`     // Reference latitude for guidance (the zone center).
	Longitude    float64           `json:"longitude"`    // Reference longitude for guidance (the zone center).
}
