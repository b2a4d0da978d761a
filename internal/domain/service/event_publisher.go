package service

import (
	"context"
)

// SightingEvent represents a new sighting to be fanned out by the alert worker
type SightingEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	SightingID  string   `json:"sighting_id"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AltitudeM   *float64 `json:"altitude_m,omitempty"`
	Description string   `json:"description"`
	ReportedAt  string   `json:"reported_at"` // RFC 3339
	ExpiresAt   string   `json:"expires_at"`  // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSightingEvent publishes a sighting event for async alert fan-out
	PublishSightingEvent(ctx context.Context, event *SightingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
