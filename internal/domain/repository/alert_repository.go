// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skywitness/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertRepository defines the interface for sighting-alert database operations.
type AlertRepository interface {
	// CreateAlerts persists a batch of alert dispatch records in one statement.
	CreateAlerts(ctx context.Context, alerts []*entity.SightingAlert) error

	// FindAlertsBySighting retrieves all alerts dispatched for a sighting.
	FindAlertsBySighting(ctx context.Context, sightingID uuid.UUID) ([]*entity.SightingAlert, error)

	// FindAlertsByDevice retrieves recent alerts delivered to a device, newest first.
	FindAlertsByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.SightingAlert, error)
}
