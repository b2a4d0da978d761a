package usecase

import (
	"context"

	"skywitness/internal/domain/entity"
	"skywitness/internal/domain/service"

	"github.com/google/uuid"
)

// AlertDispatchResult summarizes one fan-out pass for a sighting event
type AlertDispatchResult struct {
	Matched     int `json:"matched"`     // Subscriptions whose watch circle covered the sighting
	Sent        int `json:"sent"`        // Pushes accepted by FCM
	Failed      int `json:"failed"`      // Pushes rejected by FCM
	Deactivated int `json:"deactivated"` // Devices deactivated for stale tokens
}

// AlertUsecase defines the interface for the worker-side alert fan-out
type AlertUsecase interface {
	// ProcessSightingEvent fans a sighting out to every matching subscription:
	// computes per-subscriber guidance, pushes directional alerts, and records them
	ProcessSightingEvent(ctx context.Context, event *service.SightingEvent) (*AlertDispatchResult, error)

	// GetDeviceAlerts retrieves the most recent alerts delivered to a device
	GetDeviceAlerts(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.SightingAlert, error)
}
