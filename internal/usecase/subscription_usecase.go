package usecase

import (
	"context"

	"skywitness/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionInput represents the input for creating or updating an alert subscription
type SubscriptionInput struct {
	Label     string   `json:"label"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km,omitempty"` // nil means use the configured default
}

// SubscriptionUsecase defines the interface for alert-subscription management use cases
type SubscriptionUsecase interface {
	// CreateSubscription creates an alert subscription for a device
	CreateSubscription(ctx context.Context, deviceID uuid.UUID, input *SubscriptionInput) (*entity.AlertSubscription, error)

	// GetDeviceSubscriptions retrieves all subscriptions for a device
	GetDeviceSubscriptions(ctx context.Context, deviceID uuid.UUID) ([]*entity.AlertSubscription, error)

	// UpdateAlertRadius updates the alert radius for a subscription owned by the device
	UpdateAlertRadius(ctx context.Context, deviceID, subscriptionID uuid.UUID, radiusKm float64) error

	// SetSubscriptionActive activates or deactivates a subscription owned by the device
	SetSubscriptionActive(ctx context.Context, deviceID, subscriptionID uuid.UUID, isActive bool) error

	// DeleteSubscription removes a subscription owned by the device (soft delete)
	DeleteSubscription(ctx context.Context, deviceID, subscriptionID uuid.UUID) error
}
