// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skywitness/internal/domain/entity"
	"skywitness/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for alert-subscription database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new alert subscription.
	CreateSubscription(ctx context.Context, subscription *entity.AlertSubscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.AlertSubscription, error)

	// FindSubscriptionsByDevice retrieves all subscriptions for a specific device.
	FindSubscriptionsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.AlertSubscription, error)

	// UpdateSubscriptionStatus updates the active status of a subscription.
	UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, isActive bool) error

	// UpdateAlertRadius updates the alert radius for a subscription.
	UpdateAlertRadius(ctx context.Context, id uuid.UUID, radiusKm float64) error

	// DeleteSubscription removes a subscription by its ID (soft delete).
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// FindSubscriptionsWithinRadius performs a PostGIS geographic query to find all active
	// subscriptions whose watch circle contains the given sighting position.
	// Returns subscriptions joined with their owning active devices to avoid N+1 lookups.
	FindSubscriptionsWithinRadius(ctx context.Context, lat, lon float64) ([]*entity.SubscriberDevice, error)
}
