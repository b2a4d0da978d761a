package impl

import (
	"context"
	"testing"

	"skywitness/config"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/domain/repository"
	mockRepo "skywitness/internal/mocks/repository"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T, cfg *config.Config) (usecase.SubscriptionUsecase, *mockRepo.MockSubscriptionRepository) {
	t.Helper()

	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	if cfg == nil {
		cfg = &config.Config{}
	}
	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: mockSubRepo,
		Config:           cfg,
	})

	return svc, mockSubRepo
}

func TestSubscriptionService_CreateSubscription_DefaultRadius(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionsByDevice(ctx, deviceID).
		Return([]*entity.AlertSubscription{}, nil)

	mockSubRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.AlertSubscription")).
		Return(nil)

	subscription, err := svc.CreateSubscription(ctx, deviceID, &usecase.SubscriptionInput{
		Label:     "Home",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.Equal(t, deviceID, subscription.DeviceID)
	assert.Equal(t, "Home", subscription.Label)
	assert.Equal(t, 10.0, subscription.RadiusKm)
	assert.True(t, subscription.IsActive)
}

func TestSubscriptionService_CreateSubscription_ConfiguredDefaultRadius(t *testing.T) {
	cfg := &config.Config{
		Sighting: &config.SightingConfig{DefaultRadiusKm: 25},
	}
	svc, mockSubRepo := newSubscriptionService(t, cfg)

	ctx := context.Background()
	deviceID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionsByDevice(ctx, deviceID).
		Return([]*entity.AlertSubscription{}, nil)

	mockSubRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.AlertSubscription")).
		Return(nil)

	subscription, err := svc.CreateSubscription(ctx, deviceID, &usecase.SubscriptionInput{
		Label:     "Observatory",
		Latitude:  24.1477,
		Longitude: 120.6736,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, subscription.RadiusKm)
}

func TestSubscriptionService_CreateSubscription_InvalidCenter(t *testing.T) {
	svc, _ := newSubscriptionService(t, nil)

	subscription, err := svc.CreateSubscription(context.Background(), uuid.New(), &usecase.SubscriptionInput{
		Latitude:  25.0330,
		Longitude: 181.0,
	})
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestSubscriptionService_CreateSubscription_InvalidRadius(t *testing.T) {
	svc, _ := newSubscriptionService(t, nil)

	radius := 500.0
	subscription, err := svc.CreateSubscription(context.Background(), uuid.New(), &usecase.SubscriptionInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
		RadiusKm:  &radius,
	})
	assert.Nil(t, subscription)
	assert.Equal(t, ErrInvalidRadius, err)
}

func TestSubscriptionService_CreateSubscription_LimitExceeded(t *testing.T) {
	cfg := &config.Config{
		Sighting: &config.SightingConfig{MaxSubscriptionsPerDevice: 2},
	}
	svc, mockSubRepo := newSubscriptionService(t, cfg)

	ctx := context.Background()
	deviceID := uuid.New()
	existing := []*entity.AlertSubscription{
		{ID: uuid.New(), DeviceID: deviceID},
		{ID: uuid.New(), DeviceID: deviceID},
	}

	mockSubRepo.EXPECT().
		FindSubscriptionsByDevice(ctx, deviceID).
		Return(existing, nil)

	subscription, err := svc.CreateSubscription(ctx, deviceID, &usecase.SubscriptionInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	assert.Nil(t, subscription)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionLimitExceeded)
}

func TestSubscriptionService_GetDeviceSubscriptions(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()
	expected := []*entity.AlertSubscription{
		{ID: uuid.New(), DeviceID: deviceID, Label: "Home"},
	}

	mockSubRepo.EXPECT().
		FindSubscriptionsByDevice(ctx, deviceID).
		Return(expected, nil)

	subscriptions, err := svc.GetDeviceSubscriptions(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, expected, subscriptions)
}

func TestSubscriptionService_UpdateAlertRadius_Success(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(&entity.AlertSubscription{ID: subID, DeviceID: deviceID}, nil)

	mockSubRepo.EXPECT().
		UpdateAlertRadius(ctx, subID, 42.0).
		Return(nil)

	err := svc.UpdateAlertRadius(ctx, deviceID, subID, 42.0)
	require.NoError(t, err)
}

func TestSubscriptionService_UpdateAlertRadius_InvalidRadius(t *testing.T) {
	svc, _ := newSubscriptionService(t, nil)

	err := svc.UpdateAlertRadius(context.Background(), uuid.New(), uuid.New(), -1)
	assert.Equal(t, ErrInvalidRadius, err)
}

func TestSubscriptionService_UpdateAlertRadius_OwnershipViolation(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(&entity.AlertSubscription{ID: subID, DeviceID: uuid.New()}, nil)

	err := svc.UpdateAlertRadius(ctx, uuid.New(), subID, 42.0)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionOwnershipViolation)
}

func TestSubscriptionService_SetSubscriptionActive(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(&entity.AlertSubscription{ID: subID, DeviceID: deviceID, IsActive: true}, nil)

	mockSubRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, subID, false).
		Return(nil)

	err := svc.SetSubscriptionActive(ctx, deviceID, subID, false)
	require.NoError(t, err)
}

func TestSubscriptionService_DeleteSubscription_Success(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(&entity.AlertSubscription{ID: subID, DeviceID: deviceID}, nil)

	mockSubRepo.EXPECT().
		DeleteSubscription(ctx, subID).
		Return(nil)

	err := svc.DeleteSubscription(ctx, deviceID, subID)
	require.NoError(t, err)
}

func TestSubscriptionService_DeleteSubscription_NotFound(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(nil, repository.ErrSubscriptionNotFound)

	err := svc.DeleteSubscription(ctx, uuid.New(), subID)
	assert.Equal(t, ErrSubscriptionNotFound, err)
}

func TestSubscriptionService_DeleteSubscription_FindError(t *testing.T) {
	svc, mockSubRepo := newSubscriptionService(t, nil)

	ctx := context.Background()
	subID := uuid.New()

	mockSubRepo.EXPECT().
		FindSubscriptionByID(ctx, subID).
		Return(nil, errors.New("db error"))

	err := svc.DeleteSubscription(ctx, uuid.New(), subID)
	assert.Error(t, err)
	assert.NotEqual(t, ErrSubscriptionNotFound, err)
}
