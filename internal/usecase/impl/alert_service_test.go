package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"skywitness/config"
	"skywitness/internal/domain/constants"
	"skywitness/internal/domain/entity"
	"skywitness/internal/domain/service"
	mockRepo "skywitness/internal/mocks/repository"
	mockSvc "skywitness/internal/mocks/service"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceMocks struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	alertRepo        *mockRepo.MockAlertRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func newAlertService(t *testing.T, cfg *config.Config) (usecase.AlertUsecase, *alertServiceMocks) {
	t.Helper()

	mocks := &alertServiceMocks{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		alertRepo:        mockRepo.NewMockAlertRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationSvc:  mockSvc.NewMockNotificationService(t),
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	svc := NewAlertService(AlertServiceParams{
		SubscriptionRepo: mocks.subscriptionRepo,
		AlertRepo:        mocks.alertRepo,
		DeviceRepo:       mocks.deviceRepo,
		NotificationSvc:  mocks.notificationSvc,
		Config:           cfg,
		Logger:           slog.Default(),
	})

	return svc, mocks
}

func testSightingEvent() *service.SightingEvent {
	now := time.Now().UTC()

	return &service.SightingEvent{
		SightingID:  uuid.New().String(),
		Latitude:    25.0,
		Longitude:   121.5,
		Description: "bright object moving north",
		ReportedAt:  now.Format(time.RFC3339),
		ExpiresAt:   now.Add(30 * time.Minute).Format(time.RFC3339),
	}
}

func testSubscriber(lat, lon, radiusKm float64) *entity.SubscriberDevice {
	return &entity.SubscriberDevice{
		Subscription: entity.AlertSubscription{
			ID:       uuid.New(),
			RadiusKm: radiusKm,
			IsActive: true,
		},
		DeviceID:  uuid.New(),
		FCMToken:  "token-" + uuid.New().String(),
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestAlertService_ProcessSightingEvent_FanOut(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	// Roughly 11 km south of the sighting, well inside the 20 km radius.
	subscriber := testSubscriber(24.9, 121.5, 20)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{subscriber}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{subscriber.FCMToken}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	mocks.alertRepo.EXPECT().
		CreateAlerts(ctx, mock.AnythingOfType("[]*entity.SightingAlert")).
		Run(func(_ context.Context, alerts []*entity.SightingAlert) {
			require.Len(t, alerts, 1)
			assert.Equal(t, subscriber.DeviceID, alerts[0].DeviceID)
			assert.Equal(t, constants.AlertStatusSent, alerts[0].Status)
			assert.InDelta(t, 11.1, alerts[0].DistanceKm, 0.5)
			assert.Equal(t, "N", alerts[0].Cardinal)
		}).
		Return(nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Zero(t, result.Deactivated)
}

func TestAlertService_ProcessSightingEvent_BodyUsesNearestSubscriber(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	// The repository returns the farther subscriber first; the push body must
	// still carry the nearest one's distance and sector.
	near := testSubscriber(24.9, 121.5, 20) // sighting ~11 km to its north
	far := testSubscriber(25.15, 121.5, 20) // sighting ~17 km to its south

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{far, near}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	var sentTokens []string
	var sentBody string
	mocks.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Run(func(_ context.Context, tokens []string, _ string, body string, _ map[string]string) {
			sentTokens = tokens
			sentBody = body
		}).
		Return(2, 0, nil, nil)

	mocks.alertRepo.EXPECT().
		CreateAlerts(ctx, mock.AnythingOfType("[]*entity.SightingAlert")).
		Run(func(_ context.Context, alerts []*entity.SightingAlert) {
			// Per-device records keep each subscriber's own figures.
			require.Len(t, alerts, 2)
			assert.Equal(t, near.DeviceID, alerts[0].DeviceID)
			assert.InDelta(t, 11.1, alerts[0].DistanceKm, 0.5)
			assert.Equal(t, far.DeviceID, alerts[1].DeviceID)
			assert.InDelta(t, 16.7, alerts[1].DistanceKm, 0.5)
		}).
		Return(nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, 2, result.Sent)

	require.Equal(t, []string{near.FCMToken, far.FCMToken}, sentTokens)
	assert.True(t, strings.HasPrefix(sentBody, "N 方向約 11.1"), "body %q must lead with the nearest figures", sentBody)
	assert.Contains(t, sentBody, event.Description)
}

func TestAlertService_ProcessSightingEvent_OutOfRadiusFiltered(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	// Hundreds of kilometers away with a 10 km radius; the coarse gate
	// drops it before any push goes out.
	farAway := testSubscriber(20.0, 121.5, 10)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{farAway}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Matched)
	assert.Zero(t, result.Sent)
}

func TestAlertService_ProcessSightingEvent_DegenerateBearingSkipped(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	// Zone center exactly at the sighting position: no direction to point at.
	coincident := testSubscriber(event.Latitude, event.Longitude, 20)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{coincident}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Matched)
}

func TestAlertService_ProcessSightingEvent_InvalidTokenDeactivatesDevice(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()
	subscriber := testSubscriber(24.9, 121.5, 20)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{subscriber}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{subscriber.FCMToken}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(0, 1, []string{subscriber.FCMToken}, nil)

	mocks.alertRepo.EXPECT().
		CreateAlerts(ctx, mock.AnythingOfType("[]*entity.SightingAlert")).
		Run(func(_ context.Context, alerts []*entity.SightingAlert) {
			require.Len(t, alerts, 1)
			assert.Equal(t, constants.AlertStatusFailed, alerts[0].Status)
			assert.NotEmpty(t, alerts[0].ErrorMessage)
		}).
		Return(nil)

	mocks.deviceRepo.EXPECT().
		DeactivateDevice(ctx, subscriber.DeviceID).
		Return(nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Deactivated)
}

func TestAlertService_ProcessSightingEvent_BatchSendError(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()
	subscriber := testSubscriber(24.9, 121.5, 20)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{subscriber}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return(nil, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestAlertService_ProcessSightingEvent_NoSubscribers(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{}, nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Matched)
	assert.Zero(t, result.Sent)
}

func TestAlertService_ProcessSightingEvent_NilEvent(t *testing.T) {
	svc, _ := newAlertService(t, nil)

	result, err := svc.ProcessSightingEvent(context.Background(), nil)
	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidSightingEvent, err)
}

func TestAlertService_ProcessSightingEvent_MalformedSightingID(t *testing.T) {
	svc, _ := newAlertService(t, nil)

	event := testSightingEvent()
	event.SightingID = "not-a-uuid"

	result, err := svc.ProcessSightingEvent(context.Background(), event)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidSightingEvent)
}

func TestAlertService_ProcessSightingEvent_OutOfRangePosition(t *testing.T) {
	svc, _ := newAlertService(t, nil)

	event := testSightingEvent()
	event.Latitude = 99.0

	result, err := svc.ProcessSightingEvent(context.Background(), event)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidSightingEvent)
}

func TestAlertService_ProcessSightingEvent_RepositoryError(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return(nil, errors.New("db error"))

	result, err := svc.ProcessSightingEvent(ctx, event)
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestAlertService_ProcessSightingEvent_RedeliverySkipsAlertedDevices(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	event := testSightingEvent()
	subscriber := testSubscriber(24.9, 121.5, 20)

	mocks.subscriptionRepo.EXPECT().
		FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude).
		Return([]*entity.SubscriberDevice{subscriber}, nil)

	mocks.alertRepo.EXPECT().
		FindAlertsBySighting(ctx, uuid.MustParse(event.SightingID)).
		Return([]*entity.SightingAlert{
			{
				ID:         uuid.New(),
				SightingID: uuid.MustParse(event.SightingID),
				DeviceID:   subscriber.DeviceID,
				Status:     constants.AlertStatusSent,
			},
		}, nil)

	result, err := svc.ProcessSightingEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Matched)
	assert.Zero(t, result.Sent)
}

func TestAlertService_GetDeviceAlerts(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()
	expected := []*entity.SightingAlert{
		{ID: uuid.New(), DeviceID: deviceID, Status: constants.AlertStatusSent},
	}

	mocks.alertRepo.EXPECT().
		FindAlertsByDevice(ctx, deviceID, 10).
		Return(expected, nil)

	alerts, err := svc.GetDeviceAlerts(ctx, deviceID, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestAlertService_GetDeviceAlerts_DefaultLimit(t *testing.T) {
	svc, mocks := newAlertService(t, nil)

	ctx := context.Background()
	deviceID := uuid.New()

	mocks.alertRepo.EXPECT().
		FindAlertsByDevice(ctx, deviceID, 50).
		Return([]*entity.SightingAlert{}, nil)

	alerts, err := svc.GetDeviceAlerts(ctx, deviceID, 0)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
