package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"skywitness/config"
	deliverycontext "skywitness/internal/delivery/context"
	"skywitness/internal/domain/constants"
	"skywitness/internal/domain/entity"
	"skywitness/internal/domain/repository"
	"skywitness/internal/domain/service"
	"skywitness/internal/navigation"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrInvalidSightingEvent is returned when a sighting event misses required fields
	ErrInvalidSightingEvent = errors.New("invalid sighting event")
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	// defaultPreFilterMultiplier widens the coarse distance gate so borderline
	// subscribers are never dropped before the exact great-circle check.
	defaultPreFilterMultiplier = 1.3
)

type alertService struct {
	subscriptionRepo repository.SubscriptionRepository
	alertRepo        repository.AlertRepository
	deviceRepo       repository.DeviceRepository
	notificationSvc  service.NotificationService
	config           *config.Config
	logger           *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	AlertRepo        repository.AlertRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		subscriptionRepo: params.SubscriptionRepo,
		alertRepo:        params.AlertRepo,
		deviceRepo:       params.DeviceRepo,
		notificationSvc:  params.NotificationSvc,
		config:           params.Config,
		logger:           params.Logger,
	}
}

// pendingAlert pairs a matched subscriber with its computed guidance figures.
type pendingAlert struct {
	subscriber *entity.SubscriberDevice
	distanceKm float64
	bearing    float64
	cardinal   string
}

// ProcessSightingEvent fans a sighting out to every matching subscription.
func (s *alertService) ProcessSightingEvent(ctx context.Context, event *service.SightingEvent) (*usecase.AlertDispatchResult, error) {
	if event == nil || event.SightingID == "" {
		return nil, ErrInvalidSightingEvent
	}

	sightingID, err := uuid.Parse(event.SightingID)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSightingEvent, "malformed sighting id")
	}

	sightingPos := navigation.GeoCoordinate{Latitude: event.Latitude, Longitude: event.Longitude}
	if err := sightingPos.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidSightingEvent, "out-of-range sighting position")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	// PostGIS narrows the candidate set; the exact great-circle check below is
	// authoritative for each subscriber's own radius.
	subscribers, err := s.subscriptionRepo.FindSubscriptionsWithinRadius(ctx, event.Latitude, event.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions within radius")
	}

	result := &usecase.AlertDispatchResult{}
	if len(subscribers) == 0 {
		return result, nil
	}

	// Pub/Sub redelivers on failure; devices already alerted for this
	// sighting are skipped instead of pushed twice.
	alreadyAlerted, err := s.alertedDevices(ctx, sightingID, logger)
	if err == nil && len(alreadyAlerted) > 0 {
		subscribers = filterAlerted(subscribers, alreadyAlerted)
	}

	pending := s.computeGuidance(sightingPos, subscribers, logger)
	result.Matched = len(pending)
	if len(pending) == 0 {
		return result, nil
	}

	sent, failed, deactivated := s.dispatch(ctx, sightingID, event, pending, logger)
	result.Sent = sent
	result.Failed = failed
	result.Deactivated = deactivated

	return result, nil
}

// GetDeviceAlerts retrieves the most recent alerts delivered to a device
func (s *alertService) GetDeviceAlerts(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.SightingAlert, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	alerts, err := s.alertRepo.FindAlertsByDevice(ctx, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by device")
	}

	return alerts, nil
}

// alertedDevices returns the devices already recorded for this sighting.
func (s *alertService) alertedDevices(ctx context.Context, sightingID uuid.UUID, logger *slog.Logger) (map[uuid.UUID]struct{}, error) {
	existing, err := s.alertRepo.FindAlertsBySighting(ctx, sightingID)
	if err != nil {
		logger.Warn("failed to load existing alerts for dedup",
			slog.String("sighting_id", sightingID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	alerted := make(map[uuid.UUID]struct{}, len(existing))
	for _, alert := range existing {
		if alert.Status == constants.AlertStatusSent {
			alerted[alert.DeviceID] = struct{}{}
		}
	}

	return alerted, nil
}

func filterAlerted(subscribers []*entity.SubscriberDevice, alerted map[uuid.UUID]struct{}) []*entity.SubscriberDevice {
	remaining := subscribers[:0]
	for _, subscriber := range subscribers {
		if _, ok := alerted[subscriber.DeviceID]; !ok {
			remaining = append(remaining, subscriber)
		}
	}

	return remaining
}

// computeGuidance runs the coarse pre-filter and the exact per-subscriber solution.
func (s *alertService) computeGuidance(sightingPos navigation.GeoCoordinate, subscribers []*entity.SubscriberDevice, logger *slog.Logger) []*pendingAlert {
	sightingPoint := orb.Point{sightingPos.Longitude, sightingPos.Latitude}

	pending := make([]*pendingAlert, 0, len(subscribers))
	for _, subscriber := range subscribers {
		// Coarse spherical gate before the exact haversine pass.
		coarseKm := geo.Distance(sightingPoint, orb.Point{subscriber.Longitude, subscriber.Latitude}) / 1000
		if coarseKm > subscriber.Subscription.RadiusKm*s.preFilterMultiplier() {
			continue
		}

		center := navigation.GeoCoordinate{Latitude: subscriber.Latitude, Longitude: subscriber.Longitude}
		bearing, err := navigation.ComputeBearing(center, sightingPos)
		if err != nil {
			// A sighting exactly on the zone center has no direction to point
			// at; skip the directional alert rather than send a wrong one.
			logger.Warn("skipping subscriber with degenerate bearing",
				slog.String("subscription_id", subscriber.Subscription.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		if bearing.DistanceKm > subscriber.Subscription.RadiusKm {
			continue
		}

		pending = append(pending, &pendingAlert{
			subscriber: subscriber,
			distanceKm: bearing.DistanceKm,
			bearing:    bearing.TrueBearing,
			cardinal:   bearing.Cardinal.String(),
		})
	}

	// Nearest first: dispatch renders the shared push body from the head of
	// each batch.
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].distanceKm < pending[j].distanceKm
	})

	return pending
}

// dispatch pushes the directional alerts in FCM-sized batches and records them.
func (s *alertService) dispatch(ctx context.Context, sightingID uuid.UUID, event *service.SightingEvent, pending []*pendingAlert, logger *slog.Logger) (sent, failed, deactivated int) {
	title := "附近有新的目擊回報"

	var (
		invalidTokens []string
		alertRecords  []*entity.SightingAlert
	)
	tokenOwner := make(map[string]*pendingAlert, len(pending))
	for _, p := range pending {
		tokenOwner[p.subscriber.FCMToken] = p
	}

	for i := 0; i < len(pending); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[i:end]

		tokens := make([]string, 0, len(batch))
		for _, p := range batch {
			tokens = append(tokens, p.subscriber.FCMToken)
		}

		// The push body is shared across the batch, so it renders the figures
		// of the batch's nearest subscriber; pending is sorted nearest first.
		// Each device's own distance and sector land in its alert record, and
		// the data payload carries the sighting position for clients that
		// recompute locally.
		successCount, failureCount, batchInvalid, err := s.notificationSvc.SendBatchNotification(
			ctx,
			tokens,
			title,
			s.alertBody(batch[0], event),
			s.alertData(sightingID, event),
		)
		if err != nil {
			logger.Error("failed to send alert batch",
				slog.String("sighting_id", sightingID.String()),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)

		for _, p := range batch {
			status := constants.AlertStatusSent
			errorMsg := ""
			for _, invalid := range batchInvalid {
				if p.subscriber.FCMToken == invalid {
					status = constants.AlertStatusFailed
					errorMsg = "invalid or unregistered token"

					break
				}
			}

			alertRecords = append(alertRecords, &entity.SightingAlert{
				ID:           uuid.New(),
				SightingID:   sightingID,
				DeviceID:     p.subscriber.DeviceID,
				DistanceKm:   p.distanceKm,
				Bearing:      p.bearing,
				Cardinal:     p.cardinal,
				Status:       status,
				ErrorMessage: errorMsg,
				SentAt:       time.Now(),
			})
		}
	}

	if len(alertRecords) > 0 {
		if err := s.alertRepo.CreateAlerts(ctx, alertRecords); err != nil {
			// Recording is best-effort; the pushes are already out.
			logger.Error("failed to record sighting alerts",
				slog.String("sighting_id", sightingID.String()),
				slog.Any("error", err),
			)
		}
	}

	// Deactivate devices whose tokens FCM reports as gone.
	for _, token := range invalidTokens {
		p, ok := tokenOwner[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeactivateDevice(ctx, p.subscriber.DeviceID); err != nil {
			logger.Warn("failed to deactivate device with stale token",
				slog.String("device_id", p.subscriber.DeviceID.String()),
				slog.Any("error", err),
			)

			continue
		}
		deactivated++
	}

	return sent, failed, deactivated
}

// alertBody renders the push body with the nearest batch member's guidance.
func (s *alertService) alertBody(nearest *pendingAlert, event *service.SightingEvent) string {
	body := fmt.Sprintf("%s 方向約 %.1f 公里處：%s", nearest.cardinal, nearest.distanceKm, event.Description)

	return body
}

// alertData builds the data payload shared by every push in the fan-out.
func (s *alertService) alertData(sightingID uuid.UUID, event *service.SightingEvent) map[string]string {
	return map[string]string{
		"sighting_id": sightingID.String(),
		"latitude":    fmt.Sprintf("%f", event.Latitude),
		"longitude":   fmt.Sprintf("%f", event.Longitude),
		"reported_at": event.ReportedAt,
		"expires_at":  event.ExpiresAt,
	}
}

func (s *alertService) preFilterMultiplier() float64 {
	if s.config.Guidance != nil && s.config.Guidance.PreFilterRadiusMultiplier > 0 {
		return s.config.Guidance.PreFilterRadiusMultiplier
	}

	return defaultPreFilterMultiplier
}
