package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"skywitness/config"
	"skywitness/internal/delivery"
	"skywitness/internal/delivery/http"
	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/router/handler"
	"skywitness/internal/domain/service"
	logs "skywitness/internal/infra/log"
	"skywitness/internal/infra/notification"
	"skywitness/internal/infra/persistence/postgres"
	"skywitness/internal/infra/pubsub"
	"skywitness/internal/infra/qrcode"
	"skywitness/internal/infra/share"
	"skywitness/internal/usecase"
	"skywitness/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startExpirySweeper,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSightingRepository,
			postgres.NewDeviceRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			share.NewJWTShareService,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSightingService,
			impl.NewGuidanceService,
			impl.NewDeviceService,
			impl.NewSubscriptionService,
			impl.NewShareService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewDeviceAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSightingHandler,
			handler.NewGuidanceHandler,
			handler.NewDeviceHandler,
			handler.NewSubscriptionHandler,
			handler.NewShareHandler,
			handler.NewAlertHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

type sweeperParams struct {
	fx.In
	fx.Lifecycle

	Ctx        context.Context
	Cfg        *config.Config
	Logger     *slog.Logger
	SightingUC usecase.SightingUsecase
}

// startExpirySweeper periodically marks overdue sightings as expired so
// they stop showing up in nearby queries and share links.
func startExpirySweeper(params sweeperParams) {
	interval := time.Minute
	if params.Cfg.Sighting != nil && params.Cfg.Sighting.SweepInterval > 0 {
		interval = params.Cfg.Sighting.SweepInterval
	}

	ctx, cancel := context.WithCancel(params.Ctx)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count, err := params.SightingUC.ExpireSightings(ctx)
				if err != nil {
					params.Logger.Error("Expiry sweep failed", slog.Any("error", err))

					continue
				}
				if count > 0 {
					params.Logger.Info("Expired overdue sightings", slog.Int64("count", count))
				}
			}
		}
	}()

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
