// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skywitness/config"
	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	SightingHandler     *handler.SightingHandler
	GuidanceHandler     *handler.GuidanceHandler
	DeviceHandler       *handler.DeviceHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ShareHandler        *handler.ShareHandler
	AlertHandler        *handler.AlertHandler
	TestHandler         *handler.TestHandler
	DeviceAuth          *middleware.DeviceAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	sightingHandler     *handler.SightingHandler
	guidanceHandler     *handler.GuidanceHandler
	deviceHandler       *handler.DeviceHandler
	subscriptionHandler *handler.SubscriptionHandler
	shareHandler        *handler.ShareHandler
	alertHandler        *handler.AlertHandler
	testHandler         *handler.TestHandler
	deviceAuth          *middleware.DeviceAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		sightingHandler:     params.SightingHandler,
		guidanceHandler:     params.GuidanceHandler,
		deviceHandler:       params.DeviceHandler,
		subscriptionHandler: params.SubscriptionHandler,
		shareHandler:        params.ShareHandler,
		alertHandler:        params.AlertHandler,
		testHandler:         params.TestHandler,
		deviceAuth:          params.DeviceAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device registration is the only unauthenticated write endpoint
	e.POST("/devices/register", r.deviceHandler.RegisterDevice)

	// Device routes that require a registered device key
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.deviceAuth.Authenticate)
	{
		deviceGroup.PUT("/fcm-token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.PUT("/position", r.deviceHandler.UpdatePosition)
		deviceGroup.DELETE("/me", r.deviceHandler.DeactivateDevice)
	}

	// Sighting routes all require a registered device key
	sightingGroup := e.Group("/sightings")
	sightingGroup.Use(r.deviceAuth.Authenticate)
	{
		sightingGroup.POST("", r.sightingHandler.ReportSighting)
		sightingGroup.GET("/nearby", r.sightingHandler.ListNearbySightings)
		sightingGroup.GET("/:sightingId", r.sightingHandler.GetSighting)
		sightingGroup.POST("/:sightingId/guidance", r.guidanceHandler.ComputeGuidance)
		sightingGroup.POST("/:sightingId/share", r.shareHandler.CreateShareLink)
		sightingGroup.GET("/:sightingId/share/qr", r.shareHandler.GetShareQR)
	}

	// Subscription routes that require a registered device key
	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.deviceAuth.Authenticate)
	{
		subscriptionGroup.POST("", r.subscriptionHandler.CreateSubscription)
		subscriptionGroup.GET("", r.subscriptionHandler.GetDeviceSubscriptions)
		subscriptionGroup.PUT("/:subscriptionId/radius", r.subscriptionHandler.UpdateAlertRadius)
		subscriptionGroup.PUT("/:subscriptionId/status", r.subscriptionHandler.SetSubscriptionActive)
		subscriptionGroup.DELETE("/:subscriptionId", r.subscriptionHandler.DeleteSubscription)
	}

	// Alert history for the calling device
	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.deviceAuth.Authenticate)
	{
		alertGroup.GET("", r.alertHandler.GetDeviceAlerts)
	}

	// Shared sightings resolve without a device key
	e.GET("/share/:token", r.shareHandler.ResolveShareToken)

	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		r.registerTestRoutes(e)
	}
}

// registerTestRoutes wires endpoints used to validate middleware behavior.
// They stay disabled outside of development configurations.
func (r *router) registerTestRoutes(e *echo.Echo) {
	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		authedTestGroup := testGroup.Group("/auth")
		authedTestGroup.Use(r.deviceAuth.Authenticate)
		authedTestGroup.GET("", r.testHandler.TestAuthMiddleware)
	}
}
