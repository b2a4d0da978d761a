package handler

import (
	"log/slog"
	"net/http"

	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	DeviceKey string `json:"device_key" validate:"required"`
	FCMToken  string `json:"fcm_token" validate:"required"`
	Platform  string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating the FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// UpdatePositionRequest represents the request body for updating the last position
type UpdatePositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// RegisterDevice handles registering a new witness device
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.DeviceInfo{
		DeviceKey: req.DeviceKey,
		FCMToken:  req.FCMToken,
		Platform:  req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// UpdateFCMToken handles refreshing the FCM token of the calling device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "FCM token updated successfully")
}

// UpdatePosition handles recording the calling device's last known position
func (h *DeviceHandler) UpdatePosition(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	var req UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UpdateLastPosition(c.Request().Context(), deviceID, req.Latitude, req.Longitude); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Position updated successfully")
}

// DeactivateDevice handles deactivating the calling device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated successfully")
}
