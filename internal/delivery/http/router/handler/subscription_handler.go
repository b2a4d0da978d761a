package handler

import (
	"log/slog"
	"net/http"

	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateSubscriptionRequest represents the request body for creating a subscription
type CreateSubscriptionRequest struct {
	Label     string   `json:"label" validate:"omitempty,max=100"`
	Latitude  float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusKm  *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
}

// UpdateRadiusRequest represents the request body for changing the alert radius
type UpdateRadiusRequest struct {
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
}

// UpdateStatusRequest represents the request body for toggling a subscription
type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CreateSubscription handles creating an alert subscription
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	var req CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), deviceID, &usecase.SubscriptionInput{
		Label:     req.Label,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription created successfully")
}

// GetDeviceSubscriptions handles listing the calling device's subscriptions
func (h *SubscriptionHandler) GetDeviceSubscriptions(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	subscriptions, err := h.subscriptionUC.GetDeviceSubscriptions(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// UpdateAlertRadius handles changing the alert radius of a subscription
func (h *SubscriptionHandler) UpdateAlertRadius(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	subscriptionID, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req UpdateRadiusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid radius input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.UpdateAlertRadius(c.Request().Context(), deviceID, subscriptionID, req.RadiusKm); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert radius updated successfully")
}

// SetSubscriptionActive handles activating or pausing a subscription
func (h *SubscriptionHandler) SetSubscriptionActive(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	subscriptionID, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.SetSubscriptionActive(c.Request().Context(), deviceID, subscriptionID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription status updated successfully")
}

// DeleteSubscription handles removing a subscription
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	subscriptionID, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.subscriptionUC.DeleteSubscription(c.Request().Context(), deviceID, subscriptionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription deleted successfully")
}
