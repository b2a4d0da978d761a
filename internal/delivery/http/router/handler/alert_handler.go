package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert-history handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// GetDeviceAlerts handles listing the alerts delivered to the calling device
func (h *AlertHandler) GetDeviceAlerts(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit query parameter")
		}
		limit = parsed
	}

	alerts, err := h.alertUC.GetDeviceAlerts(c.Request().Context(), deviceID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}
