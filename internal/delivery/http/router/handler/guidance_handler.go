package handler

import (
	"log/slog"
	"net/http"

	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuidanceHandlerParams holds dependencies for GuidanceHandler, injected by Fx.
type GuidanceHandlerParams struct {
	fx.In

	GuidanceUC usecase.GuidanceUsecase
	Logger     *slog.Logger
}

// GuidanceHandler holds dependencies for guidance computation handlers
type GuidanceHandler struct {
	guidanceUC usecase.GuidanceUsecase
	logger     *slog.Logger
}

// NewGuidanceHandler is the constructor for GuidanceHandler
func NewGuidanceHandler(params GuidanceHandlerParams) *GuidanceHandler {
	return &GuidanceHandler{
		guidanceUC: params.GuidanceUC,
		logger:     params.Logger,
	}
}

// GuidanceRequestBody represents the request body for a guidance computation
type GuidanceRequestBody struct {
	Observer    usecase.ObserverInput `json:"observer" validate:"required"`
	Wind        *usecase.WindInput    `json:"wind,omitempty"`
	Declination *float64              `json:"declination,omitempty"`
}

// ComputeGuidance handles computing a navigation solution toward a sighting
func (h *GuidanceHandler) ComputeGuidance(c echo.Context) error {
	sightingID, err := uuid.Parse(c.Param("sightingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	var req GuidanceRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guidance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.guidanceUC.ComputeGuidance(c.Request().Context(), sightingID, &usecase.GuidanceRequest{
		Observer:    req.Observer,
		Wind:        req.Wind,
		Declination: req.Declination,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Guidance computed successfully")
}
