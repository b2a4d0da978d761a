package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"skywitness/internal/delivery/http/middleware"
	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SightingHandlerParams holds dependencies for SightingHandler, injected by Fx.
type SightingHandlerParams struct {
	fx.In

	SightingUC usecase.SightingUsecase
	Logger     *slog.Logger
}

// SightingHandler holds dependencies for sighting-related handlers
type SightingHandler struct {
	sightingUC usecase.SightingUsecase
	logger     *slog.Logger
}

// NewSightingHandler is the constructor for SightingHandler
func NewSightingHandler(params SightingHandlerParams) *SightingHandler {
	return &SightingHandler{
		sightingUC: params.SightingUC,
		logger:     params.Logger,
	}
}

// ReportSightingRequest represents the request body for reporting a sighting
type ReportSightingRequest struct {
	Latitude        float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude       float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	AltitudeM       *float64 `json:"altitude_m,omitempty"`
	ObservedHeading *float64 `json:"observed_heading,omitempty"`
	ObservedPitch   *float64 `json:"observed_pitch,omitempty"`
	Description     string   `json:"description" validate:"required,max=500"`
	TTLSeconds      *int64   `json:"ttl_seconds,omitempty" validate:"omitempty,gt=0"`
}

// ReportSighting handles creating a new sighting report
func (h *SightingHandler) ReportSighting(c echo.Context) error {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_DEVICE", "Invalid device identity")
	}

	var req ReportSightingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sighting input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	report := &usecase.SightingReport{
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		AltitudeM:       req.AltitudeM,
		ObservedHeading: req.ObservedHeading,
		ObservedPitch:   req.ObservedPitch,
		Description:     req.Description,
	}
	if req.TTLSeconds != nil {
		ttl := time.Duration(*req.TTLSeconds) * time.Second
		report.TTL = &ttl
	}

	sighting, err := h.sightingUC.ReportSighting(c.Request().Context(), deviceID, report)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sighting, "Sighting reported successfully")
}

// GetSighting handles retrieving a single sighting by ID
func (h *SightingHandler) GetSighting(c echo.Context) error {
	sightingID, err := uuid.Parse(c.Param("sightingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	sighting, err := h.sightingUC.GetSighting(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sighting, "Sighting retrieved successfully")
}

// ListNearbySightings handles listing active sightings around a point
func (h *SightingHandler) ListNearbySightings(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing lat query parameter")
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing lon query parameter")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid radius_km query parameter")
		}
	}

	sightings, err := h.sightingUC.ListNearbySightings(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sightings, "Nearby sightings retrieved successfully")
}
