package usecase

import (
	"context"

	"skywitness/internal/navigation"

	"github.com/google/uuid"
)

// ObserverInput is one snapshot of the requesting device's position and motion
type ObserverInput struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	AltitudeM    *float64 `json:"altitude_m,omitempty"`
	TrueHeading  float64  `json:"true_heading"`
	GroundSpeed  float64  `json:"ground_speed"` // km/h
	TrueAirspeed *float64 `json:"true_airspeed,omitempty"`
}

// WindInput is an optional wind vector supplied with a guidance request
type WindInput struct {
	DirectionFrom float64  `json:"direction_from"` // degrees, meteorological convention
	Speed         float64  `json:"speed"`          // km/h
	Gust          *float64 `json:"gust,omitempty"`
	Accuracy      string   `json:"accuracy,omitempty"` // measured, estimated, forecast
}

// GuidanceRequest asks for a navigation solution from an observer toward a sighting
type GuidanceRequest struct {
	Observer    ObserverInput `json:"observer"`
	Wind        *WindInput    `json:"wind,omitempty"`
	Declination *float64      `json:"declination,omitempty"` // degrees, east positive
}

// GuidanceResult is the wire-friendly projection of a navigation solution
type GuidanceResult struct {
	SightingID           uuid.UUID `json:"sighting_id"`
	DistanceKm           float64   `json:"distance_km"`
	Bearing              float64   `json:"bearing"`
	MagneticBearing      *float64  `json:"magnetic_bearing,omitempty"`
	RelativeBearing      float64   `json:"relative_bearing"`
	Cardinal             string    `json:"cardinal"`
	EstimatedTimeEnroute *float64  `json:"estimated_time_enroute_sec,omitempty"`
	DesiredTrack         *float64  `json:"desired_track,omitempty"`
	RequiredHeading      *float64  `json:"required_heading,omitempty"`
	TrackError           *float64  `json:"track_error,omitempty"`
	WindAccuracy         *string   `json:"wind_accuracy,omitempty"`
	WindStatus           *string   `json:"wind_status,omitempty"`
	InterceptHeading     *float64  `json:"intercept_heading,omitempty"`
	InterceptDistanceKm  *float64  `json:"intercept_distance_km,omitempty"`
	InterceptTimeSec     *float64  `json:"intercept_time_sec,omitempty"`
}

// GuidanceUsecase defines the interface for guidance computation use cases
type GuidanceUsecase interface {
	// ComputeGuidance solves the navigation problem from the observer toward a sighting
	ComputeGuidance(ctx context.Context, sightingID uuid.UUID, req *GuidanceRequest) (*GuidanceResult, error)

	// SolveDirect computes a solution toward an arbitrary target point without a stored sighting
	SolveDirect(req *GuidanceRequest, targetLat, targetLon float64, targetAltM *float64) (*navigation.NavigationSolution, error)
}
