package impl

import (
	"context"
	"math"

	"skywitness/config"
	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/navigation"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type guidanceService struct {
	sightings usecase.SightingUsecase
	config    *config.Config
}

// GuidanceServiceParams holds dependencies for GuidanceService, injected by Fx.
type GuidanceServiceParams struct {
	fx.In

	Sightings usecase.SightingUsecase
	Config    *config.Config
}

// NewGuidanceService creates a new guidance service instance
func NewGuidanceService(params GuidanceServiceParams) usecase.GuidanceUsecase {
	return &guidanceService{
		sightings: params.Sightings,
		config:    params.Config,
	}
}

// ComputeGuidance solves the navigation problem from the observer toward a sighting
func (s *guidanceService) ComputeGuidance(ctx context.Context, sightingID uuid.UUID, req *usecase.GuidanceRequest) (*usecase.GuidanceResult, error) {
	sighting, err := s.sightings.GetSighting(ctx, sightingID)
	if err != nil {
		return nil, err
	}

	sol, err := s.SolveDirect(req, sighting.Latitude, sighting.Longitude, sighting.AltitudeM)
	if err != nil {
		return nil, err
	}

	result := &usecase.GuidanceResult{
		SightingID:      sightingID,
		DistanceKm:      sol.DistanceKm,
		Bearing:         sol.Bearing,
		MagneticBearing: sol.MagneticBearing,
		RelativeBearing: sol.RelativeBearing,
		Cardinal:        sol.Cardinal.String(),
		DesiredTrack:    sol.DesiredTrack,
		RequiredHeading: sol.RequiredHeading,
		TrackError:      sol.TrackError,
	}
	if sol.EstimatedTimeEnroute != nil {
		ete := sol.EstimatedTimeEnroute.Seconds()
		result.EstimatedTimeEnroute = &ete
	}
	if sol.WindAccuracy != nil {
		acc := sol.WindAccuracy.String()
		result.WindAccuracy = &acc
	}
	if sol.WindStatus != "" {
		status := string(sol.WindStatus)
		result.WindStatus = &status
	}
	if sol.Intercept != nil {
		heading := sol.Intercept.Heading
		distance := sol.Intercept.DistanceKm
		seconds := sol.Intercept.Time.Seconds()
		result.InterceptHeading = &heading
		result.InterceptDistanceKm = &distance
		result.InterceptTimeSec = &seconds
	}

	return result, nil
}

// SolveDirect computes a solution toward an arbitrary target point without a stored sighting
func (s *guidanceService) SolveDirect(req *usecase.GuidanceRequest, targetLat, targetLon float64, targetAltM *float64) (*navigation.NavigationSolution, error) {
	observer := navigation.ObserverState{
		Position: navigation.GeoCoordinate{
			Latitude:  req.Observer.Latitude,
			Longitude: req.Observer.Longitude,
			Altitude:  req.Observer.AltitudeM,
		},
		TrueHeading:  req.Observer.TrueHeading,
		GroundSpeed:  req.Observer.GroundSpeed,
		TrueAirspeed: req.Observer.TrueAirspeed,
	}

	target := navigation.NavigationTarget{
		Position: navigation.GeoCoordinate{
			Latitude:  targetLat,
			Longitude: targetLon,
			Altitude:  targetAltM,
		},
	}

	var wind *navigation.WindVector
	if req.Wind != nil {
		if err := s.validateWind(req.Wind); err != nil {
			return nil, err
		}
		wind = &navigation.WindVector{
			DirectionFrom: req.Wind.DirectionFrom,
			Speed:         req.Wind.Speed,
			Gust:          req.Wind.Gust,
			Accuracy:      navigation.ParseWindAccuracy(req.Wind.Accuracy),
		}
	}

	declination := req.Declination
	if declination == nil && s.config.Guidance != nil && s.config.Guidance.DefaultDeclination != 0 {
		declination = &s.config.Guidance.DefaultDeclination
	}

	sol, err := navigation.ComputeNavigationSolution(observer, target, wind, declination)
	if err != nil {
		switch {
		case errors.Is(err, navigation.ErrInvalidCoordinate):
			return nil, domainerrors.ErrInvalidCoordinate
		case errors.Is(err, navigation.ErrDegenerateBearing):
			return nil, domainerrors.ErrGuidanceUnavailable.WrapMessage("observer and target coincide")
		case errors.Is(err, navigation.ErrNoInterceptSolution):
			return nil, domainerrors.ErrInterceptUnreachable
		default:
			return nil, errors.Wrap(err, "failed to compute navigation solution")
		}
	}

	return &sol, nil
}

const defaultMaxWindSpeed = 400 // km/h, well past any surface wind worth correcting for

// validateWind rejects wind readings no triangle should ever see: negative
// or non-finite speeds, and anything past the configured ceiling.
func (s *guidanceService) validateWind(wind *usecase.WindInput) error {
	maxSpeed := float64(defaultMaxWindSpeed)
	if s.config.Guidance != nil && s.config.Guidance.MaxWindSpeed > 0 {
		maxSpeed = s.config.Guidance.MaxWindSpeed
	}

	if wind.Speed < 0 || math.IsNaN(wind.Speed) || wind.Speed > maxSpeed {
		return domainerrors.ErrWindInfeasible.WrapMessage("wind speed out of accepted range")
	}
	if wind.Gust != nil && (*wind.Gust < 0 || math.IsNaN(*wind.Gust) || *wind.Gust > maxSpeed) {
		return domainerrors.ErrWindInfeasible.WrapMessage("wind gust out of accepted range")
	}

	return nil
}
