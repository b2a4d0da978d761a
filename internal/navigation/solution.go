package navigation

import (
	"math"
	"time"

	"skywitness/internal/errors"
)

// ObserverState is one sensor-tick snapshot of the observing device. The
// engine treats it as read-only and never retains it past the call.
type ObserverState struct {
	Position     GeoCoordinate `json:"position"`
	TrueHeading  float64       `json:"true_heading"` // degrees, 0 = north
	GroundSpeed  float64       `json:"ground_speed"` // km/h, >= 0
	TrueAirspeed *float64      `json:"true_airspeed,omitempty"`
	Bank         *float64      `json:"bank,omitempty"`  // display only
	Pitch        *float64      `json:"pitch,omitempty"` // display only
}

// NavigationTarget is what the observer is being guided toward. Motion is a
// reserved extension point for moving targets; current callers always leave
// it nil and the target is treated as stationary.
type NavigationTarget struct {
	Position GeoCoordinate `json:"position"`
	Name     string        `json:"name,omitempty"`
	Motion   *MotionVector `json:"motion,omitempty"`
}

// WindSolutionStatus reports how the wind stage of a solution resolved.
type WindSolutionStatus string

const (
	// WindCorrected means the triangle solved and the correction fields are set.
	WindCorrected WindSolutionStatus = "corrected"
	// WindInfeasible means the wind exceeds what the airspeed can counter.
	WindInfeasible WindSolutionStatus = "infeasible"
	// WindNoProgress means a heading solves but the along-track speed is not
	// positive, so no time estimate exists.
	WindNoProgress WindSolutionStatus = "no_progress"
)

// NavigationSolution is the full guidance picture for one update tick.
// Wind-dependent fields are present only when a wind vector and a true
// airspeed were supplied and the triangle was feasible; nil fields mean
// "absent", never "zero".
type NavigationSolution struct {
	Target          NavigationTarget  `json:"target"`
	DistanceKm      float64           `json:"distance_km"`
	Bearing         float64           `json:"bearing"`
	MagneticBearing *float64          `json:"magnetic_bearing,omitempty"`
	RelativeBearing float64           `json:"relative_bearing"`
	Cardinal        CardinalDirection `json:"-"`

	EstimatedTimeEnroute *time.Duration `json:"-"`

	DesiredTrack    *float64           `json:"desired_track,omitempty"`
	RequiredHeading *float64           `json:"required_heading,omitempty"`
	TrackError      *float64           `json:"track_error,omitempty"`
	WindAccuracy    *WindAccuracy      `json:"-"`
	WindStatus      WindSolutionStatus `json:"wind_status,omitempty"`

	Intercept *InterceptSolution `json:"intercept,omitempty"`
}

// ComputeNavigationSolution runs the full pipeline for one tick: geodesy,
// optional magnetic correction, relative bearing, optional wind triangle,
// and the intercept stage.
//
// Degradation follows the partial-results policy: an infeasible wind
// triangle or a missing speed basis strips the dependent fields instead of
// failing the whole call. Only invalid coordinates, a coincident target, or
// an unreachable moving target fail outright.
func ComputeNavigationSolution(observer ObserverState, target NavigationTarget, wind *WindVector, declination *float64) (NavigationSolution, error) {
	if observer.GroundSpeed < 0 || math.IsNaN(observer.GroundSpeed) || math.IsNaN(observer.TrueHeading) {
		return NavigationSolution{}, errors.New("navigation: observer kinematics invalid")
	}
	if declination != nil && (math.IsNaN(*declination) || math.IsInf(*declination, 0)) {
		return NavigationSolution{}, errors.New("navigation: declination invalid")
	}

	bearing, err := ComputeBearing(observer.Position, target.Position)
	if err != nil {
		return NavigationSolution{}, err
	}

	heading := NormalizeAngle(observer.TrueHeading)
	sol := NavigationSolution{
		Target:          target,
		DistanceKm:      bearing.DistanceKm,
		Bearing:         bearing.TrueBearing,
		RelativeBearing: RelativeBearing(bearing.TrueBearing, heading),
		Cardinal:        bearing.Cardinal,
	}

	if declination != nil {
		mag := ToMagnetic(bearing.TrueBearing, *declination)
		sol.MagneticBearing = &mag
	}

	// Wind stage. Skipped entirely without a true airspeed: the expected
	// path for a walking witness, where no required-heading correction is
	// meaningful.
	effectiveSpeed := observer.GroundSpeed
	if wind != nil && observer.TrueAirspeed != nil {
		corr, werr := SolveWindTriangle(bearing.TrueBearing, *observer.TrueAirspeed, *wind)
		switch {
		case werr == nil:
			track := bearing.TrueBearing
			trackErr := TrackError(corr.RequiredHeading, heading)
			sol.DesiredTrack = &track
			sol.RequiredHeading = &corr.RequiredHeading
			sol.TrackError = &trackErr
			acc := wind.Accuracy
			sol.WindAccuracy = &acc
			if corr.GroundSpeed > 0 {
				effectiveSpeed = corr.GroundSpeed
				sol.WindStatus = WindCorrected
			} else {
				// The heading holds the track but the wind cancels all forward
				// progress, so a time estimate would be meaningless. Drop the
				// speed basis and let the distance-only fields stand.
				effectiveSpeed = 0
				sol.WindStatus = WindNoProgress
			}
		case errors.Is(werr, ErrWindTriangleInfeasible):
			// Wind too strong to hold any track: degrade to the uncorrected
			// bearing display.
			sol.WindStatus = WindInfeasible
		default:
			return NavigationSolution{}, werr
		}
	}

	if effectiveSpeed > 0 {
		ete := hoursToDuration(sol.DistanceKm / effectiveSpeed)
		sol.EstimatedTimeEnroute = &ete
	}

	intercept, ierr := SolveIntercept(observer.Position, effectiveSpeed, target.Position, target.Motion)
	switch {
	case ierr == nil:
		sol.Intercept = &intercept
	case errors.Is(ierr, ErrNoGroundSpeed):
		// Distance-only results remain valid without a speed basis.
	case errors.Is(ierr, ErrNoInterceptSolution):
		// The caller asked for a moving-target chase it cannot win; that is
		// a hard answer, not a degradable one.
		return NavigationSolution{}, ierr
	default:
		return NavigationSolution{}, ierr
	}

	return sol, nil
}
