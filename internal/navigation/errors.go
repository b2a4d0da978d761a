package navigation

import (
	"skywitness/internal/errors"
)

// Engine failure modes. All of them are returned as explicit values; the
// engine never emits NaN or Inf in any output field.
var (
	// ErrInvalidCoordinate is returned when a latitude is outside [-90,90]
	// or a longitude is outside [-180,180].
	ErrInvalidCoordinate = errors.New("navigation: coordinate out of range")

	// ErrDegenerateBearing is returned when observer and target coincide and
	// the bearing between them is undefined.
	ErrDegenerateBearing = errors.New("navigation: observer and target are coincident")

	// ErrWindTriangleInfeasible is returned when the wind is too strong
	// relative to the true airspeed for any heading to hold the desired
	// ground track.
	ErrWindTriangleInfeasible = errors.New("navigation: wind exceeds airspeed component along track")

	// ErrNoGroundSpeed is returned when a time estimate was requested but
	// there is no speed basis to compute one.
	ErrNoGroundSpeed = errors.New("navigation: no ground speed available for time estimate")

	// ErrNoInterceptSolution is returned when a moving target cannot be
	// reached with the observer's speed.
	ErrNoInterceptSolution = errors.New("navigation: no positive-time intercept exists")
)
