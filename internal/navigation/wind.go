package navigation

import (
	"math"
)

// WindAccuracy classifies how trustworthy a wind reading is. It does not
// change the math; it is threaded through to the output so the UI can show
// a trust signal next to wind-corrected figures.
type WindAccuracy int

const (
	WindAccuracyUnknown WindAccuracy = iota
	WindAccuracyMeasured
	WindAccuracyEstimated
	WindAccuracyForecast
)

// String returns the wire label for the accuracy class.
func (a WindAccuracy) String() string {
	switch a {
	case WindAccuracyMeasured:
		return "measured"
	case WindAccuracyEstimated:
		return "estimated"
	case WindAccuracyForecast:
		return "forecast"
	default:
		return "unknown"
	}
}

// ParseWindAccuracy maps a wire label onto a WindAccuracy, defaulting to
// unknown for anything unrecognized.
func ParseWindAccuracy(s string) WindAccuracy {
	switch s {
	case "measured":
		return WindAccuracyMeasured
	case "estimated":
		return WindAccuracyEstimated
	case "forecast":
		return WindAccuracyForecast
	default:
		return WindAccuracyUnknown
	}
}

// WindVector describes wind by the direction it blows from, per the
// aviation convention. Speed and gust share units with true airspeed.
type WindVector struct {
	DirectionFrom float64      `json:"direction_from"` // degrees, 0-360
	Speed         float64      `json:"speed"`          // km/h
	Gust          *float64     `json:"gust,omitempty"` // km/h
	Accuracy      WindAccuracy `json:"-"`
}

// WindCorrection is the wind-triangle solution for one desired ground track.
type WindCorrection struct {
	CorrectionAngle float64 // degrees, positive = nose right of track
	RequiredHeading float64 // degrees [0,360)
	GroundSpeed     float64 // km/h along the desired track; may be <= 0 in a strong headwind
}

// SolveWindTriangle computes the heading that holds desiredTrack over the
// ground given true airspeed and wind, via the law of sines on the wind
// triangle.
//
// The wind vector is first reversed to the direction it blows toward; its
// angle relative to the track is windRel = SignedDelta(from+180, track).
// The crosswind component W*sin(windRel) must be canceled by the airspeed
// component, so the correction angle satisfies
//
//	sin(WCA) = -(W/TAS) * sin(windRel)
//
// and ground speed is the along-track sum TAS*cos(WCA) + W*cos(windRel).
// This projection form is exact for any feasible WCA, not only small angles.
//
// When |W/TAS * sin(windRel)| > 1 no heading can hold the track and the
// solver fails with ErrWindTriangleInfeasible; callers fall back to the
// uncorrected bearing rather than displaying a garbage heading.
func SolveWindTriangle(desiredTrack, trueAirspeed float64, wind WindVector) (WindCorrection, error) {
	if trueAirspeed <= 0 || math.IsNaN(trueAirspeed) {
		return WindCorrection{}, ErrNoGroundSpeed
	}
	if wind.Speed < 0 || math.IsNaN(wind.Speed) || math.IsNaN(wind.DirectionFrom) {
		return WindCorrection{}, ErrWindTriangleInfeasible
	}

	windRel := SignedDelta(wind.DirectionFrom+180, desiredTrack)
	crossRatio := wind.Speed / trueAirspeed * math.Sin(radians(windRel))
	if math.Abs(crossRatio) > 1 {
		return WindCorrection{}, ErrWindTriangleInfeasible
	}

	wca := -math.Asin(crossRatio)
	groundSpeed := trueAirspeed*math.Cos(wca) + wind.Speed*math.Cos(radians(windRel))

	return WindCorrection{
		CorrectionAngle: degrees(wca),
		RequiredHeading: NormalizeAngle(desiredTrack + degrees(wca)),
		GroundSpeed:     groundSpeed,
	}, nil
}
