package navigation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeNavigationSolution_DirectToNorthernTarget(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 0,
		GroundSpeed: 100,
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 1, Longitude: 0}, Name: "sighting"}

	sol, err := ComputeNavigationSolution(observer, target, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0, sol.Bearing, 1e-9)
	assert.InDelta(t, 111.19, sol.DistanceKm, 0.05)
	assert.InDelta(t, 0, sol.RelativeBearing, 1e-9)
	assert.Equal(t, North, sol.Cardinal)
	assert.Nil(t, sol.MagneticBearing)
	assert.Nil(t, sol.RequiredHeading)
	assert.Nil(t, sol.DesiredTrack)
	assert.Nil(t, sol.TrackError)

	require.NotNil(t, sol.EstimatedTimeEnroute)
	assert.InDelta(t, sol.DistanceKm/100, sol.EstimatedTimeEnroute.Hours(), 1e-9)

	// The stationary target must yield the exact degenerate intercept, not
	// a missing one.
	require.NotNil(t, sol.Intercept)
	assert.InDelta(t, sol.Bearing, sol.Intercept.Heading, 1e-9)
	assert.InDelta(t, sol.DistanceKm, sol.Intercept.DistanceKm, 1e-9)
	assert.Equal(t, target.Position, sol.Intercept.Point)
}

func TestComputeNavigationSolution_MagneticBearing(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 90,
		GroundSpeed: 0,
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 0, Longitude: 1}}

	sol, err := ComputeNavigationSolution(observer, target, nil, floatPtr(-4.5))
	require.NoError(t, err)

	require.NotNil(t, sol.MagneticBearing)
	assert.InDelta(t, NormalizeAngle(sol.Bearing+4.5), *sol.MagneticBearing, 1e-9)

	// No speed basis: distance-only output, no ETE, no intercept.
	assert.Nil(t, sol.EstimatedTimeEnroute)
	assert.Nil(t, sol.Intercept)
}

func TestComputeNavigationSolution_RelativeBearingSteering(t *testing.T) {
	// Facing east with the target due north: turn 90 degrees left.
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 90,
		GroundSpeed: 10,
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 1, Longitude: 0}}

	sol, err := ComputeNavigationSolution(observer, target, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, -90, sol.RelativeBearing, 1e-9)
}

func TestComputeNavigationSolution_WindCorrected(t *testing.T) {
	observer := ObserverState{
		Position:     GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading:  90,
		GroundSpeed:  95,
		TrueAirspeed: floatPtr(100),
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 0, Longitude: 1}}
	wind := &WindVector{DirectionFrom: 180, Speed: 20, Accuracy: WindAccuracyMeasured}

	sol, err := ComputeNavigationSolution(observer, target, wind, nil)
	require.NoError(t, err)

	require.NotNil(t, sol.DesiredTrack)
	assert.InDelta(t, sol.Bearing, *sol.DesiredTrack, 1e-9)

	require.NotNil(t, sol.RequiredHeading)
	assert.Greater(t, *sol.RequiredHeading, 90.0) // nose south of east against wind from the south

	require.NotNil(t, sol.TrackError)
	assert.InDelta(t, SignedDelta(*sol.RequiredHeading, 90), *sol.TrackError, 1e-9)

	require.NotNil(t, sol.WindAccuracy)
	assert.Equal(t, WindAccuracyMeasured, *sol.WindAccuracy)
	assert.Equal(t, WindCorrected, sol.WindStatus)

	// ETE uses the wind-triangle ground speed, not the raw observer speed.
	require.NotNil(t, sol.EstimatedTimeEnroute)
	gs := 100*math.Cos(radians(*sol.RequiredHeading-90)) + 20*math.Cos(radians(-90))
	assert.InDelta(t, sol.DistanceKm/gs, sol.EstimatedTimeEnroute.Hours(), 1e-6)
}

func TestComputeNavigationSolution_WindStageSkippedWithoutAirspeed(t *testing.T) {
	// The expected path for a walking witness: wind supplied but no TAS, so
	// no required-heading fields appear at all.
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 0,
		GroundSpeed: 5,
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 0.1, Longitude: 0.1}}
	wind := &WindVector{DirectionFrom: 270, Speed: 30}

	sol, err := ComputeNavigationSolution(observer, target, wind, nil)
	require.NoError(t, err)

	assert.Nil(t, sol.DesiredTrack)
	assert.Nil(t, sol.RequiredHeading)
	assert.Nil(t, sol.TrackError)
	assert.Nil(t, sol.WindAccuracy)
	require.NotNil(t, sol.EstimatedTimeEnroute) // raw ground speed still gives an ETE
}

func TestComputeNavigationSolution_InfeasibleWindDegrades(t *testing.T) {
	// Wind far beyond the airspeed: the caller still gets the uncorrected
	// solution with wind-dependent fields absent rather than an error.
	observer := ObserverState{
		Position:     GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading:  0,
		GroundSpeed:  40,
		TrueAirspeed: floatPtr(50),
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 1, Longitude: 0}}
	wind := &WindVector{DirectionFrom: 90, Speed: 80}

	sol, err := ComputeNavigationSolution(observer, target, wind, nil)
	require.NoError(t, err)

	assert.Nil(t, sol.RequiredHeading)
	assert.Nil(t, sol.TrackError)
	assert.Nil(t, sol.DesiredTrack)
	assert.Equal(t, WindInfeasible, sol.WindStatus)
	assert.InDelta(t, 0, sol.Bearing, 1e-9)
	require.NotNil(t, sol.EstimatedTimeEnroute)
	assert.InDelta(t, sol.DistanceKm/40, sol.EstimatedTimeEnroute.Hours(), 1e-9)
}

func TestComputeNavigationSolution_HeadwindStallsWithoutETE(t *testing.T) {
	// A direct headwind stronger than the airspeed still has a trivial
	// triangle solution (nose straight into it), but no forward progress.
	// The heading fields must appear while any time estimate is withheld;
	// the raw observer ground speed is not a valid substitute basis.
	observer := ObserverState{
		Position:     GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading:  0,
		GroundSpeed:  40,
		TrueAirspeed: floatPtr(50),
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 1, Longitude: 0}}
	wind := &WindVector{DirectionFrom: 0, Speed: 80}

	sol, err := ComputeNavigationSolution(observer, target, wind, nil)
	require.NoError(t, err)

	require.NotNil(t, sol.RequiredHeading)
	assert.InDelta(t, 0, SignedDelta(*sol.RequiredHeading, 0), 1e-9)
	assert.Equal(t, WindNoProgress, sol.WindStatus)
	assert.Nil(t, sol.EstimatedTimeEnroute)
	assert.Nil(t, sol.Intercept)
}

func TestComputeNavigationSolution_RejectsNonFiniteDeclination(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 0,
		GroundSpeed: 10,
	}
	target := NavigationTarget{Position: GeoCoordinate{Latitude: 1, Longitude: 0}}

	for _, dec := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ComputeNavigationSolution(observer, target, nil, floatPtr(dec))
		assert.Error(t, err, "declination %v must be rejected", dec)
	}
}

func TestComputeNavigationSolution_CoincidentTargetFails(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 12.5, Longitude: -70},
		TrueHeading: 0,
		GroundSpeed: 10,
	}
	target := NavigationTarget{Position: observer.Position}

	_, err := ComputeNavigationSolution(observer, target, nil, nil)
	assert.ErrorIs(t, err, ErrDegenerateBearing)
}

func TestComputeNavigationSolution_MovingTargetIntercept(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 0,
		GroundSpeed: 100,
	}
	target := NavigationTarget{
		Position: GeoCoordinate{Latitude: 0, Longitude: 100 / kmPerDegreeLat},
		Motion:   &MotionVector{Heading: 0, Speed: 60},
	}

	sol, err := ComputeNavigationSolution(observer, target, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, sol.Intercept)
	assert.InDelta(t, 1.25, sol.Intercept.Time.Hours(), 1e-6)
	assert.InDelta(t, 125, sol.Intercept.DistanceKm, 1e-6)
}

func TestComputeNavigationSolution_UnreachableMovingTarget(t *testing.T) {
	observer := ObserverState{
		Position:    GeoCoordinate{Latitude: 0, Longitude: 0},
		TrueHeading: 90,
		GroundSpeed: 50,
	}
	target := NavigationTarget{
		Position: GeoCoordinate{Latitude: 0, Longitude: 1},
		Motion:   &MotionVector{Heading: 90, Speed: 90},
	}

	_, err := ComputeNavigationSolution(observer, target, nil, nil)
	assert.ErrorIs(t, err, ErrNoInterceptSolution)
}

func TestComputeNavigationSolution_NoNaNLeaks(t *testing.T) {
	// Sweep a mix of inputs and assert no numeric field ever comes back
	// NaN or infinite; those are defects, not outputs.
	observers := []ObserverState{
		{Position: GeoCoordinate{Latitude: 0, Longitude: 0}, TrueHeading: 0, GroundSpeed: 0},
		{Position: GeoCoordinate{Latitude: 45, Longitude: 45}, TrueHeading: 359.9, GroundSpeed: 3},
		{Position: GeoCoordinate{Latitude: -80, Longitude: 170}, TrueHeading: 180, GroundSpeed: 900, TrueAirspeed: floatPtr(850)},
	}
	targets := []NavigationTarget{
		{Position: GeoCoordinate{Latitude: 0.001, Longitude: 0.001}},
		{Position: GeoCoordinate{Latitude: -45, Longitude: -135}},
		{Position: GeoCoordinate{Latitude: 89, Longitude: 0}},
	}
	winds := []*WindVector{nil, {DirectionFrom: 200, Speed: 15}, {DirectionFrom: 0, Speed: 0}}

	checkFinite := func(name string, v float64) {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite: %v", name, v)
	}

	for _, obs := range observers {
		for _, tgt := range targets {
			for _, w := range winds {
				sol, err := ComputeNavigationSolution(obs, tgt, w, floatPtr(2.5))
				require.NoError(t, err)

				checkFinite("distance", sol.DistanceKm)
				checkFinite("bearing", sol.Bearing)
				checkFinite("relativeBearing", sol.RelativeBearing)
				if sol.MagneticBearing != nil {
					checkFinite("magneticBearing", *sol.MagneticBearing)
				}
				if sol.RequiredHeading != nil {
					checkFinite("requiredHeading", *sol.RequiredHeading)
				}
				if sol.Intercept != nil {
					checkFinite("interceptHeading", sol.Intercept.Heading)
					checkFinite("interceptDistance", sol.Intercept.DistanceKm)
				}
			}
		}
	}

	// A non-finite declination must be rejected up front, never carried
	// into the magnetic bearing.
	obs := observers[0]
	tgt := targets[0]
	_, err := ComputeNavigationSolution(obs, tgt, nil, floatPtr(math.NaN()))
	assert.Error(t, err)
}
