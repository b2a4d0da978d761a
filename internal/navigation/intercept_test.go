package navigation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveIntercept_StationaryCollapsesToDirect(t *testing.T) {
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 1, Longitude: 0}

	sol, err := SolveIntercept(observer, 100, target, nil)
	require.NoError(t, err)

	direct, err := ComputeBearing(observer, target)
	require.NoError(t, err)

	assert.InDelta(t, direct.TrueBearing, sol.Heading, 1e-9)
	assert.InDelta(t, direct.DistanceKm, sol.DistanceKm, 1e-9)
	assert.Equal(t, target, sol.Point)
	assert.InDelta(t, direct.DistanceKm/100*float64(time.Hour), float64(sol.Time), float64(time.Millisecond))
}

func TestSolveIntercept_ZeroSpeedMotionTreatedAsStationary(t *testing.T) {
	observer := GeoCoordinate{Latitude: 10, Longitude: 10}
	target := GeoCoordinate{Latitude: 10.5, Longitude: 10.2}

	still, err := SolveIntercept(observer, 80, target, nil)
	require.NoError(t, err)
	parked, err := SolveIntercept(observer, 80, target, &MotionVector{Heading: 270, Speed: 0})
	require.NoError(t, err)

	assert.Equal(t, still, parked)
}

func TestSolveIntercept_NoSpeedBasis(t *testing.T) {
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 1, Longitude: 0}

	_, err := SolveIntercept(observer, 0, target, nil)
	assert.ErrorIs(t, err, ErrNoGroundSpeed)

	_, err = SolveIntercept(observer, 0, target, &MotionVector{Heading: 0, Speed: 50})
	assert.ErrorIs(t, err, ErrNoGroundSpeed)
}

func TestSolveIntercept_StationaryCoincident(t *testing.T) {
	p := GeoCoordinate{Latitude: 5, Longitude: 5}

	_, err := SolveIntercept(p, 100, p, nil)
	assert.ErrorIs(t, err, ErrDegenerateBearing)
}

func TestSolveIntercept_TailChase(t *testing.T) {
	// Target one degree north heading due north at 50, observer at 100:
	// closure rate 50, so the chase takes distance/50 hours straight up the
	// meridian.
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 1, Longitude: 0}

	sol, err := SolveIntercept(observer, 100, target, &MotionVector{Heading: 0, Speed: 50})
	require.NoError(t, err)

	separation := kmPerDegreeLat // ~111.19 km
	wantT := separation / 50     // hours

	assert.InDelta(t, 0, sol.Heading, 1e-6)
	assert.InDelta(t, wantT, sol.Time.Hours(), 1e-6)
	assert.InDelta(t, 100*wantT, sol.DistanceKm, 1e-6)
	assert.InDelta(t, 2.0, sol.Point.Latitude, 1e-3)
	assert.InDelta(t, 0, sol.Point.Longitude, 1e-9)
}

func TestSolveIntercept_CrossingTarget(t *testing.T) {
	// Target 100 km due east tracking north at 60; observer at 100. The
	// pursuit quadratic gives t=1.25 h, a 125 km leg on heading
	// atan2(100,75) ~ 53.13 degrees, meeting 75 km north of the target's
	// starting point.
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 0, Longitude: 100 / kmPerDegreeLat}

	sol, err := SolveIntercept(observer, 100, target, &MotionVector{Heading: 0, Speed: 60})
	require.NoError(t, err)

	assert.InDelta(t, 1.25, sol.Time.Hours(), 1e-6)
	assert.InDelta(t, 125, sol.DistanceKm, 1e-6)
	assert.InDelta(t, math.Atan2(100, 75)*180/math.Pi, sol.Heading, 1e-6)

	// The meeting point must agree with the target's own dead reckoning.
	assert.InDelta(t, 75/kmPerDegreeLat, sol.Point.Latitude, 1e-3)
	assert.InDelta(t, target.Longitude, sol.Point.Longitude, 1e-3)
}

func TestSolveIntercept_EqualSpeedHeadOn(t *testing.T) {
	// Equal speeds head-on degenerate to the linear closing equation.
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 0, Longitude: 100 / kmPerDegreeLat}

	sol, err := SolveIntercept(observer, 50, target, &MotionVector{Heading: 270, Speed: 50})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sol.Time.Hours(), 1e-6)
	assert.InDelta(t, 90, sol.Heading, 1e-6)
	assert.InDelta(t, 50, sol.DistanceKm, 1e-6)
}

func TestSolveIntercept_TooSlowToCatch(t *testing.T) {
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 0, Longitude: 100 / kmPerDegreeLat}

	// Receding at 80 with only 50 available.
	_, err := SolveIntercept(observer, 50, target, &MotionVector{Heading: 90, Speed: 80})
	assert.ErrorIs(t, err, ErrNoInterceptSolution)

	// Same speed, running straight away: never closes.
	_, err = SolveIntercept(observer, 80, target, &MotionVector{Heading: 90, Speed: 80})
	assert.ErrorIs(t, err, ErrNoInterceptSolution)
}
