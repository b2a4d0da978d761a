package navigation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		a := GeoCoordinate{Latitude: rng.Float64()*180 - 90, Longitude: rng.Float64()*360 - 180}
		b := GeoCoordinate{Latitude: rng.Float64()*180 - 90, Longitude: rng.Float64()*360 - 180}

		dAB, err := Distance(a, b)
		require.NoError(t, err)
		dBA, err := Distance(b, a)
		require.NoError(t, err)

		assert.InDelta(t, dAB, dBA, 1e-6)
		assert.False(t, math.IsNaN(dAB))
	}
}

func TestDistance_CoincidentPointsAreZero(t *testing.T) {
	p := GeoCoordinate{Latitude: 25.033, Longitude: 121.5654}

	d, err := Distance(p, p)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// The haversine here uses the mean radius 6371.0 km while orb uses the WGS84
// equatorial radius, so the cross-check compares central angles by scaling.
func TestDistance_AgreesWithOrbHaversine(t *testing.T) {
	const orbRadiusM = 6378137.0

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := GeoCoordinate{Latitude: rng.Float64()*160 - 80, Longitude: rng.Float64()*360 - 180}
		b := GeoCoordinate{Latitude: rng.Float64()*160 - 80, Longitude: rng.Float64()*360 - 180}

		d, err := Distance(a, b)
		require.NoError(t, err)

		orbMeters := geo.DistanceHaversine(
			orb.Point{a.Longitude, a.Latitude},
			orb.Point{b.Longitude, b.Latitude},
		)
		expected := orbMeters / orbRadiusM * EarthRadiusKm

		assert.InDelta(t, expected, d, math.Max(1e-6, expected*1e-9))
	}
}

func TestDistance_RejectsOutOfRangeCoordinates(t *testing.T) {
	good := GeoCoordinate{Latitude: 10, Longitude: 10}

	cases := []GeoCoordinate{
		{Latitude: 90.0001, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 180.5},
		{Latitude: 0, Longitude: -181},
		{Latitude: math.NaN(), Longitude: 0},
	}
	for _, bad := range cases {
		_, err := Distance(good, bad)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
		_, err = InitialBearing(bad, good)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	}
}

func TestInitialBearing_DegenerateAtCoincidentPoints(t *testing.T) {
	p := GeoCoordinate{Latitude: -33.8688, Longitude: 151.2093}

	_, err := InitialBearing(p, p)
	assert.ErrorIs(t, err, ErrDegenerateBearing)
}

func TestInitialBearing_OneDegreeNorth(t *testing.T) {
	observer := GeoCoordinate{Latitude: 0, Longitude: 0}
	target := GeoCoordinate{Latitude: 1, Longitude: 0}

	brng, err := InitialBearing(observer, target)
	require.NoError(t, err)
	assert.InDelta(t, 0, brng, 1e-9)

	d, err := Distance(observer, target)
	require.NoError(t, err)
	assert.InDelta(t, 111.19, d, 0.05)

	assert.Equal(t, North, Cardinal(brng))
}

// A great-circle reverse bearing is generally not the 180-degree complement,
// but over short legs it comes close. Checks the forward bearing plus 180,
// normalized, against the reverse bearing for sub-100 km pairs.
func TestInitialBearing_ShortPathReversal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		a := GeoCoordinate{Latitude: rng.Float64()*120 - 60, Longitude: rng.Float64()*360 - 180}
		// Offset by at most ~0.5 degrees so the leg stays well under 100 km.
		b := GeoCoordinate{
			Latitude:  a.Latitude + (rng.Float64()-0.5)*0.7,
			Longitude: a.Longitude + (rng.Float64()-0.5)*0.7,
		}
		if b.Longitude > 180 || b.Longitude < -180 || (a.Latitude == b.Latitude && a.Longitude == b.Longitude) {
			continue
		}

		fwd, err := InitialBearing(a, b)
		require.NoError(t, err)
		rev, err := InitialBearing(b, a)
		require.NoError(t, err)

		assert.LessOrEqual(t, math.Abs(SignedDelta(fwd+180, rev)), 2.0,
			"fwd %.3f rev %.3f for (%f,%f)->(%f,%f)", fwd, rev, a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	}
}

func TestCardinal_SectorsAndBoundaries(t *testing.T) {
	cases := []struct {
		bearing float64
		want    CardinalDirection
	}{
		{0, North},
		{45, NorthEast},
		{90, East},
		{135, SouthEast},
		{180, South},
		{225, SouthWest},
		{270, West},
		{315, NorthWest},
		{22.5, NorthEast}, // boundary rounds clockwise
		{67.5, East},
		{337.5, North},
		{359.9, North},
		{22.4999, North},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Cardinal(tc.bearing), "bearing %v", tc.bearing)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(0), 1e-12)
	assert.InDelta(t, 0, NormalizeAngle(360), 1e-12)
	assert.InDelta(t, 0.5, NormalizeAngle(720.5), 1e-12)
	assert.InDelta(t, 270, NormalizeAngle(-90), 1e-12)
	assert.InDelta(t, 359, NormalizeAngle(-1), 1e-12)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := NormalizeAngle(rng.Float64()*4000 - 2000)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 360.0)
	}
}

func TestSignedDelta_WrapAround(t *testing.T) {
	assert.InDelta(t, -2, SignedDelta(359, 1), 1e-12)
	assert.InDelta(t, 2, SignedDelta(1, 359), 1e-12)
	assert.InDelta(t, 180, SignedDelta(180, 0), 1e-12)
	assert.InDelta(t, 180, SignedDelta(0, 180), 1e-12)
	assert.InDelta(t, -90, SignedDelta(0, 90), 1e-12)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		d := SignedDelta(rng.Float64()*720, rng.Float64()*720)
		assert.Greater(t, d, -180.0)
		assert.LessOrEqual(t, d, 180.0)
	}
}

func TestRelativeBearing_Identities(t *testing.T) {
	for b := 0.0; b < 360; b += 7.3 {
		assert.InDelta(t, 0, RelativeBearing(b, b), 1e-9)
		behind := RelativeBearing(b, NormalizeAngle(b+180))
		assert.InDelta(t, 180, math.Abs(behind), 1e-9)
	}
}

func TestDestination_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 200; i++ {
		from := GeoCoordinate{Latitude: rng.Float64()*120 - 60, Longitude: rng.Float64()*340 - 170}
		brng := rng.Float64() * 360
		dist := rng.Float64()*400 + 1

		to := Destination(from, brng, dist)
		require.NoError(t, to.Validate())

		gotDist, err := Distance(from, to)
		require.NoError(t, err)
		assert.InDelta(t, dist, gotDist, dist*1e-6+1e-6)

		gotBrng, err := InitialBearing(from, to)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(SignedDelta(gotBrng, brng)), 1e-6)
	}
}
