// Package navigation implements the geodetic bearing and wind-corrected
// intercept engine behind sighting guidance. Every function is a pure
// computation over value types: no I/O, no shared state, no retained inputs.
// Distances are kilometers, speeds kilometers per hour, angles degrees.
package navigation

import (
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine distance.
	EarthRadiusKm = 6371.0

	// kmPerDegreeLat is the great-circle length of one degree of latitude.
	kmPerDegreeLat = EarthRadiusKm * math.Pi / 180
)

// GeoCoordinate is an immutable geographic position. Altitude is optional
// and carried for display only; none of the solvers consume it.
type GeoCoordinate struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"` // meters above MSL
}

// Validate reports ErrInvalidCoordinate when either angle is out of range.
// Callers are expected to normalize longitude wrap-around before use.
func (c GeoCoordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return ErrInvalidCoordinate
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidCoordinate
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}

	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle reduces an angle in degrees into [0,360).
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}

	return m
}

// SignedDelta returns a-b wrapped into (-180,180]. All angle subtraction in
// the engine routes through here so that 359 vs 1 comes out as -2, not 358.
func SignedDelta(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}

	return d
}

// Distance returns the haversine great-circle distance between two
// coordinates in kilometers. Symmetric in its arguments; returns 0 for
// coincident points.
func Distance(a, b GeoCoordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1, lon1 := radians(a.Latitude), radians(a.Longitude)
	lat2, lon2 := radians(b.Latitude), radians(b.Longitude)
	dLat, dLon := lat2-lat1, lon2-lon1

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c, nil
}

// InitialBearing returns the initial great-circle bearing from a toward b in
// degrees [0,360). The bearing is undefined at a==b and the engine returns
// ErrDegenerateBearing instead of guessing; callers must special-case
// standing on the target.
func InitialBearing(a, b GeoCoordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if a.Latitude == b.Latitude && a.Longitude == b.Longitude {
		return 0, ErrDegenerateBearing
	}

	lat1, lat2 := radians(a.Latitude), radians(b.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return NormalizeAngle(degrees(math.Atan2(y, x))), nil
}

// Destination returns the point reached by traveling distanceKm along the
// great circle from the given point on the given initial bearing.
func Destination(from GeoCoordinate, bearingDeg, distanceKm float64) GeoCoordinate {
	lat1 := radians(from.Latitude)
	lon1 := radians(from.Longitude)
	brng := radians(bearingDeg)
	ang := distanceKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(ang)*math.Cos(lat1),
		math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2),
	)

	// Wrap longitude back into [-180,180].
	lonDeg := math.Mod(degrees(lon2)+540, 360) - 180

	return GeoCoordinate{Latitude: degrees(lat2), Longitude: lonDeg}
}
