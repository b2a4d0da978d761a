package navigation

import (
	"math"
	"time"
)

// MotionVector is a linear-motion assumption for a target: constant heading
// and constant speed over the ground.
type MotionVector struct {
	Heading float64 `json:"heading"` // degrees, 0-360
	Speed   float64 `json:"speed"`   // km/h
}

// InterceptSolution is where and when a moving observer meets the target.
type InterceptSolution struct {
	Heading    float64       `json:"heading"`     // degrees [0,360)
	DistanceKm float64       `json:"distance_km"` // observer travel distance
	Time       time.Duration `json:"-"`
	Point      GeoCoordinate `json:"point"`
}

// SolveIntercept computes the intercept geometry for a target from an
// observer moving at groundSpeed km/h.
//
// For a stationary target (motion nil or zero speed) this collapses to the
// direct solution: the intercept heading is the bearing, the point is the
// target position, and the time is distance over ground speed. The
// degenerate case is produced exactly, not special-cased away.
//
// For a target carrying a linear-motion vector the closing geometry is
// solved in a local tangent plane about the observer: find t >= 0 with
// |P + Vt*t| = s*t where P is the target offset, Vt its velocity, and s the
// observer speed. That is a quadratic in t; the smallest positive root wins.
// If no positive root exists the observer cannot catch the target and the
// solver fails with ErrNoInterceptSolution.
func SolveIntercept(observer GeoCoordinate, groundSpeed float64, target GeoCoordinate, motion *MotionVector) (InterceptSolution, error) {
	if motion == nil || motion.Speed == 0 {
		return solveStationary(observer, groundSpeed, target)
	}

	return solveMoving(observer, groundSpeed, target, *motion)
}

func solveStationary(observer GeoCoordinate, groundSpeed float64, target GeoCoordinate) (InterceptSolution, error) {
	res, err := ComputeBearing(observer, target)
	if err != nil {
		return InterceptSolution{}, err
	}
	if groundSpeed <= 0 || math.IsNaN(groundSpeed) {
		return InterceptSolution{}, ErrNoGroundSpeed
	}

	return InterceptSolution{
		Heading:    res.TrueBearing,
		DistanceKm: res.DistanceKm,
		Time:       hoursToDuration(res.DistanceKm / groundSpeed),
		Point:      target,
	}, nil
}

func solveMoving(observer GeoCoordinate, groundSpeed float64, target GeoCoordinate, motion MotionVector) (InterceptSolution, error) {
	if err := observer.Validate(); err != nil {
		return InterceptSolution{}, err
	}
	if err := target.Validate(); err != nil {
		return InterceptSolution{}, err
	}
	if groundSpeed <= 0 || math.IsNaN(groundSpeed) {
		return InterceptSolution{}, ErrNoGroundSpeed
	}

	// Project the target into an east/north kilometer plane centered on the
	// observer. Error is negligible at the sub-degree separations the
	// product deals in.
	cosLat := math.Cos(radians(observer.Latitude))
	px := SignedDelta(target.Longitude, observer.Longitude) * kmPerDegreeLat * cosLat
	py := (target.Latitude - observer.Latitude) * kmPerDegreeLat

	// Target velocity in the same plane, km/h.
	vx := motion.Speed * math.Sin(radians(motion.Heading))
	vy := motion.Speed * math.Cos(radians(motion.Heading))

	// |P + V*t|^2 = (s*t)^2, expanded to a*t^2 + b*t + c = 0.
	a := vx*vx + vy*vy - groundSpeed*groundSpeed
	b := 2 * (px*vx + py*vy)
	c := px*px + py*py

	t, ok := smallestPositiveRoot(a, b, c)
	if !ok {
		return InterceptSolution{}, ErrNoInterceptSolution
	}

	ix := px + vx*t
	iy := py + vy*t
	if ix == 0 && iy == 0 {
		// Target walks straight into the observer: the chase degenerates to
		// standing still, so the heading is undefined.
		return InterceptSolution{}, ErrDegenerateBearing
	}

	heading := NormalizeAngle(degrees(math.Atan2(ix, iy)))
	dist := groundSpeed * t

	return InterceptSolution{
		Heading:    heading,
		DistanceKm: dist,
		Time:       hoursToDuration(t),
		Point:      Destination(observer, heading, dist),
	}, nil
}

// smallestPositiveRoot solves a*t^2 + b*t + c = 0 for the smallest t > 0.
func smallestPositiveRoot(a, b, c float64) (float64, bool) {
	const eps = 1e-12

	if math.Abs(a) < eps {
		// Equal speeds: linear equation b*t + c = 0.
		if math.Abs(b) < eps {
			return 0, false
		}
		t := -c / b
		if t <= 0 {
			return 0, false
		}

		return t, true
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}

	return 0, false
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
