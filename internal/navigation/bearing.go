package navigation

// CardinalDirection is one of the eight compass sectors.
type CardinalDirection int

const (
	North CardinalDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String returns the short compass label for the sector.
func (d CardinalDirection) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Cardinal classifies a bearing into one of eight 45-degree sectors centered
// on the compass points. A bearing exactly on a sector boundary rounds to
// the clockwise sector: Cardinal(22.5) is NE, not N.
func Cardinal(bearingDeg float64) CardinalDirection {
	// Rotating by +22.5 puts [0,45) on North and makes the boundary land in
	// the clockwise sector.
	h := NormalizeAngle(bearingDeg + 22.5)

	return CardinalDirection(int(h / 45))
}

// BearingResult is the output of ComputeBearing. Pure function output with
// no identity; recomputed on every call, never cached.
type BearingResult struct {
	TrueBearing     float64           `json:"true_bearing"`
	MagneticBearing *float64          `json:"magnetic_bearing,omitempty"` // present only when a declination was supplied
	DistanceKm      float64           `json:"distance_km"`
	Cardinal        CardinalDirection `json:"-"`
}

// ComputeBearing returns distance, initial bearing, and cardinal sector from
// observer toward target. Fails with ErrDegenerateBearing for coincident
// points and ErrInvalidCoordinate for out-of-range inputs.
func ComputeBearing(observer, target GeoCoordinate) (BearingResult, error) {
	dist, err := Distance(observer, target)
	if err != nil {
		return BearingResult{}, err
	}

	brng, err := InitialBearing(observer, target)
	if err != nil {
		return BearingResult{}, err
	}

	return BearingResult{
		TrueBearing: brng,
		DistanceKm:  dist,
		Cardinal:    Cardinal(brng),
	}, nil
}

// ToMagnetic converts a true bearing to a magnetic bearing given a signed
// declination (east positive, west negative). The engine never looks a
// declination up; the caller supplies it. Declination 0 is a valid no-op.
func ToMagnetic(trueBearing, declination float64) float64 {
	return NormalizeAngle(trueBearing - declination)
}

// RelativeBearing returns the target bearing relative to the current
// heading in (-180,180]. Zero means dead ahead, positive means turn right.
func RelativeBearing(targetBearing, currentHeading float64) float64 {
	return SignedDelta(targetBearing, currentHeading)
}

// TrackError returns the signed deviation of the actual track from the
// desired track, in (-180,180].
func TrackError(desiredTrack, actualTrack float64) float64 {
	return SignedDelta(desiredTrack, actualTrack)
}
