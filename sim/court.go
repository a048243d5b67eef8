package sim

import "math"

// Court dimensions in feet (NBA regulation).
const (
	CourtLength = 94.0
	CourtWidth  = 50.0

	// Distance from the baseline to the center of the rim.
	basketBaselineOffset = 5.25

	// Arc distances. The corner three is shorter than the arc.
	threePointArc    = 23.75
	threePointCorner = 22.0
	cornerDepth      = 3.0 // feet from either sideline where the corner line applies

	rimRange      = 4.5
	paintRange    = 12.0
	shortMidRange = 16.0
)

// Point is a 2D court coordinate in feet. X runs baseline to baseline,
// Y sideline to sideline.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance to q in feet.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp returns p constrained to the court rectangle.
func (p Point) Clamp() Point {
	return Point{
		X: math.Min(CourtLength, math.Max(0, p.X)),
		Y: math.Min(CourtWidth, math.Max(0, p.Y)),
	}
}

// BasketFor returns the basket the given side attacks. The home team attacks
// the high-X basket; zone classification is therefore home/away-aware.
func BasketFor(homeOffense bool) Point {
	if homeOffense {
		return Point{X: CourtLength - basketBaselineOffset, Y: CourtWidth / 2}
	}
	return Point{X: basketBaselineOffset, Y: CourtWidth / 2}
}

// Zone classifies a shot location relative to the attacking basket.
type Zone int

const (
	ZoneRim Zone = iota
	ZonePaint
	ZoneShortMidRange
	ZoneLongMidRange
	ZoneThree
)

func (z Zone) String() string {
	switch z {
	case ZoneRim:
		return "rim"
	case ZonePaint:
		return "paint"
	case ZoneShortMidRange:
		return "short-mid"
	case ZoneLongMidRange:
		return "long-mid"
	case ZoneThree:
		return "three"
	default:
		return "unknown"
	}
}

// PointValue returns the field-goal value of a made shot from the zone.
func (z Zone) PointValue() int {
	if z == ZoneThree {
		return 3
	}
	return 2
}

// ClassifyZone maps a court location to its shot zone relative to the
// attacking basket.
func ClassifyZone(p Point, basket Point) Zone {
	dist := p.DistanceTo(basket)
	inCorner := p.Y < cornerDepth || p.Y > CourtWidth-cornerDepth

	switch {
	case dist >= threePointArc, inCorner && dist >= threePointCorner:
		return ZoneThree
	case dist < rimRange:
		return ZoneRim
	case dist < paintRange:
		return ZonePaint
	case dist < shortMidRange:
		return ZoneShortMidRange
	default:
		return ZoneLongMidRange
	}
}
