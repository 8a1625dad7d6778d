package geom

import "math"

// NoBound marks a clamp bound as absent.
var NoBound = math.NaN()

// Point is a position in 3D space. The zero value is the origin.
type Point struct {
	X float64
	Y float64
	Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return Point{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	dz := p1.Z - p2.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Interpolate returns the point a fraction pct of the way from p1 to p2
// (0 = p1, 1 = p2), component-wise including Z.
func Interpolate(p1, p2 Point, pct float64) Point {
	return Point{
		X: p1.X + (p2.X-p1.X)*pct,
		Y: p1.Y + (p2.Y-p1.Y)*pct,
		Z: p1.Z + (p2.Z-p1.Z)*pct,
	}
}

// Angle returns the direction from p1 to p2 in the XY plane, in degrees
// rounded to the nearest whole degree.
func Angle(p1, p2 Point) float64 {
	return math.Round(AngleRadians(p1, p2) * 180 / math.Pi)
}

// AngleRadians returns the direction from p1 to p2 in radians, unrounded.
func AngleRadians(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// Clamp limits v to [lo, hi]. A NaN bound (NoBound) leaves that side open.
func Clamp(v, lo, hi float64) float64 {
	if !math.IsNaN(lo) && v < lo {
		return lo
	}
	if !math.IsNaN(hi) && v > hi {
		return hi
	}
	return v
}
