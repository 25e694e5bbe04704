package game

import "math"

// Point is an integer pixel position in world or screen space.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the bearing from p to q. Screen space: +Y points down, so
// a positive angle turns clockwise on screen.
func (p Point) AngleTo(q Point) Angle {
	return Angle(math.Atan2(float64(q.Y-p.Y), float64(q.X-p.X)))
}

// PointFromDistanceAndAngle moves p by distance along angle and snaps the
// result onto the pixel grid. The second value is the part of distance that
// the snapped point did not cover; movers carry it into the next frame so
// sub-pixel speeds still add up.
//
// Each axis rounds to the nearest pixel unless that would cover more than
// distance, in which case both axes truncate toward p. The returned carry is
// therefore always in [0, √2). A non-positive or NaN distance, or a NaN
// angle, leaves p where it is with no carry.
func (p Point) PointFromDistanceAndAngle(distance float64, angle Angle) (Point, float64) {
	if !(distance > 0) || angle.IsNaN() {
		return p, 0
	}
	dx := distance * math.Cos(float64(angle))
	dy := distance * math.Sin(float64(angle))
	np := Point{X: p.X + int(math.Round(dx)), Y: p.Y + int(math.Round(dy))}
	if p.Distance(np) > distance {
		np = Point{X: p.X + int(dx), Y: p.Y + int(dy)}
	}
	return np, distance - p.Distance(np)
}

// Scatter returns p offset by a random amount in [-radius, radius] on each axis.
func (p Point) Scatter(rng *Random, radius int) Point {
	return Point{
		X: p.X + rng.Range(-radius, radius),
		Y: p.Y + rng.Range(-radius, radius),
	}
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned pixel rectangle anchored at its top-left corner.
type Rect struct {
	Min  Point
	W, H int
}

// NewRect builds a rectangle from a corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, W: w, H: h}
}

// BottomRight returns the last pixel inside the rectangle (inclusive).
func (r Rect) BottomRight() Point {
	return Point{X: r.Min.X + r.W - 1, Y: r.Min.Y + r.H - 1}
}

// Center returns the middle pixel of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.W/2, Y: r.Min.Y + r.H/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.W && p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Min.X+o.W && o.Min.X < r.Min.X+r.W &&
		r.Min.Y < o.Min.Y+o.H && o.Min.Y < r.Min.Y+r.H
}

// Intersect returns the pixels r and o share. The result is empty (zero
// width or height) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)
	x1, y1 := min(r.Min.X+r.W, o.Min.X+o.W), min(r.Min.Y+r.H, o.Min.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{Min: Point{X: x0, Y: y0}}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Angle is a heading in radians.
type Angle float64

// AngleFromDegrees converts degrees to an Angle.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Radians returns the angle as a plain float.
func (a Angle) Radians() float64 { return float64(a) }

// Normalize wraps the angle into [0, 2π).
func (a Angle) Normalize() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// IsNaN reports whether the angle is not a number (zero-length pad vectors).
func (a Angle) IsNaN() bool { return math.IsNaN(float64(a)) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
