package geom

import "math"

// Point is a location in the score's rendered pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box with its origin at the top-left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p falls on or inside r. Points exactly on an
// edge count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Distance returns 0 when p is inside r, otherwise the euclidean distance
// from p to the nearest point of r. Outside the rectangle this is the
// hypotenuse of the per-axis overshoots, so points diagonal to a corner
// measure to the corner rather than to an edge extension.
func (r Rect) Distance(p Point) float64 {
	dx := overshoot(p.X, r.X, r.Right())
	dy := overshoot(p.Y, r.Y, r.Bottom())
	return math.Hypot(dx, dy)
}

// overshoot is how far v lies outside [lo, hi], 0 when within.
func overshoot(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	}
	return 0
}
