// Package geometry validates sectional boundary topology: rings must close,
// must not self-intersect, and sibling sections must not overlap. The checks
// are advisory; they produce a report for the examiner rather than gating a
// transition.
package geometry

import "math"

// ClosureTolerance is the maximum distance between the first and last vertex
// of a ring that still counts as closed.
const ClosureTolerance = 1e-6

// Point is a planar survey coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ring is a section boundary: an ordered vertex list where the last vertex
// repeats the first.
type Ring []Point

// IsClosed reports whether the ring's first and last vertices coincide
// within tolerance. Rings with fewer than four vertices cannot describe a
// closed polygon.
func (r Ring) IsClosed() bool {
	if len(r) < 4 {
		return false
	}
	first, last := r[0], r[len(r)-1]
	return math.Hypot(first.X-last.X, first.Y-last.Y) <= ClosureTolerance
}

// SelfIntersections returns every point where non-adjacent edges of the ring
// cross.
func (r Ring) SelfIntersections() []Point {
	var out []Point
	n := len(r) - 1 // closed ring: last vertex repeats the first
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// skip adjacent edges, including the closing wrap-around pair
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if p, ok := segmentIntersection(r[i], r[i+1], r[j], r[j+1]); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// Overlaps reports whether two closed rings overlap: edges crossing, or one
// ring contained in the other.
func (r Ring) Overlaps(other Ring) bool {
	for i := 0; i < len(r)-1; i++ {
		for j := 0; j < len(other)-1; j++ {
			if _, ok := segmentIntersection(r[i], r[i+1], other[j], other[j+1]); ok {
				return true
			}
		}
	}
	if len(r) > 0 && other.contains(r[0]) {
		return true
	}
	if len(other) > 0 && r.contains(other[0]) {
		return true
	}
	return false
}

// Area returns the unsigned area enclosed by the ring (shoelace formula).
func (r Ring) Area() float64 {
	if len(r) < 4 {
		return 0
	}
	var twice float64
	for i := 0; i < len(r)-1; i++ {
		twice += r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
	}
	return math.Abs(twice) / 2
}

// contains reports whether p lies strictly inside the ring (ray casting).
func (r Ring) contains(p Point) bool {
	inside := false
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// segmentIntersection returns the crossing point of two segments when they
// properly intersect. Touching at shared endpoints does not count: adjacent
// parcels legitimately share boundary vertices.
func segmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1x, d1y := a2.X-a1.X, a2.Y-a1.Y
	d2x, d2y := b2.X-b1.X, b2.Y-b1.Y
	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, false // parallel or collinear
	}

	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	u := ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / denom

	const eps = 1e-9
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, false
	}
	return Point{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, true
}
