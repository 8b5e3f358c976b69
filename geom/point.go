// Package geom provides the small set of 2D primitives shared by the
// quadtree, repulsion, and layout packages: points and axis-aligned bounding
// boxes, plus the quadrant convention every spatial routine in this module
// agrees on.
//
// Quadrant convention: NE=0, NW=1, SW=2, SE=3, selected by the pair
// (p.x >= center.x, p.y >= center.y). All tree-walk and recursion order in
// this module (insertion routing, Barnes-Hut child traversal) visits
// quadrants in this NE/NW/SW/SE order.
package geom

import "math"

// Quadrant identifies one of the four children of a BoundingBox.
type Quadrant int

// Canonical quadrant order. Every recursive walk over a BoundingBox's
// children (quadtree subdivision, Barnes-Hut traversal) uses this order so
// that two runs over identical input visit cells identically.
const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// numQuadrants is the fan-out of every internal cell.
const numQuadrants = 4

// Point is a 2D coordinate in frame space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Finite reports whether both components are finite (no NaN or +-Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
