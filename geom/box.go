package geom

import "math"

// Box is an axis-aligned rectangle described by its center and half-extents.
// A Box is a value type: all operations return a new Box rather than
// mutating the receiver, which is what lets the quadtree hand out child
// boxes freely without aliasing concerns.
type Box struct {
	Center       Point
	HalfW, HalfH float64
}

// NewBox builds a Box from center and half-extents. HalfW and HalfH are not
// validated here; callers that need strictly positive extents (the
// quadtree's root) check that themselves so the error can carry call-site
// context.
func NewBox(center Point, halfW, halfH float64) Box {
	return Box{Center: center, HalfW: halfW, HalfH: halfH}
}

// FromBounds builds the smallest Box covering [minX,maxX] x [minY,maxY],
// expanded by margin on every side so that points exactly on the tight
// bounding rectangle end up strictly interior rather than on the boundary.
func FromBounds(minX, maxX, minY, maxY, margin float64) Box {
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	halfW := (maxX-minX)/2 + margin
	halfH := (maxY-minY)/2 + margin
	return Box{Center: Point{X: cx, Y: cy}, HalfW: halfW, HalfH: halfH}
}

// Contains reports whether p lies within the closed rectangle [cx-halfW,
// cx+halfW] x [cy-halfH, cy+halfH].
func (b Box) Contains(p Point) bool {
	return p.X >= b.Center.X-b.HalfW && p.X <= b.Center.X+b.HalfW &&
		p.Y >= b.Center.Y-b.HalfH && p.Y <= b.Center.Y+b.HalfH
}

// Quadrant classifies p against b's center using the (x>=cx, y>=cy) pair.
// It does not require Contains(p); callers that need a contained point
// route through the boundary guard in package quadtree instead.
func (b Box) Quadrant(p Point) Quadrant {
	switch {
	case p.X >= b.Center.X && p.Y >= b.Center.Y:
		return NE
	case p.X < b.Center.X && p.Y >= b.Center.Y:
		return NW
	case p.X < b.Center.X && p.Y < b.Center.Y:
		return SW
	default:
		return SE
	}
}

// Child returns the sub-box for quadrant q: half the extents of b, centered
// at b's center offset by (+-halfW/2, +-halfH/2) per the NE/NW/SW/SE
// convention. Floating-point rounding can put a point just outside the
// child Contains() would nominally assign it to; the quadtree's boundary
// guard (not this method) is responsible for recovering from that.
func (b Box) Child(q Quadrant) Box {
	hw := b.HalfW / 2
	hh := b.HalfH / 2
	switch q {
	case NE:
		return Box{Center: Point{X: b.Center.X + hw, Y: b.Center.Y + hh}, HalfW: hw, HalfH: hh}
	case NW:
		return Box{Center: Point{X: b.Center.X - hw, Y: b.Center.Y + hh}, HalfW: hw, HalfH: hh}
	case SW:
		return Box{Center: Point{X: b.Center.X - hw, Y: b.Center.Y - hh}, HalfW: hw, HalfH: hh}
	default: // SE
		return Box{Center: Point{X: b.Center.X + hw, Y: b.Center.Y - hh}, HalfW: hw, HalfH: hh}
	}
}

// Size returns the box's longest side (2*max(halfW,halfH)), the "s" in the
// Barnes-Hut s/d acceptance criterion.
func (b Box) Size() float64 {
	return 2 * math.Max(b.HalfW, b.HalfH)
}

// Quadrants lists the canonical traversal order NE, NW, SW, SE, for callers
// that need to iterate all four without hardcoding the constants again.
func Quadrants() [numQuadrants]Quadrant {
	return [numQuadrants]Quadrant{NE, NW, SW, SE}
}
