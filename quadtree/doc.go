// Package quadtree implements a pool-allocated point-region quadtree: a
// spatial index over 2D points with unit-capacity leaves and an aggregated
// center-of-mass/total-mass per cell, used by package repulsion's
// Barnes-Hut strategy to approximate all-pairs repulsion in
// O(|V| log |V|).
//
// Cells live in a single flat slice addressed by integer index rather than
// as a pointer tree. This is both a performance decision (locality, no
// per-insert heap allocation for the tree shape itself) and a correctness
// constraint: Reset reuses the underlying storage, so cell indices are only
// valid between a Reset and the next Reset, and a caller must not retain a
// *QuadTree-derived index across a Reset.
//
// Coincident-point termination policy: this implementation bounds recursion
// depth (maxDepth). Beyond that depth a "leaf" may hold more than one
// occupant — a bucket of points that would otherwise subdivide forever. This
// is one of the two termination strategies spec.md allows (the other being a
// minimum cell size bound); callers that walk the tree (package repulsion)
// must treat a leaf's occupant list as zero, one, or many points rather than
// assuming exactly one.
package quadtree

import "github.com/arborcrest/frlayout/geom"

// maxDepth bounds recursion when points are coincident or within
// floating-point subdivision precision of each other. 32 halvings of a
// frame-sized box reaches sub-nanometer cell sizes for any realistic W/H, so
// in practice this bound is reached only by genuinely coincident points.
const maxDepth = 32

// noChild marks an absent child slot in cell.children.
const noChild = -1

// Occupant is a single point stored at a leaf: its position and the id of
// the graph node it came from.
type Occupant struct {
	Pos geom.Point
	ID  uint32
}

// cell is one pool-allocated node of the tree. A cell is a leaf iff
// children[geom.NE] == noChild; by construction all four children are
// allocated together, so checking one slot is sufficient.
type cell struct {
	bounds       geom.Box
	centerOfMass geom.Point
	totalMass    float64
	children     [4]int
	occupants    []Occupant // leaves only; nil/empty means unoccupied
}

func emptyChildren() [4]int {
	return [4]int{noChild, noChild, noChild, noChild}
}
