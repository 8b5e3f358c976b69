package repulsion

import (
	"github.com/arborcrest/frlayout/geom"
	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/quadtree"
)

// boundsMargin expands the tight bounding box over current node positions
// before each rebuild, so that boundary points are strictly interior to the
// root cell (spec.md 4.3.2 step 1).
const boundsMargin = 1.0

// BarnesHut is the O(|V| log |V|) approximate repulsive strategy: it
// rebuilds a quadtree.QuadTree from current node positions on every call
// and, for each node, descends the tree accepting aggregated cells once
// s/d < theta.
//
// The QuadTree is held across calls (not reallocated) so that Reset's
// amortized O(1) rebuild is what actually runs on the hot path; only a
// subdivision past the pool's existing capacity allocates.
type BarnesHut struct {
	theta float64
	tree  *quadtree.QuadTree
}

// NewBarnesHut constructs a strategy with acceptance parameter theta.
// theta = 0 forces full recursion to leaves (exact up to the self-exclusion
// test); the conventional setting is 0.5.
func NewBarnesHut(theta float64) *BarnesHut {
	return &BarnesHut{theta: theta}
}

// Theta returns the strategy's acceptance parameter.
func (s *BarnesHut) Theta() float64 { return s.theta }

// SetTheta updates the acceptance parameter for subsequent calls.
func (s *BarnesHut) SetTheta(theta float64) { s.theta = theta }

// ComputeRepulsive rebuilds the quadtree over nodes' current positions and
// accumulates, for every node, the Barnes-Hut approximation of its net
// repulsive force into its Displacement field.
func (s *BarnesHut) ComputeRepulsive(nodes []*graph.Node, k float64) {
	if len(nodes) == 0 {
		return
	}

	bounds := boundingBox(nodes)
	if s.tree == nil {
		s.tree = quadtree.New(bounds, len(nodes)*2)
	} else {
		s.tree.Reset(bounds)
	}
	for _, n := range nodes {
		// Positions are already validated finite and within [0,W]x[0,H] by
		// LayoutEngine, and bounds was derived from these same positions
		// plus a margin, so Insert cannot fail here.
		_ = s.tree.Insert(n.Position, n.ID)
	}

	kSq := k * k
	for _, v := range nodes {
		var force geom.Point
		s.descend(s.tree.Root(), v, kSq, &force)
		v.Displacement = v.Displacement.Add(force)
	}
}

// descend implements spec.md 4.3.2 step 3: the per-cell acceptance test,
// applied recursively in canonical NE, NW, SW, SE child order.
func (s *BarnesHut) descend(cellIdx int, v *graph.Node, kSq float64, acc *geom.Point) {
	mass := s.tree.TotalMass(cellIdx)
	if mass < 0.5 {
		return
	}

	com := s.tree.CenterOfMass(cellIdx)
	delta := v.Position.Sub(com)
	d := delta.Length()
	delta, d = applyEpsGuard(delta, d)

	isLeaf := s.tree.IsLeaf(cellIdx)
	if isLeaf {
		occupants := s.tree.Occupants(cellIdx)
		if len(occupants) == 1 && occupants[0].ID == v.ID {
			return
		}
	}

	size := s.tree.Bounds(cellIdx).Size()
	if isLeaf || size/d < s.theta {
		magnitude := mass * kSq / (d * d)
		*acc = acc.Add(delta.Scale(magnitude / d))
		return
	}

	for _, child := range s.tree.Children(cellIdx) {
		s.descend(child, v, kSq, acc)
	}
}

// boundingBox computes a tight box over nodes' positions and expands it by
// boundsMargin on every side, per spec.md 4.3.2 step 1.
func boundingBox(nodes []*graph.Node) geom.Box {
	minX, maxX := nodes[0].Position.X, nodes[0].Position.X
	minY, maxY := nodes[0].Position.Y, nodes[0].Position.Y
	for _, n := range nodes[1:] {
		if n.Position.X < minX {
			minX = n.Position.X
		}
		if n.Position.X > maxX {
			maxX = n.Position.X
		}
		if n.Position.Y < minY {
			minY = n.Position.Y
		}
		if n.Position.Y > maxY {
			maxY = n.Position.Y
		}
	}
	return geom.FromBounds(minX, maxX, minY, maxY, boundsMargin)
}
