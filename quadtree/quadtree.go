package quadtree

import "github.com/arborcrest/frlayout/geom"

// defaultCapacity is the initial backing-array size used when a caller
// passes expectedCapacity <= 0.
const defaultCapacity = 64

// QuadTree is a pool-allocated point-region quadtree rooted at a
// caller-supplied bounding box. The zero value is not usable; construct one
// with New.
type QuadTree struct {
	cells []cell
}

// New allocates a QuadTree rooted at bounds. expectedCapacity pre-sizes the
// backing slice (in cells, not points) to avoid early reallocation; pass 0
// to accept a small default.
//
// Complexity: O(1).
func New(bounds geom.Box, expectedCapacity int) *QuadTree {
	if expectedCapacity <= 0 {
		expectedCapacity = defaultCapacity
	}
	t := &QuadTree{cells: make([]cell, 0, expectedCapacity)}
	t.cells = append(t.cells, cell{bounds: bounds, children: emptyChildren()})
	return t
}

// Reset clears the tree back to a single root cell with the given bounds,
// reusing the existing backing array. This is the operation that makes
// per-iteration rebuilds cheap: no allocation happens unless a later
// Insert subdivides past the array's existing capacity.
//
// Complexity: O(1) amortized.
func (t *QuadTree) Reset(bounds geom.Box) {
	t.cells = t.cells[:0]
	t.cells = append(t.cells, cell{bounds: bounds, children: emptyChildren()})
}

// Root returns the index of the root cell (always 0 for a freshly
// constructed or freshly Reset tree).
func (t *QuadTree) Root() int { return 0 }

// NumCells reports how many cells are currently live in the pool.
func (t *QuadTree) NumCells() int { return len(t.cells) }

// IsLeaf reports whether cell i has no children.
func (t *QuadTree) IsLeaf(i int) bool { return t.cells[i].children[geom.NE] == noChild }

// TotalMass returns the number of points inserted under cell i.
func (t *QuadTree) TotalMass(i int) float64 { return t.cells[i].totalMass }

// CenterOfMass returns the running arithmetic mean of positions inserted
// under cell i.
func (t *QuadTree) CenterOfMass(i int) geom.Point { return t.cells[i].centerOfMass }

// Bounds returns cell i's bounding box.
func (t *QuadTree) Bounds(i int) geom.Box { return t.cells[i].bounds }

// Children returns cell i's four child indices in NE, NW, SW, SE order.
// The result is only meaningful when !IsLeaf(i); for a leaf every slot is
// noChild (-1).
func (t *QuadTree) Children(i int) [4]int { return t.cells[i].children }

// Occupants returns the points stored directly at leaf i: empty for an
// unoccupied leaf, length 1 for the common case, and possibly more when
// coincident points forced a bucket leaf at maxDepth. The returned slice is
// a direct view into the tree's storage and must be treated as read-only
// and only valid until the next Insert or Reset.
func (t *QuadTree) Occupants(i int) []Occupant { return t.cells[i].occupants }

// Insert adds a point at pos tagged with id. pos must lie within the
// current root bounds (ErrOutOfBounds otherwise). After Insert returns, the
// invariants in spec.md section 3 hold: totalMass/centerOfMass are updated
// along the full root-to-leaf path, and the point occupies exactly one leaf
// whose bounds contain it.
//
// Complexity: O(depth), depth being O(log n) except for adversarial
// coincident-point input, which is bounded by maxDepth.
func (t *QuadTree) Insert(pos geom.Point, id uint32) error {
	if !t.cells[0].bounds.Contains(pos) {
		return ErrOutOfBounds
	}
	t.insertAt(0, pos, id, 0)
	return nil
}

// insertAt performs steps 1-3 of the insertion algorithm in spec.md 4.2.
// It never retains a *cell across a call that may append to t.cells
// (subdivide); every access re-indexes through t.cells so stale pointers
// from a prior slice backing array are never read.
func (t *QuadTree) insertAt(i int, pos geom.Point, id uint32, depth int) {
	t.updateAggregate(i, pos)

	if !t.IsLeaf(i) {
		t.routeInsert(i, pos, id, depth+1)
		return
	}

	if depth >= maxDepth {
		t.cells[i].occupants = append(t.cells[i].occupants, Occupant{Pos: pos, ID: id})
		return
	}

	if len(t.cells[i].occupants) == 0 {
		t.cells[i].occupants = append(t.cells[i].occupants, Occupant{Pos: pos, ID: id})
		return
	}

	// Leaf already holds a point: subdivide and push both points down.
	existing := t.cells[i].occupants[0]
	t.cells[i].occupants = nil
	t.subdivide(i)
	t.routeInsert(i, existing.Pos, existing.ID, depth+1)
	t.routeInsert(i, pos, id, depth+1)
}

// updateAggregate applies the online mean update
// mu_{n+1} = (mu_n*n + p)/(n+1) to cell i's center of mass and total mass.
func (t *QuadTree) updateAggregate(i int, pos geom.Point) {
	c := &t.cells[i]
	n := c.totalMass
	newN := n + 1
	c.centerOfMass = geom.Point{
		X: (c.centerOfMass.X*n + pos.X) / newN,
		Y: (c.centerOfMass.Y*n + pos.Y) / newN,
	}
	c.totalMass = newN
}

// subdivide appends four fresh child cells to the pool, derived from cell
// i's bounds via Box.Child, and wires them into cell i's children array.
func (t *QuadTree) subdivide(i int) {
	base := t.cells[i].bounds // copy: safe to read after the appends below
	var children [4]int
	for _, q := range geom.Quadrants() {
		idx := len(t.cells)
		t.cells = append(t.cells, cell{bounds: base.Child(q), children: emptyChildren()})
		children[q] = idx
	}
	t.cells[i].children = children
}

// routeInsert sends (pos,id) into the child of cell i that should contain
// it, applying the boundary guard from spec.md 4.2: if the nominal child
// (by Box.Quadrant) does not actually Contain pos due to floating-point
// rounding, the other three siblings are scanned in canonical order for one
// that does.
func (t *QuadTree) routeInsert(i int, pos geom.Point, id uint32, depth int) {
	b := t.cells[i].bounds
	q := b.Quadrant(pos)
	childIdx := t.cells[i].children[q]

	if !t.cells[childIdx].bounds.Contains(pos) {
		childIdx = t.findContainingSibling(i, q, pos)
	}

	t.insertAt(childIdx, pos, id, depth)
}

// findContainingSibling scans cell i's children other than skip, in
// canonical NE/NW/SW/SE order, for one whose bounds contain pos. If none
// does (only possible under pathological rounding at the edge of machine
// precision) it falls back to the nominal child so insertion always
// terminates.
func (t *QuadTree) findContainingSibling(i int, skip geom.Quadrant, pos geom.Point) int {
	for _, q := range geom.Quadrants() {
		if q == skip {
			continue
		}
		ci := t.cells[i].children[q]
		if t.cells[ci].bounds.Contains(pos) {
			return ci
		}
	}
	return t.cells[i].children[skip]
}
