package quadtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborcrest/frlayout/geom"
	"github.com/arborcrest/frlayout/quadtree"
)

func rootBox() geom.Box {
	return geom.NewBox(geom.Point{X: 50, Y: 50}, 50, 50)
}

func TestInsert_OutOfBounds(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	err := tr.Insert(geom.Point{X: 1000, Y: 1000}, 1)
	assert.ErrorIs(t, err, quadtree.ErrOutOfBounds)
}

// TestMassConservation covers testable property 5: after inserting n
// points, root.totalMass == n and root.centerOfMass is their mean.
func TestMassConservation(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	pts := []geom.Point{
		{X: 1, Y: 1}, {X: 99, Y: 1}, {X: 1, Y: 99}, {X: 99, Y: 99},
		{X: 50, Y: 50}, {X: 25, Y: 75}, {X: 75, Y: 25},
	}
	var sumX, sumY float64
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, uint32(i)))
		sumX += p.X
		sumY += p.Y
	}
	root := tr.Root()
	assert.InDelta(t, float64(len(pts)), tr.TotalMass(root), 1e-9)
	com := tr.CenterOfMass(root)
	assert.InDelta(t, sumX/float64(len(pts)), com.X, 1e-9)
	assert.InDelta(t, sumY/float64(len(pts)), com.Y, 1e-9)
}

// findLeafContaining walks the tree looking for the leaf whose bounds
// contain p and whose occupants include id; used by TestInvariant_LeafContainsPoint.
func findLeafContaining(t *testing.T, tr *quadtree.QuadTree, idx int, p geom.Point, id uint32) bool {
	t.Helper()
	if tr.IsLeaf(idx) {
		if !tr.Bounds(idx).Contains(p) {
			return false
		}
		for _, occ := range tr.Occupants(idx) {
			if occ.ID == id {
				return true
			}
		}
		return false
	}
	for _, child := range tr.Children(idx) {
		if findLeafContaining(t, tr, child, p, id) {
			return true
		}
	}
	return false
}

// TestInvariant_LeafContainsPoint covers testable property 6: every
// inserted (pos,id) appears in exactly one leaf whose bounds contain pos.
func TestInvariant_LeafContainsPoint(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	pts := []geom.Point{
		{X: 10, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}, {X: 90, Y: 10},
		{X: 33, Y: 67}, {X: 67, Y: 33}, {X: 50, Y: 50},
	}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, uint32(i)))
	}
	for i, p := range pts {
		assert.True(t, findLeafContaining(t, tr, tr.Root(), p, uint32(i)),
			"point %d (%v) not found in a containing leaf", i, p)
	}
}

// TestScenarioS6_BoundaryAndCenter inserts points at cell corners and at the
// exact center of the root, matching spec.md scenario S6.
func TestScenarioS6_BoundaryAndCenter(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 100, Y: 0},
		{X: 50, Y: 50},
	}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, uint32(i)))
		assert.True(t, findLeafContaining(t, tr, tr.Root(), p, uint32(i)))
	}
	assert.InDelta(t, float64(len(pts)), tr.TotalMass(tr.Root()), 1e-9)
}

// TestCoincidentPoints_TerminatesAndBuckets covers the coincident-point
// termination policy: many distinct ids at the same position must not hang,
// and must all be recoverable as occupants of the same (bucket) leaf.
func TestCoincidentPoints_TerminatesAndBuckets(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	p := geom.Point{X: 42, Y: 42}
	const n = 10
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(p, uint32(i)))
	}
	assert.InDelta(t, float64(n), tr.TotalMass(tr.Root()), 1e-9)
	for i := 0; i < n; i++ {
		assert.True(t, findLeafContaining(t, tr, tr.Root(), p, uint32(i)))
	}
}

func TestReset_ReusesStorageAndClearsState(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	for i := 0; i < 20; i++ {
		require.NoError(t, tr.Insert(geom.Point{X: float64(i), Y: float64(i)}, uint32(i)))
	}
	cellsBefore := tr.NumCells()
	assert.Greater(t, cellsBefore, 1)

	tr.Reset(rootBox())
	assert.Equal(t, 1, tr.NumCells())
	assert.InDelta(t, 0.0, tr.TotalMass(tr.Root()), 1e-12)
	assert.True(t, tr.IsLeaf(tr.Root()))
	assert.Empty(t, tr.Occupants(tr.Root()))

	require.NoError(t, tr.Insert(geom.Point{X: 5, Y: 5}, 99))
	assert.InDelta(t, 1.0, tr.TotalMass(tr.Root()), 1e-12)
}

func TestSingleLeaf_NoSubdivisionForOnePoint(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	require.NoError(t, tr.Insert(geom.Point{X: 5, Y: 5}, 1))
	assert.Equal(t, 1, tr.NumCells())
	assert.True(t, tr.IsLeaf(tr.Root()))
}

func TestCenterOfMass_NotNaN(t *testing.T) {
	tr := quadtree.New(rootBox(), 0)
	require.NoError(t, tr.Insert(geom.Point{X: 0, Y: 0}, 1))
	require.NoError(t, tr.Insert(geom.Point{X: 100, Y: 100}, 2))
	com := tr.CenterOfMass(tr.Root())
	assert.False(t, math.IsNaN(com.X))
	assert.False(t, math.IsNaN(com.Y))
}
