package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/layout"
	"github.com/arborcrest/frlayout/repulsion"
)

func twoNodeGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddNode(0)
	g.AddNode(1)
	require.NoError(t, g.AddEdge(0, 1))
	return g
}

func TestNew_RejectsInvalidFrame(t *testing.T) {
	_, err := layout.New(0, 100, 1)
	assert.ErrorIs(t, err, layout.ErrInvalidFrameExtents)

	_, err = layout.New(100, 100, 0)
	assert.ErrorIs(t, err, layout.ErrInvalidScalingConstant)
}

func TestInitialize_EmptyGraphFails(t *testing.T) {
	e, err := layout.New(100, 100, 1)
	require.NoError(t, err)
	err = e.Initialize(graph.New(), 1)
	assert.ErrorIs(t, err, layout.ErrEmptyGraph)
}

func TestInitialize_PositionsWithinFrame(t *testing.T) {
	e, err := layout.New(100, 100, 1)
	require.NoError(t, err)
	g := graph.New()
	for i := uint32(0); i < 20; i++ {
		g.AddNode(i)
	}
	require.NoError(t, e.Initialize(g, 42))
	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.LessOrEqual(t, n.Position.X, 100.0)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.LessOrEqual(t, n.Position.Y, 100.0)
	}
}

// TestScenarioS1_TwoNodeRestLength mirrors spec.md S1: after many steps,
// the two connected nodes should settle to roughly their optimal distance.
func TestScenarioS1_TwoNodeRestLength(t *testing.T) {
	g := twoNodeGraph(t)
	e, err := layout.New(100, 100, 1)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 7))
	e.SetTemperature(10)
	require.NoError(t, e.SetCoolingRate(0.95))

	for i := 0; i < 500; i++ {
		require.NoError(t, e.Step(g))
	}

	k := e.OptimalDistance()
	assert.InDelta(t, math.Sqrt(10000.0/2), k, 1e-9)

	nodes := g.Nodes()
	dist := nodes[0].Position.Sub(nodes[1].Position).Length()
	assert.GreaterOrEqual(t, dist, 0.5*k)
	assert.LessOrEqual(t, dist, 1.5*k)
}

// TestScenarioS2_EmptyEdgeSetStaysInFrame covers S2: with no edges, nodes
// drift apart under pure repulsion but remain inside the frame.
func TestScenarioS2_EmptyEdgeSetStaysInFrame(t *testing.T) {
	g := graph.New()
	for i := uint32(0); i < 10; i++ {
		g.AddNode(i)
	}
	e, err := layout.New(200, 200, 1)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 3))

	for i := 0; i < 300; i++ {
		require.NoError(t, e.Step(g))
		for _, n := range g.Nodes() {
			assert.GreaterOrEqual(t, n.Position.X, 0.0)
			assert.LessOrEqual(t, n.Position.X, 200.0)
			assert.GreaterOrEqual(t, n.Position.Y, 0.0)
			assert.LessOrEqual(t, n.Position.Y, 200.0)
		}
	}
	assert.LessOrEqual(t, e.Temperature(), 0.2)
}

// TestScenarioS5_CoincidentPointsSeparate covers S5: two coincident nodes
// with no edges separate after a single step, each moving a finite amount
// bounded by the current temperature.
func TestScenarioS5_CoincidentPointsSeparate(t *testing.T) {
	g := graph.New()
	g.AddNode(0)
	g.AddNode(1)
	e, err := layout.New(100, 100, 1)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 1))

	nodes := g.Nodes()
	nodes[0].Position = nodes[1].Position // force coincidence
	start := nodes[0].Position

	t0 := e.Temperature()
	require.NoError(t, e.Step(g))

	moved0 := nodes[0].Position.Sub(nodes[1].Position).Length()
	assert.Greater(t, moved0, 0.0)
	assert.False(t, math.IsNaN(nodes[0].Position.X))
	assert.LessOrEqual(t, nodes[0].Position.Sub(start).Length(), t0+1e-9)
}

func TestProperty_CoolingMonotonicity(t *testing.T) {
	g := twoNodeGraph(t)
	e, err := layout.New(100, 100, 1)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 1))
	require.NoError(t, e.SetCoolingRate(0.9))

	prev := e.Temperature()
	for i := 0; i < 50; i++ {
		require.NoError(t, e.Step(g))
		cur := e.Temperature()
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, e.TMin())
		prev = cur
	}
}

func TestProperty_Determinism(t *testing.T) {
	run := func() ([]float64, []float64) {
		g := graph.New()
		for i := uint32(0); i < 15; i++ {
			g.AddNode(i)
		}
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 2))
		e, err := layout.New(150, 150, 1)
		require.NoError(t, err)
		require.NoError(t, e.Initialize(g, 99))

		energies := make([]float64, 0, 30)
		for i := 0; i < 30; i++ {
			require.NoError(t, e.Step(g))
			energies = append(energies, e.KineticEnergy())
		}
		positions := make([]float64, 0, 30)
		for _, n := range g.Nodes() {
			positions = append(positions, n.Position.X, n.Position.Y)
		}
		return positions, energies
	}

	p1, e1 := run()
	p2, e2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, e1, e2)
}

// TestScenarioS3_BruteForceVsBarnesHutParity covers S3: with theta=0,
// BarnesHut must track BruteForce closely over many steps.
func TestScenarioS3_BruteForceVsBarnesHutParity(t *testing.T) {
	g, err := graph.ErdosRenyi(50, 0.15, 42)
	require.NoError(t, err)

	bf, err := layout.New(500, 500, 1)
	require.NoError(t, err)
	require.NoError(t, bf.Initialize(g, 7))

	gBH, err := graph.ErdosRenyi(50, 0.15, 42)
	require.NoError(t, err)
	bh, err := layout.New(500, 500, 1)
	require.NoError(t, err)
	bh.SetStrategy(repulsion.NewBarnesHut(0.0))
	require.NoError(t, bh.Initialize(gBH, 7))

	for step := 0; step < 200; step++ {
		require.NoError(t, bf.Step(g))
		require.NoError(t, bh.Step(gBH))

		nodesA := g.Nodes()
		nodesB := gBH.Nodes()
		for i := range nodesA {
			dx := math.Abs(nodesA[i].Position.X - nodesB[i].Position.X)
			dy := math.Abs(nodesA[i].Position.Y - nodesB[i].Position.Y)
			assert.LessOrEqual(t, dx, 1e-2, "step %d node %d X", step, i)
			assert.LessOrEqual(t, dy, 1e-2, "step %d node %d Y", step, i)
		}
	}
}

func TestConvergenceSignal_DecreasesOverTime(t *testing.T) {
	g, err := graph.ErdosRenyi(20, 0.2, 5)
	require.NoError(t, err)
	e, err := layout.New(200, 200, 1)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 11))

	require.NoError(t, e.Step(g))
	initial := e.KineticEnergy()

	var last float64
	for i := 0; i < 200; i++ {
		require.NoError(t, e.Step(g))
		last = e.KineticEnergy()
	}
	assert.Less(t, last, initial)
}
