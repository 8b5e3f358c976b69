package layout

import (
	"math"

	"github.com/arborcrest/frlayout/geom"
	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/internal/rng"
	"github.com/arborcrest/frlayout/repulsion"
)

// defaultTemperatureFactor sets the initial temperature to a fraction of
// the frame's largest dimension, a common Fruchterman-Reingold convention
// the spec leaves unpinned (it fixes T_min's default but not T0's).
const defaultTemperatureFactor = 0.1

// defaultCoolingRate and defaultTMin are the remaining defaults spec.md 3
// pins only partially: T_min's default of 1e-3 is explicit; alpha's default
// is chosen to match the cooling rate used in the spec's own two-node
// scenario (S1).
const (
	defaultCoolingRate = 0.95
	defaultTMin        = 1e-3

	// attractionSkipThreshold and applySkipThreshold are the two
	// independent epsilon thresholds spec.md 4.4 names for step 3
	// (attraction) and step 4 (apply), respectively. They are distinct
	// from repulsion's epsilon and from each other on purpose.
	attractionSkipThreshold = 1e-4
	applySkipThreshold      = 1e-6
)

// Engine owns Fruchterman-Reingold simulation state: frame size, the
// derived optimal distance k, the annealing temperature and its schedule,
// the last step's kinetic energy, and the repulsive strategy it delegates
// to. The zero value is not usable; construct one with New.
type Engine struct {
	w, h float64
	c    float64
	k    float64

	temperature float64
	coolingRate float64
	tMin        float64

	lastKineticEnergy float64

	strategy repulsion.Strategy
}

// New constructs an Engine for a W x H frame with scaling constant C.
// Both must be strictly positive. The engine starts with BruteForce as its
// repulsive strategy, a temperature derived from the frame size, the
// default cooling rate, and T_min = 1e-3.
func New(w, h, c float64) (*Engine, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidFrameExtents
	}
	if c <= 0 {
		return nil, ErrInvalidScalingConstant
	}
	return &Engine{
		w:           w,
		h:           h,
		c:           c,
		temperature: defaultTemperatureFactor * math.Max(w, h),
		coolingRate: defaultCoolingRate,
		tMin:        defaultTMin,
		strategy:    repulsion.BruteForce{},
	}, nil
}

// Temperature returns the current annealing temperature.
func (e *Engine) Temperature() float64 { return e.temperature }

// SetTemperature overrides the current temperature directly, bypassing the
// cooling schedule; useful for resuming a run or experimenting with reheats.
func (e *Engine) SetTemperature(t float64) { e.temperature = t }

// CoolingRate returns alpha, the per-step multiplicative cooling factor.
func (e *Engine) CoolingRate() float64 { return e.coolingRate }

// SetCoolingRate sets alpha; it must lie in (0, 1].
func (e *Engine) SetCoolingRate(alpha float64) error {
	if alpha <= 0 || alpha > 1 {
		return ErrInvalidCoolingRate
	}
	e.coolingRate = alpha
	return nil
}

// TMin returns the temperature floor the cooling schedule will not cross.
func (e *Engine) TMin() float64 { return e.tMin }

// SetTMin overrides the temperature floor.
func (e *Engine) SetTMin(tMin float64) { e.tMin = tMin }

// OptimalDistance returns k, the rest length Initialize derived from the
// frame area and node count.
func (e *Engine) OptimalDistance() float64 { return e.k }

// KineticEnergy returns the convergence signal recorded by the most recent
// Step: the sum, over all nodes, of the displacement magnitude actually
// applied (after T-clamping).
func (e *Engine) KineticEnergy() float64 { return e.lastKineticEnergy }

// SetStrategy swaps the repulsive strategy used by subsequent Step calls.
func (e *Engine) SetStrategy(s repulsion.Strategy) { e.strategy = s }

// Strategy returns the currently active repulsive strategy.
func (e *Engine) Strategy() repulsion.Strategy { return e.strategy }

// Initialize derives k from the frame area and node count, seeds a
// deterministic PRNG stream from seed, and samples every node's initial
// position uniformly over [0,W] x [0,H] in the graph's node-sequence order.
// lastKineticEnergy is reset to 0. A seed of 0 is used verbatim (it is a
// caller's job, not the engine's, to resolve "seed 0 means nondeterministic"
// via rng.SeedOrDefault before calling Initialize, since the core never
// reads ambient system state on its own).
func (e *Engine) Initialize(g *graph.Graph, seed int64) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	area := e.w * e.h
	e.k = e.c * math.Sqrt(area/float64(len(nodes)))

	r := rng.Derive(seed, rng.StreamInitialPosition)
	for _, n := range nodes {
		n.Position = geom.Point{
			X: r.Float64() * e.w,
			Y: r.Float64() * e.h,
		}
		n.Displacement = geom.Point{}
	}
	e.lastKineticEnergy = 0
	return nil
}

// Step runs exactly one Fruchterman-Reingold iteration against g, in the
// fixed order spec.md 4.4 requires: reset displacements, delegate
// repulsion to the strategy, accumulate attraction along every edge,
// clamp-and-apply to produce new positions, record kinetic energy, cool T.
//
// If any candidate position would be non-finite, Step returns
// ErrNonFiniteState and leaves every node's Position exactly as it was on
// entry: candidate positions are computed into a local buffer and only
// copied back after all of them pass a finiteness check.
func (e *Engine) Step(g *graph.Graph) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	// Step 1: reset.
	for _, n := range nodes {
		n.Displacement = geom.Point{}
	}

	// Step 2: repulsion.
	e.strategy.ComputeRepulsive(nodes, e.k)

	// Step 3: attraction.
	for _, edge := range g.Edges() {
		u, err := g.NodeByID(edge.Source)
		if err != nil {
			return err
		}
		v, err := g.NodeByID(edge.Target)
		if err != nil {
			return err
		}

		delta := u.Position.Sub(v.Position)
		d := delta.Length()
		if d < attractionSkipThreshold {
			continue
		}

		magnitude := (d * d) / e.k
		force := delta.Scale(magnitude / d)

		u.Displacement = u.Displacement.Sub(force)
		v.Displacement = v.Displacement.Add(force)
	}

	// Step 4: clamp and apply, buffered so a non-finite result leaves
	// positions untouched.
	candidates := make([]geom.Point, len(nodes))
	energy := 0.0
	for i, n := range nodes {
		if !n.Displacement.Finite() {
			return ErrNonFiniteState
		}
		l := n.Displacement.Length()
		next := n.Position
		if l > applySkipThreshold {
			c := math.Min(l, e.temperature)
			next = n.Position.Add(n.Displacement.Scale(c / l))
			energy += c
		}
		next.X = clamp(next.X, 0, e.w)
		next.Y = clamp(next.Y, 0, e.h)
		if !next.Finite() {
			return ErrNonFiniteState
		}
		candidates[i] = next
	}
	for i, n := range nodes {
		n.Position = candidates[i]
	}

	// Step 5: record.
	e.lastKineticEnergy = energy

	// Step 6: cool.
	e.temperature = math.Max(e.temperature*e.coolingRate, e.tMin)

	return nil
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
