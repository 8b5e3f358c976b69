package graph

import "github.com/arborcrest/frlayout/internal/rng"

// ErdosRenyi builds a G(n, p) random graph: n nodes with ids 0..n-1, and
// each of the C(n, 2) unordered pairs included as an edge independently
// with probability p. The Bernoulli trials are drawn in ascending
// (i, j) pair order, i < j, from a stream derived from seed via
// rng.Derive(seed, rng.StreamGraphSampling) — the same derivation scheme
// the teacher library uses to keep independent randomized phases of a run
// reproducible from one top-level seed.
//
// n must be at least 1 (ErrTooFewNodes) and p must lie in [0, 1]
// (ErrInvalidProbability); p == 0 and p == 1 are valid and skip the RNG
// draws entirely (no edges, complete graph, respectively).
func ErdosRenyi(n int, p float64, seed int64) (*Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	g := New()
	for i := uint32(0); i < uint32(n); i++ {
		g.AddNode(i)
	}

	switch p {
	case 0:
		return g, nil
	case 1:
		for i := uint32(0); i < uint32(n); i++ {
			for j := i + 1; j < uint32(n); j++ {
				_ = g.AddEdge(i, j)
			}
		}
		return g, nil
	}

	r := rng.Derive(seed, rng.StreamGraphSampling)
	for i := uint32(0); i < uint32(n); i++ {
		for j := i + 1; j < uint32(n); j++ {
			if r.Float64() < p {
				_ = g.AddEdge(i, j)
			}
		}
	}
	return g, nil
}
