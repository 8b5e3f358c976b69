package repulsion

import "github.com/arborcrest/frlayout/geom"

// epsilon is the minimum distance the repulsive-force formula will treat
// two points as being apart. Below it, d and delta are clamped so that
// k²/d² never diverges for coincident or near-coincident positions.
const epsilon = 1e-4

// applyEpsGuard returns (delta, d) unchanged unless d < epsilon, in which
// case it returns the canonical clamped pair delta = (1e-4, 0), d = 1e-4. This must
// be applied identically by BruteForce's pairwise loop and BarnesHut's cell
// interaction so the two strategies agree on every degenerate case.
func applyEpsGuard(delta geom.Point, d float64) (geom.Point, float64) {
	if d < epsilon {
		return geom.Point{X: epsilon, Y: 0}, epsilon
	}
	return delta, d
}
