package repulsion

import "github.com/arborcrest/frlayout/graph"

// BruteForce is the exact O(|V|²) reference repulsive strategy: every
// unordered pair of nodes repels the other by k²/d² along their
// separating direction. The zero value is ready to use.
type BruteForce struct{}

// ComputeRepulsive iterates pairs (i, j), i < j, in the ascending index
// order of nodes (the slice order LayoutEngine hands it, which is the
// graph's stable node sequence), adding the force to node i's
// displacement and subtracting it from node j's per Newton's third law.
func (BruteForce) ComputeRepulsive(nodes []*graph.Node, k float64) {
	kSq := k * k
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			u, v := nodes[i], nodes[j]
			delta := u.Position.Sub(v.Position)
			d := delta.Length()
			delta, d = applyEpsGuard(delta, d)

			magnitude := kSq / (d * d)
			force := delta.Scale(magnitude / d)

			u.Displacement = u.Displacement.Add(force)
			v.Displacement = v.Displacement.Sub(force)
		}
	}
}
