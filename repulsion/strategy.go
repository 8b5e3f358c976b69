package repulsion

import "github.com/arborcrest/frlayout/graph"

// Strategy computes the repulsive component of one layout iteration:
// given the current node sequence and the optimal-distance scalar k, it
// adds a force vector into every node's Displacement field. Strategy
// implementations never reset Displacement themselves — that is
// LayoutEngine's job as step 1 of its iteration — and never mutate
// Position or graph topology.
type Strategy interface {
	ComputeRepulsive(nodes []*graph.Node, k float64)
}
