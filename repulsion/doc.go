// Package repulsion implements the two interchangeable repulsive-force
// strategies the layout core delegates to on every iteration: BruteForce,
// an exact O(|V|²) reference, and BarnesHut, an O(|V| log |V|)
// approximation built on package quadtree. Both strategies accumulate a
// net repulsive force into every node's Displacement field given the same
// formula and the same ε-guard, and are required to agree exactly in the
// limit θ → 0.
//
// Strategy is the capability LayoutEngine holds and swaps via a setter;
// neither strategy ever touches graph topology or node ids, only the
// Position (read) and Displacement (read-modify-write) fields.
package repulsion
