// Package frlayout is a 2D force-directed graph layout engine implementing
// Fruchterman-Reingold with a pluggable repulsive-force strategy, including
// an O(|V| log |V|) Barnes-Hut approximation backed by a pool-allocated
// region quadtree.
//
// The engineering lives in three tightly coupled pieces, organized as
// subpackages:
//
//	geom/      — bounding boxes, points, the quadrant convention
//	quadtree/  — pool-allocated point-region quadtree
//	repulsion/ — BruteForce and BarnesHut RepulsiveStrategy implementations
//	layout/    — the LayoutEngine simulation loop itself
//
// Supporting packages cover what sits around the core:
//
//	graph/    — Node/Edge/Graph data model and the Erdos-Renyi generator
//	export/   — CSV emission of node positions, edges, and convergence series
//	metrics/  — Prometheus collectors for temperature, energy, step timing
//	cmd/frlayout/ — CLI driver with console progress reporting
//
//	go get github.com/arborcrest/frlayout
package frlayout
