// Package graph provides the Node/Edge/Graph data model consumed by the
// layout core: an ordered sequence of unit-mass 2D nodes, a set of
// canonical undirected edges, and a symmetric adjacency index.
//
// It is adapted from the teacher library's core.Graph (thread-safe vertex
// and edge catalogs behind separate read-write locks) narrowed to exactly
// what spec.md's data model calls for: no edge weights, no directedness,
// no multigraphs, no self-loops. Node identity is a uint32 rather than a
// string, and every Node carries the Position/Displacement pair the layout
// engine mutates in place.
//
// Topology (which nodes and edges exist) is frozen for the duration of a
// layout run: the layout core only ever mutates Node.Position and
// Node.Displacement through the pointers returned by Nodes().
package graph
