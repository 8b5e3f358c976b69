package graph

import "errors"

// ErrNodeNotFound is returned by NodeByID and AddEdge when a referenced
// node id is not present in the graph.
var ErrNodeNotFound = errors.New("graph: node not found")

// ErrSelfLoop is returned by AddEdge when source and target are the same
// id. The data model in spec.md has no place for self-loops: an edge is an
// unordered pair of distinct node ids.
var ErrSelfLoop = errors.New("graph: self-loops are not supported")

// ErrInvalidProbability is returned by ErdosRenyi when p lies outside
// [0, 1].
var ErrInvalidProbability = errors.New("graph: probability must lie in [0, 1]")

// ErrTooFewNodes is returned by ErdosRenyi when n < 1.
var ErrTooFewNodes = errors.New("graph: node count must be at least 1")
