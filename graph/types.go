package graph

import (
	"sort"
	"sync"

	"github.com/arborcrest/frlayout/geom"
)

// Node is a single point in the layout: an immutable identity and a pair
// of mutable fields the layout core owns for the duration of a run.
// Position and Displacement start at the zero Point; LayoutEngine.Initialize
// is responsible for seeding Position before the first Step.
type Node struct {
	ID uint32

	// Position is the node's current coordinate. Only the layout core
	// writes this field once a run has started.
	Position geom.Point

	// Displacement accumulates the net force computed during one Step and
	// is reset to the zero Point at the start of every step.
	Displacement geom.Point
}

// Edge is an undirected pair of distinct node ids in canonical form:
// Source <= Target. Two edges compare equal under == iff they connect the
// same pair of nodes, which is what lets Edge serve directly as a map key.
type Edge struct {
	Source uint32
	Target uint32
}

func canonicalEdge(a, b uint32) Edge {
	if a <= b {
		return Edge{Source: a, Target: b}
	}
	return Edge{Source: b, Target: a}
}

// Graph is a frozen-topology node/edge catalog: an ordered sequence of
// nodes in insertion order, a canonical undirected edge set, and a
// symmetric adjacency index, guarded by independent read-write locks for
// the node and edge catalogs (mirroring the teacher library's core.Graph).
//
// A Graph is safe for concurrent read access once construction has
// finished; the layout core itself is single-threaded and does not rely on
// these locks for correctness, only for safe concurrent inspection (e.g.
// a metrics or export goroutine reading Nodes() while a run is idle between
// steps).
type Graph struct {
	muNodes sync.RWMutex
	nodes   []*Node
	index   map[uint32]int

	muEdges   sync.RWMutex
	edges     map[Edge]struct{}
	adjacency map[uint32]map[uint32]struct{}
}

// New returns an empty Graph ready for AddNode/AddEdge calls.
func New() *Graph {
	return &Graph{
		index:     make(map[uint32]int),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[uint32]map[uint32]struct{}),
	}
}

// AddNode inserts a node with the given id at the end of the node
// sequence. Re-adding an id already present is a no-op, mirroring the
// teacher library's idempotent AddVertex.
func (g *Graph) AddNode(id uint32) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id})
}

// HasNode reports whether id has been added to the graph.
func (g *Graph) HasNode(id uint32) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.index[id]
	return ok
}

// NodeByID returns the live *Node for id, or ErrNodeNotFound.
func (g *Graph) NodeByID(id uint32) (*Node, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return g.nodes[i], nil
}

// Nodes returns the node sequence in stable insertion order. The returned
// slice aliases the graph's own pointers: mutating a returned *Node's
// Position or Displacement is visible to every other holder, which is
// exactly the access pattern LayoutEngine relies on.
func (g *Graph) Nodes() []*Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}

// AddEdge inserts the undirected edge {u, v}. Both endpoints must already
// exist (ErrNodeNotFound otherwise); u == v is rejected with ErrSelfLoop.
// Adding an edge that already exists in canonical form is a no-op:
// multigraphs are not part of this data model.
func (g *Graph) AddEdge(u, v uint32) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.HasNode(u) {
		return ErrNodeNotFound
	}
	if !g.HasNode(v) {
		return ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	e := canonicalEdge(u, v)
	if _, ok := g.edges[e]; ok {
		return nil
	}
	g.edges[e] = struct{}{}
	g.link(u, v)
	g.link(v, u)
	return nil
}

func (g *Graph) link(from, to uint32) {
	nbrs, ok := g.adjacency[from]
	if !ok {
		nbrs = make(map[uint32]struct{})
		g.adjacency[from] = nbrs
	}
	nbrs[to] = struct{}{}
}

// HasEdge reports whether {u, v} (in either order) is present.
func (g *Graph) HasEdge(u, v uint32) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.edges[canonicalEdge(u, v)]
	return ok
}

// Edges returns the canonical edge set as a slice, sorted by (Source,
// Target) for deterministic iteration order (useful for export and tests).
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// EdgeCount returns the number of canonical edges.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edges)
}

// Neighbors returns the ids adjacent to id, or nil if id has no edges or
// does not exist.
func (g *Graph) Neighbors(id uint32) []uint32 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	nbrs := g.adjacency[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]uint32, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
