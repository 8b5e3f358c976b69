package graph

import "sort"

// walker mirrors the queueItem/visited shape of the teacher library's
// bfs.walker, narrowed to plain connectivity: no depth, no parent links, no
// hooks, just "which component does each node belong to".
type walker struct {
	g       *Graph
	visited map[uint32]bool
	queue   []uint32
}

func newWalker(g *Graph) *walker {
	return &walker{
		g:       g,
		visited: make(map[uint32]bool, g.NodeCount()),
	}
}

func (w *walker) componentFrom(start uint32) []uint32 {
	w.queue = w.queue[:0]
	w.queue = append(w.queue, start)
	w.visited[start] = true

	component := make([]uint32, 0, 8)
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		component = append(component, id)
		for _, n := range w.g.Neighbors(id) {
			if w.visited[n] {
				continue
			}
			w.visited[n] = true
			w.queue = append(w.queue, n)
		}
	}
	sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
	return component
}

// ConnectedComponents partitions the graph's nodes into connected
// components via breadth-first traversal of the adjacency index. Each
// component is returned sorted by ascending id; components themselves are
// ordered by their smallest member. An edgeless graph yields one singleton
// component per node.
//
// This is ambient diagnostic tooling, not part of the force-directed
// layout algorithm itself: a disconnected graph is a perfectly valid input
// to LayoutEngine (each component settles independently, possibly
// overlapping another in the frame), but callers building tooling around
// the core (the CLI's disconnected-graph warning, for instance) want to know the
// component structure.
func (g *Graph) ConnectedComponents() [][]uint32 {
	w := newWalker(g)
	var components [][]uint32
	for _, node := range g.Nodes() {
		if w.visited[node.ID] {
			continue
		}
		components = append(components, w.componentFrom(node.ID))
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

// IsConnected reports whether the graph has at most one connected
// component. An empty graph is trivially connected.
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponents()) <= 1
}
