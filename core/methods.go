package core

import "fmt"

// indexError wraps ErrInvalidIndex with a formatted detail.
func indexError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidIndex}, args...)...)
}

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return g.v }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HasVertex reports whether u is a valid vertex index.
func (g *Graph) HasVertex(u int) bool { return u >= 0 && u < g.v }

// EdgeCount returns the number of logical edges. An undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge appends from→to with weight w to from's adjacency list, and the
// mirror to→from as well when the graph is undirected. Self-loops are stored
// once.
//
// Returns ErrInvalidIndex if either endpoint is out of range; the graph is
// left unchanged in that case.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return indexError("edge %d→%d in graph of %d vertices", from, to, g.v)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addEdgeLocked(from, to, w)

	return nil
}

// addEdgeLocked stores the edge. Caller holds mu or owns g exclusively.
func (g *Graph) addEdgeLocked(from, to int, w int64) {
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: w})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{To: from, Weight: w})
	}
	g.edgeCount++
}

// Neighbors returns a copy of u's adjacency list in insertion order.
// Returns ErrInvalidIndex if u is out of range.
// Complexity: O(deg(u))
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, indexError("vertex %d", u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every logical edge ordered by From, then insertion order.
//
// For an undirected graph each edge is reported once, from its lower endpoint.
// Mirrors are recognised by position, so parallel undirected edges survive.
// Complexity: O(V + E)
func (g *Graph) Edges() []WeightedEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]WeightedEdge, 0, g.edgeCount)
	for from, list := range g.adj {
		for _, e := range list {
			if !g.directed && e.To < from {
				continue
			}
			out = append(out, WeightedEdge{From: from, To: e.To, Weight: e.Weight})
		}
	}

	return out
}

// Each calls fn for every entry of u's adjacency list while holding the read
// lock. fn must not mutate g. Iteration stops when fn returns false.
// Returns ErrInvalidIndex if u is out of range.
func (g *Graph) Each(u int, fn func(e Edge) bool) error {
	if !g.HasVertex(u) {
		return indexError("vertex %d", u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adj[u] {
		if !fn(e) {
			break
		}
	}

	return nil
}
