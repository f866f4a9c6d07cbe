// Package core defines the adjacency-list Graph shared by the shortest-path
// and spanning-tree packages.
//
// Vertices are the integers 0..V-1, fixed at construction. Each vertex owns an
// ordered list of outgoing Edge values (neighbor, weight). Reads and writes are
// guarded by a sync.RWMutex, so a Graph may be built once and then shared
// read-only across goroutines.
//
// Errors:
//
//	ErrInvalidIndex - a vertex index (or vertex count) is outside its valid range.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidIndex indicates a vertex index outside [0, V) or a negative vertex count.
	ErrInvalidIndex = errors.New("core: vertex index out of range")
)

// Edge is one entry in a vertex's adjacency list.
//
// To is the neighbor index; Weight is the cost of traversing the edge.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the cost of the edge. The Graph accepts any value;
	// algorithms that need non-negative weights check for themselves.
	Weight int64
}

// WeightedEdge is a fully qualified edge as returned by Graph.Edges.
type WeightedEdge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge store every edge in both directions.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.directed = false }
}

// Graph is a fixed-size adjacency-list graph.
//
// mu protects adj and edgeCount. The vertex count never changes after
// construction, so it is read without locking.
type Graph struct {
	mu sync.RWMutex

	directed  bool
	v         int
	adj       [][]Edge
	edgeCount int // logical edges; an undirected edge counts once
}

// NewGraph creates a Graph with v isolated vertices.
// By default the Graph is directed.
// Returns ErrInvalidIndex if v is negative.
// Complexity: O(V)
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v < 0 {
		return nil, ErrInvalidIndex
	}
	g := &Graph{
		directed: true,
		v:        v,
		adj:      make([][]Edge, v),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromAdjacency builds a Graph of v vertices from a raw adjacency list.
//
// adj[u] lists the edges leaving u, in order. adj may be shorter than v;
// vertices without an entry get an empty list. Every neighbor must lie in
// [0, v). With WithUndirected each listed edge is also mirrored.
//
// On any violation it returns ErrInvalidIndex (wrapped with the offending
// position) and no Graph.
// Complexity: O(V + E)
func FromAdjacency(adj [][]Edge, v int, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(v, opts...)
	if err != nil {
		return nil, err
	}
	if len(adj) > v {
		return nil, indexError("adjacency has %d lists for %d vertices", len(adj), v)
	}
	for from, list := range adj {
		for _, e := range list {
			if e.To < 0 || e.To >= v {
				return nil, indexError("edge %d→%d", from, e.To)
			}
			g.addEdgeLocked(from, e.To, e.Weight)
		}
	}

	return g, nil
}
