// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dsa/core"
	"github.com/katalvlaran/dsa/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// Cycles are rejected with a disjointset.DisjointSet using union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Steps:
//  1. Validate graph.
//  2. |V| == 1 → trivial MST (empty, weight 0).
//  3. Collect edges, skip self-loops, stable-sort by weight (ties keep Edges() order).
//  4. For each edge whose endpoints are in different sets, union them and keep the edge.
//  5. Stop at |V|-1 edges; fewer means the graph was disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.WeightedEdge, int64, error) {
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.WeightedEdge{}, 0, nil
	}

	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// Elements 0..n-1; New takes the largest index.
	ds, err := disjointset.New(n - 1)
	if err != nil {
		return nil, 0, err
	}

	var (
		mst         = make([]core.WeightedEdge, 0, n-1)
		totalWeight int64
	)
	for _, e := range edges {
		merged, err := ds.UnionByRank(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
		}
		if !merged {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, ds.Count())
	}

	return mst, totalWeight, nil
}
