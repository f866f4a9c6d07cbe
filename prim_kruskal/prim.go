// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected *core.Graph and grows the MST from a root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dsa/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph
// by growing outwards from root using a min-heap of crossing edges.
//
// Error Conditions:
//   - ErrInvalidGraph      : graph is nil or directed.
//   - ErrDisconnected      : |V| == 0, or the graph is not connected.
//   - core.ErrInvalidIndex : root is outside [0, V).
//
// Edges are reported From the tree side To the newly added vertex.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.WeightedEdge, int64, error) {
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: root %d", core.ErrInvalidIndex, root)
	}

	visited := make([]bool, n)
	mst := make([]core.WeightedEdge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{}
	heap.Init(pq)

	// visit marks v as part of the tree and queues its crossing edges.
	visit := func(v int) error {
		visited[v] = true
		return graph.Each(v, func(e core.Edge) bool {
			if !visited[e.To] {
				heap.Push(pq, core.WeightedEdge{From: v, To: e.To, Weight: e.Weight})
			}
			return true
		})
	}

	if err := visit(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.WeightedEdge)
		if visited[e.To] {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if err := visit(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of crossing edges, ordered by Weight.
type edgePQ []core.WeightedEdge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.WeightedEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
