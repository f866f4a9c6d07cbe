// Package core provides the fixed-size adjacency-list Graph consumed by the
// dijkstra and prim_kruskal packages.
//
// A Graph G = (V, E) has vertices 0..V-1 and, for each vertex, an ordered
// list of (neighbor, weight) pairs:
//
//   - Directed by default; WithUndirected() mirrors every AddEdge.
//   - Weights are int64. The Graph does not reject negative weights;
//     dijkstra rejects them with its own ErrInvalidWeight.
//   - Neighbors(u) preserves insertion order, so algorithms that walk it are
//     deterministic.
//   - All index arguments are bounds-checked; violations return
//     ErrInvalidIndex and never mutate the Graph.
//
// Construction:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 2)
//
// or, from a literal adjacency list:
//
//	g, err := core.FromAdjacency([][]core.Edge{
//	    {{To: 1, Weight: 4}, {To: 2, Weight: 1}},
//	    nil,
//	    {{To: 1, Weight: 2}},
//	}, 3)
//
// Thread safety:
//
//	A sync.RWMutex guards the adjacency lists. Concurrent AddEdge calls are
//	safe; the usual pattern is to build once and share read-only.
//
// Complexity:
//
//	NewGraph O(V), AddEdge O(1) amortized, Neighbors O(deg), Edges O(V + E).
package core
