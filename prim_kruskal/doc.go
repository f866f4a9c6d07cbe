// Package prim_kruskal computes Minimum Spanning Trees on an undirected
// *core.Graph with Prim’s and Kruskal’s algorithms.
//
// Given a connected undirected graph G = (V, E), an MST is a subset T ⊆ E
// that spans V with minimum total weight.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.WeightedEdge, int64, error)
//     Sort edges by weight and keep each edge whose endpoints are still in
//     different sets of a disjointset.DisjointSet (union by rank, path
//     compression). O(E log E + α(V)·E).
//
//   - Prim(g, root) ([]core.WeightedEdge, int64, error)
//     Grow a tree from root, always taking the lightest edge that leaves it,
//     using a lazy min-heap. O(E log E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Both return the same total weight on any connected graph. Edge sets can
// differ when weights tie.
//
// Errors
//
//   - ErrInvalidGraph: nil or directed graph, or unknown method in Compute.
//   - ErrDisconnected: empty graph, or more than one component.
//   - core.ErrInvalidIndex: Prim root outside [0, V).
package prim_kruskal
