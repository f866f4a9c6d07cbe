// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on core.Graph adjacency lists with non-negative int64 weights.
//
// Overview:
//
//   - ShortestPath(adj, V, source) is the direct form: a raw adjacency list in,
//     a distance slice out.
//   - Dijkstra(g, opts...) works on a *core.Graph and accepts functional options
//     for path reconstruction, distance caps and impassable-edge thresholds.
//   - Unreachable vertices report Infinity (math.MaxInt64).
//
// Algorithm:
//
//	A min-heap frontier keyed by tentative distance. dist[source] = 0, every
//	other vertex starts at Infinity. Pop the minimum; if its stored distance
//	exceeds dist[v] the entry is stale and is dropped (lazy deletion). Otherwise
//	v is settled and each edge v→w with weight c is relaxed: if
//	dist[v] + c < dist[w], dist[w] is lowered and w is pushed again.
//
// Guarantees:
//
//   - dist[source] == 0.
//   - dist[w] <= dist[v] + c for every edge v→w of weight c on termination
//     (within MaxDistance / InfEdgeThreshold when those options are set).
//   - Each vertex is settled at most once; O((V + E) log V) time.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - core.ErrInvalidIndex: source outside [0, V), or a malformed adjacency list.
//   - ErrInvalidWeight:   any negative weight (detected by an O(E) pre-scan).
//   - ErrOptionViolation: negative MaxDistance or non-positive InfEdgeThreshold.
//   - ErrNoPath:          PathTo on a vertex that was never reached.
//
// Example:
//
//	dist, err := dijkstra.ShortestPath([][]core.Edge{
//	    {{To: 1, Weight: 4}, {To: 2, Weight: 1}},
//	    nil,
//	    {{To: 1, Weight: 2}},
//	}, 3, 0)
//	// dist == [0 3 1]
//
// Thread safety:
//
//   - Dijkstra only reads the graph, under its read lock. Several runs may share
//     one *core.Graph concurrently.
package dijkstra
